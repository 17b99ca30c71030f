package grouping

import (
	"fmt"
	"strconv"
	"strings"
)

// splitSelectors splits comma-separated tokens and drops blanks.
func splitSelectors(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		for _, piece := range strings.Split(tok, ",") {
			if piece = strings.TrimSpace(piece); piece != "" {
				out = append(out, piece)
			}
		}
	}
	return out
}

func findSheet(all []string, name string) (string, bool) {
	for _, s := range all {
		if strings.EqualFold(s, name) {
			return s, true
		}
	}
	return "", false
}

// ResolveSheets turns sheet selectors into sheet names.
//
// selectors may hold names (case-insensitive), 0-based indices,
// comma-separated lists or "all"; unresolved entries are skipped with a
// warning. When selectors is empty, single is used instead, and if it cannot
// be resolved the first sheet is used with a warning. With neither, the first
// sheet is selected. The result is deduplicated in order.
func ResolveSheets(selectors []string, single string, all []string) (targets []string, warnings []string) {
	if len(all) == 0 {
		return nil, nil
	}

	switch {
	case len(selectors) > 0:
		tokens := splitSelectors(selectors)
		for _, t := range tokens {
			if strings.EqualFold(t, "all") {
				return dedupe(all), warnings
			}
		}
		for _, t := range tokens {
			if idx, err := strconv.Atoi(t); err == nil {
				if idx < 0 || idx >= len(all) {
					warnings = append(warnings, fmt.Sprintf("sheet index %d out of range; skipping", idx))
					continue
				}
				targets = append(targets, all[idx])
				continue
			}
			if name, ok := findSheet(all, t); ok {
				targets = append(targets, name)
			} else {
				warnings = append(warnings, fmt.Sprintf("sheet %q not found; skipping", t))
			}
		}

	case strings.TrimSpace(single) != "":
		t := strings.TrimSpace(single)
		if idx, err := strconv.Atoi(t); err == nil {
			if idx < 0 || idx >= len(all) {
				warnings = append(warnings, fmt.Sprintf("sheet index %d out of range; defaulting to first sheet", idx))
				targets = []string{all[0]}
			} else {
				targets = []string{all[idx]}
			}
		} else if name, ok := findSheet(all, t); ok {
			targets = []string{name}
		} else {
			warnings = append(warnings, fmt.Sprintf("sheet %q not found; defaulting to first sheet", t))
			targets = []string{all[0]}
		}

	default:
		targets = []string{all[0]}
	}

	return dedupe(targets), warnings
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
