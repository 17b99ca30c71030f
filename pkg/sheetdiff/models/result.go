package models

// CellMismatch describes the first differing cell of a rectangle.
type CellMismatch struct {
	// Sheet is the sheet name (empty when comparing a bare accessor).
	Sheet string `json:"sheet,omitempty"`
	// Cell is the A1 reference of the cell.
	Cell string `json:"cell"`
	// Row is the row index (1-based).
	Row int `json:"row"`
	// Col is the column index (1-based).
	Col int `json:"col"`
	// Column is the spreadsheet column label (A, B, ..., AA).
	Column string `json:"column"`
	// ManualNorm is the canonical form of the manual value.
	ManualNorm string `json:"manual_norm"`
	// AutoNorm is the canonical form of the auto value.
	AutoNorm string `json:"auto_norm"`
	// ManualRaw is the manual value as read.
	ManualRaw Value `json:"manual_raw"`
	// AutoRaw is the auto value as read.
	AutoRaw Value `json:"auto_raw"`
}

// ColumnMismatch is one differing column of a row pair.
type ColumnMismatch struct {
	// Col is the column index (1-based).
	Col int `json:"col"`
	// ManualNorm is the canonical form of the manual value.
	ManualNorm string `json:"manual_norm"`
	// AutoNorm is the canonical form of the auto value.
	AutoNorm string `json:"auto_norm"`
}

// ScanOutcome is the terminal state of an offset scan.
type ScanOutcome string

const (
	// ScanEndOfData means the manual sheet ran out of rows without a mismatch.
	ScanEndOfData ScanOutcome = "end_of_data"
	// ScanMismatch means a row pair differed.
	ScanMismatch ScanOutcome = "mismatch"
)

// ScanResult is the outcome of an offset scan.
type ScanResult struct {
	// Outcome is the terminal state.
	Outcome ScanOutcome `json:"outcome"`
	// PairsCompared counts fully matching row pairs seen in this run.
	PairsCompared int `json:"pairs_compared"`
	// Offset is the logical offset at termination.
	Offset int `json:"offset"`
	// ManualRow is the manual row at termination (1-based).
	ManualRow int `json:"manual_row"`
	// AutoRow is the auto row at termination (1-based).
	AutoRow int `json:"auto_row"`
	// NumCols is the number of columns compared per row.
	NumCols int `json:"num_cols"`
	// Columns lists every mismatching column of the failing row.
	Columns []ColumnMismatch `json:"columns,omitempty"`
}

// Side identifies which workbook(s) a structural problem affects.
type Side string

const (
	SideManual Side = "manual"
	SideAuto   Side = "auto"
	SideBoth   Side = "both"
)

// MissingSheet describes a sheet name absent from one or both workbooks.
type MissingSheet struct {
	// Sheet is the requested sheet name.
	Sheet string `json:"sheet"`
	// Side tells which workbook lacks the sheet.
	Side Side `json:"side"`
	// ManualAvailable lists the manual sheets when the manual side is missing.
	ManualAvailable []string `json:"manual_available,omitempty"`
	// AutoAvailable lists the auto sheets when the auto side is missing.
	AutoAvailable []string `json:"auto_available,omitempty"`
}

// SequenceOutcome is the terminal state of a multi-sheet comparison.
type SequenceOutcome string

const (
	SequenceMatched  SequenceOutcome = "matched"
	SequenceMismatch SequenceOutcome = "mismatch"
	SequenceMissing  SequenceOutcome = "missing"
)

// SequenceResult is the outcome of comparing a list of sheets in order.
type SequenceResult struct {
	// Outcome is the terminal state.
	Outcome SequenceOutcome `json:"outcome"`
	// Matched lists the sheets that fully matched, in processing order.
	Matched []string `json:"matched"`
	// Region is the rectangle compared on every sheet.
	Region Rectangle `json:"region"`
	// Mismatch is set when Outcome is SequenceMismatch.
	Mismatch *CellMismatch `json:"mismatch,omitempty"`
	// Missing is set when Outcome is SequenceMissing.
	Missing *MissingSheet `json:"missing,omitempty"`
}
