package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input errors
	ErrInputMissing      = fmt.Errorf("input file not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported spreadsheet format")
	ErrEmptySheet        = fmt.Errorf("spreadsheet has no header row")
	ErrMissingColumn     = fmt.Errorf("missing required column")
	ErrInvalidCell       = fmt.Errorf("invalid cell value")
	ErrMissingArgument   = fmt.Errorf("missing required argument")

	// Output errors
	ErrInvalidDocument = fmt.Errorf("import document failed validation")
	ErrRunNotFound     = fmt.Errorf("import run not found")
)
