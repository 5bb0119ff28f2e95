// Package sheets loads tabular survey exports into header-keyed rows.
//
// A [Table] keeps the header row and every non-blank data row in file order.
// Cells are raw strings: numeric and date cells in workbooks keep their stored
// value (e.g. a date is its serial number), leaving interpretation to the
// normalize package.
//
// Supported formats:
//   - .xlsx / .xlsm : first worksheet, read with excelize
//   - .csv : comma separated, UTF-8 with optional byte order mark
package sheets
