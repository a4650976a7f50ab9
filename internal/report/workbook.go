package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook file names, fixed by the report contract.
const (
	MessWorkbookFile     = "College_Mess_Profitability_Model.xlsx"
	FacilityWorkbookFile = "Campus_Resource_Utilization_Analysis.xlsx"
)

// sheetWriter lays out one worksheet and remembers the first error it hits,
// so sheet builders read as layout code instead of error plumbing.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func newSheet(f *excelize.File, name, tabColor string) (*sheetWriter, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 1 && sheets[0] == "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return nil, err
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return nil, err
	}
	if err := f.SetSheetProps(name, &excelize.SheetPropsOptions{TabColorRGB: &tabColor}); err != nil {
		return nil, err
	}
	return &sheetWriter{f: f, sheet: name}, nil
}

func cellRef(col, row int) string {
	ref, _ := excelize.CoordinatesToCellName(col, row)
	return ref
}

// areaRef builds an absolute chart data reference like 'Sheet Name'!$A$4:$A$14.
func areaRef(sheet string, col1, row1, col2, row2 int) string {
	c1, _ := excelize.ColumnNumberToName(col1)
	c2, _ := excelize.ColumnNumberToName(col2)
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, c1, row1, c2, row2)
}

func (w *sheetWriter) set(col, row int, v interface{}) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellValue(w.sheet, cellRef(col, row), v)
}

func (w *sheetWriter) setStyled(col, row int, v interface{}, style int) {
	w.set(col, row, v)
	w.style(col, row, col, row, style)
}

func (w *sheetWriter) style(col1, row1, col2, row2 int, style int) {
	if w.err != nil {
		return
	}
	w.err = w.f.SetCellStyle(w.sheet, cellRef(col1, row1), cellRef(col2, row2), style)
}

// title writes the merged sheet title across span columns of row 1.
func (w *sheetWriter) title(text string, span int, style int) {
	if w.err != nil {
		return
	}
	if w.err = w.f.MergeCell(w.sheet, cellRef(1, 1), cellRef(span, 1)); w.err != nil {
		return
	}
	w.setStyled(1, 1, text, style)
	if w.err != nil {
		return
	}
	w.err = w.f.SetRowHeight(w.sheet, 1, 30)
}

func (w *sheetWriter) headerRow(row int, headers []string, style int) {
	for i, h := range headers {
		w.setStyled(i+1, row, h, style)
	}
}

// altRows applies the banded-row treatment: every second row gets the grey
// fill, every row gets the thin bottom border.
func (w *sheetWriter) altRows(startRow, endRow, maxCol int, s *styleSet) {
	for r := startRow; r <= endRow; r++ {
		style := s.cell
		if (r-startRow)%2 == 1 {
			style = s.cellAlt
		}
		w.style(1, r, maxCol, r, style)
	}
}

// numCol re-applies a number format to one column of a banded table,
// keeping the banding fill in step with altRows.
func (w *sheetWriter) numCol(col, startRow, endRow int, plain, alt int) {
	for r := startRow; r <= endRow; r++ {
		style := plain
		if (r-startRow)%2 == 1 {
			style = alt
		}
		w.style(col, r, col, r, style)
	}
}

func (w *sheetWriter) colWidth(col int, width float64) {
	if w.err != nil {
		return
	}
	name, _ := excelize.ColumnNumberToName(col)
	w.err = w.f.SetColWidth(w.sheet, name, name, width)
}

// fitColumns sizes every column to its longest value, capped at maxWidth.
func (w *sheetWriter) fitColumns(maxWidth float64) {
	if w.err != nil {
		return
	}
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		w.err = err
		return
	}
	widths := map[int]float64{}
	for _, row := range rows {
		for c, v := range row {
			if l := float64(len(v)) + 4; l > widths[c] {
				widths[c] = l
			}
		}
	}
	for c, width := range widths {
		if width > maxWidth {
			width = maxWidth
		}
		w.colWidth(c+1, width)
	}
}

func (w *sheetWriter) addChart(cell string, chart *excelize.Chart) {
	if w.err != nil {
		return
	}
	w.err = w.f.AddChart(w.sheet, cell, chart)
}

// bulletSection writes a section heading followed by indented bullet lines,
// returning the next free row.
func (w *sheetWriter) bulletSection(row int, heading string, lines []string, s *styleSet) int {
	w.setStyled(1, row, heading, s.section)
	row++
	for _, line := range lines {
		w.setStyled(1, row, "  •  "+line, s.bullet)
		row++
	}
	return row + 1
}

// textSection writes a section heading followed by indented plain lines,
// returning the next free row.
func (w *sheetWriter) textSection(row int, heading string, lines []string, s *styleSet) int {
	w.setStyled(1, row, heading, s.section)
	row++
	for _, line := range lines {
		w.setStyled(1, row, "  "+line, s.bullet)
		row++
	}
	return row + 1
}

func chartTitle(text string) []excelize.RichTextRun {
	return []excelize.RichTextRun{{Text: text}}
}

func boolPtr(b bool) *bool { return &b }
