package export

import (
	"github.com/xuri/excelize/v2"

	"github.com/vytor/clubstats/internal/logger"
	"github.com/vytor/clubstats/internal/models"
)

// SheetName is the single worksheet of the report workbook.
const SheetName = "Club Data"

// column binds a header to the record attribute it exports. The order of
// this slice is the column order of the workbook and is fixed regardless
// of how the record struct is laid out.
type column struct {
	header string
	value  func(*models.MemberRecord) any
}

var columns = []column{
	{"Username", func(r *models.MemberRecord) any { return r.Username }},
	{"Name", func(r *models.MemberRecord) any { return cellString(r.Name) }},
	{"FIDE", func(r *models.MemberRecord) any { return cellInt(r.Fide) }},
	{"Daily", func(r *models.MemberRecord) any { return cellInt(r.ChessDaily) }},
	{"Rapid", func(r *models.MemberRecord) any { return cellInt(r.ChessRapid) }},
	{"Blitz", func(r *models.MemberRecord) any { return cellInt(r.ChessBlitz) }},
	{"Bullet", func(r *models.MemberRecord) any { return cellInt(r.ChessBullet) }},
	{"960 Daily", func(r *models.MemberRecord) any { return cellInt(r.Chess960Daily) }},
	{"Tactics", func(r *models.MemberRecord) any { return cellInt(r.Tactics) }},
	{"Lessons", func(r *models.MemberRecord) any { return cellInt(r.Lessons) }},
	{"Puzzle", func(r *models.MemberRecord) any { return cellInt(r.PuzzleRush) }},
	{"Location", func(r *models.MemberRecord) any { return cellString(r.Location) }},
	{"Status", func(r *models.MemberRecord) any { return cellString(r.Status) }},
}

// Headers returns the column headers in export order.
func Headers() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.header
	}
	return out
}

// cellInt renders an optional rating: the number, or an empty cell.
func cellInt(o models.Optional[int]) any {
	if !o.IsSpecified() {
		return ""
	}
	return o.Value()
}

// cellString renders an optional text field. A disclosed-but-blank field
// and an undisclosed one both export as an empty cell.
func cellString(o models.Optional[string]) any {
	return o.ValueOr("")
}

// WriteWorkbook writes the aggregated records to an xlsx workbook at
// path. Row order follows roster order; the header row and the username
// column are frozen.
func WriteWorkbook(roster *models.Roster, path string) error {
	log := logger.Default().WithPrefix("export")

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	headers := make([]any, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return err
	}

	for i, rec := range roster.AllInOrder() {
		row := make([]any, len(columns))
		for j, c := range columns {
			row[j] = c.value(rec)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	// Pin the header row and the username column.
	err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	})
	if err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}

	log.Info("wrote %d member rows to %s", roster.Len(), path)
	return nil
}
