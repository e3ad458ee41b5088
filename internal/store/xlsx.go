package store

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/devlens/devsurvey/internal/report"
)

// sheetNameLimit is the hard cap Excel puts on worksheet names.
const sheetNameLimit = 31

// WriteWorkbook writes one worksheet per derived table, header row first.
func WriteWorkbook(path string, tables []*report.Table) error {
	if len(tables) == 0 {
		return eris.New("xlsx: no tables to write")
	}

	file := xlsx.NewFile()
	for _, t := range tables {
		name := t.Name
		if len(name) > sheetNameLimit {
			name = name[:sheetNameLimit]
		}
		sheet, err := file.AddSheet(name)
		if err != nil {
			return eris.Wrapf(err, "xlsx: add sheet %s", name)
		}

		header := sheet.AddRow()
		for _, col := range t.Columns {
			header.AddCell().Value = col
		}
		for _, row := range t.Rows {
			r := sheet.AddRow()
			for _, v := range row {
				cell := r.AddCell()
				if v == nil {
					continue
				}
				cell.SetValue(v)
			}
		}
	}

	return eris.Wrapf(file.Save(path), "xlsx: save %s", path)
}
