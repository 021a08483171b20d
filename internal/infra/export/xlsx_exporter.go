// Package export renders shopping lists as downloadable spreadsheets.
package export

import (
	"io"
	"strings"

	"homeat/internal/domain/entity"
	"homeat/internal/domain/service"
	"homeat/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SheetName is the single worksheet of an exported shopping list.
const SheetName = "Einkaufsliste"

type xlsxExporter struct{}

// NewXLSXExporter returns an exporter writing Office Open XML workbooks.
func NewXLSXExporter() service.ShoppingListExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Export writes one row per item: name, joined quantities, joined recipe titles.
func (xlsxExporter) Export(w io.Writer, list *entity.ShoppingList) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.WithStack(err)
	}

	header := []any{"Item", "Quantities", "Recipes"}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return errors.WithStack(err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.WithStack(err)
	}
	if err := f.SetCellStyle(SheetName, "A1", "C1", bold); err != nil {
		return errors.WithStack(err)
	}

	if list != nil {
		for i, item := range list.Items {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return errors.WithStack(err)
			}
			row := []any{item.Name, strings.Join(item.Quantities, ", "), strings.Join(item.Recipes, ", ")}
			if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "C", 28); err != nil {
		return errors.WithStack(err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}

	return nil
}
