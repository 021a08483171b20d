package export

import (
	"bytes"
	"testing"

	"homeat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_Export(t *testing.T) {
	list := &entity.ShoppingList{Items: []entity.ShoppingItem{
		{Name: "Mehl", Quantities: []string{"500 g", "1 Tasse"}, Recipes: []string{"Brot", "Kuchen"}},
		{Name: "Salz", Quantities: []string{"1 TL"}, Recipes: []string{"Suppe"}},
	}}

	var buf bytes.Buffer
	exporter := NewXLSXExporter()
	require.NoError(t, exporter.Export(&buf, list))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Item", "Quantities", "Recipes"},
		{"Mehl", "500 g, 1 Tasse", "Brot, Kuchen"},
		{"Salz", "1 TL", "Suppe"},
	}, rows)
	assert.Contains(t, exporter.ContentType(), "spreadsheetml")
}

func TestXLSXExporter_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewXLSXExporter().Export(&buf, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
