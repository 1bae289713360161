package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matRow struct {
	ID       int64
	Code     string
	Name     string
	Category string
	Stock    int64
}

func newMaterialTable() *Table[matRow] {
	t := New(
		func(r matRow) int64 { return r.ID },
		func(r matRow, term string) bool {
			term = strings.ToLower(term)
			return strings.Contains(strings.ToLower(r.Name), term) ||
				strings.Contains(strings.ToLower(r.Code), term)
		},
	)
	t.RegisterComparator("name", func(a, b matRow) int { return strings.Compare(a.Name, b.Name) })
	t.RegisterComparator("stock", func(a, b matRow) int { return int(a.Stock - b.Stock) })
	return t
}

func sampleRows() []matRow {
	return []matRow{
		{ID: 1, Code: "MAT-001", Name: "Kardus Besar", Category: "kemasan", Stock: 120},
		{ID: 2, Code: "MAT-002", Name: "Lakban", Category: "kemasan", Stock: 40},
		{ID: 3, Code: "MAT-003", Name: "Palet Kayu", Category: "penyangga", Stock: 15},
		{ID: 4, Code: "MAT-004", Name: "Bubble Wrap", Category: "kemasan", Stock: 75},
	}
}

func names(rows []matRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}

func TestToggleSortCycle(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	fetchOrder := names(tbl.View())

	tbl.ToggleSort("name", false)
	assert.Equal(t, DirAsc, tbl.SortDirection("name"))
	assert.Equal(t, []string{"Bubble Wrap", "Kardus Besar", "Lakban", "Palet Kayu"}, names(tbl.View()))

	tbl.ToggleSort("name", false)
	assert.Equal(t, DirDesc, tbl.SortDirection("name"))
	assert.Equal(t, "Palet Kayu", tbl.View()[0].Name)

	// siklus ketiga: kembali ke urutan fetch
	tbl.ToggleSort("name", false)
	assert.Equal(t, DirNone, tbl.SortDirection("name"))
	assert.Equal(t, fetchOrder, names(tbl.View()))
}

func TestToggleSortNonAdditiveReplaces(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.ToggleSort("name", false)
	tbl.ToggleSort("stock", false)

	assert.Equal(t, DirNone, tbl.SortDirection("name"))
	assert.Equal(t, DirAsc, tbl.SortDirection("stock"))
	assert.Equal(t, int64(15), tbl.View()[0].Stock)
}

func TestToggleSortUnknownColumnIgnored(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())
	tbl.ToggleSort("tidak-ada", false)
	assert.Equal(t, DirNone, tbl.SortDirection("tidak-ada"))
}

func TestColumnAndGlobalFilterIndependent(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.SetColumnFilter("category", Equals(func(r matRow) string { return r.Category }, "kemasan"))
	require.Len(t, tbl.View(), 3)

	tbl.SetGlobalFilter("lakban")
	require.Len(t, tbl.View(), 1)
	assert.Equal(t, "Lakban", tbl.View()[0].Name)

	// hapus global filter; filter kolom tetap aktif
	tbl.SetGlobalFilter("")
	assert.Len(t, tbl.View(), 3)

	tbl.ClearColumnFilter("category")
	assert.Len(t, tbl.View(), 4)
}

func TestSelectionSurvivesSortAndFilter(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.ToggleSelect(2)
	tbl.ToggleSelect(3)
	require.Equal(t, 2, tbl.SelectedCount())

	tbl.ToggleSort("name", false)
	tbl.SetGlobalFilter("lakban")
	assert.True(t, tbl.Selected(2))
	assert.True(t, tbl.Selected(3))

	// refetch dengan rows baru: seleksi bertahan berdasarkan id
	tbl.SetRows(sampleRows())
	assert.Equal(t, 2, tbl.SelectedCount())

	tbl.ToggleSelect(2)
	assert.False(t, tbl.Selected(2))
	assert.Equal(t, 1, tbl.SelectedCount())
}

func TestSelectAllVisibleScope(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.SetColumnFilter("category", Equals(func(r matRow) string { return r.Category }, "kemasan"))
	tbl.SelectAllVisible()

	assert.Equal(t, 3, tbl.SelectedCount())
	assert.False(t, tbl.Selected(3), "baris tersembunyi tidak ikut terpilih")
}

func TestSelectedRowsSnapshotInViewOrder(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.Select(1)
	tbl.Select(4)
	tbl.ToggleSort("name", false)

	rows := tbl.SelectedRows()
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Bubble Wrap", "Kardus Besar"}, names(rows))
}

func TestPagination(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())
	tbl.SetPageSize(3)

	assert.Equal(t, 2, tbl.PageCount())
	assert.Len(t, tbl.Page(), 3)

	tbl.SetPage(2)
	assert.Len(t, tbl.Page(), 1)

	// halaman di luar jangkauan di-clamp
	tbl.SetPage(99)
	assert.Equal(t, 2, tbl.CurrentPage())

	// filter mereset ke halaman 1
	tbl.SetGlobalFilter("kardus")
	assert.Equal(t, 1, tbl.CurrentPage())
	assert.Len(t, tbl.Page(), 1)
}

func TestEmptyStates(t *testing.T) {
	tbl := newMaterialTable()
	assert.Equal(t, EmptyNoData, tbl.Empty())

	tbl.SetRows(sampleRows())
	assert.Equal(t, EmptyNone, tbl.Empty())

	tbl.SetGlobalFilter("tidak ada yang cocok")
	assert.Equal(t, EmptyNoMatch, tbl.Empty())
	assert.True(t, tbl.HasFilters())

	tbl.ClearFilters()
	assert.Equal(t, EmptyNone, tbl.Empty())
	assert.False(t, tbl.HasFilters())
}

func TestColumnVisibility(t *testing.T) {
	tbl := newMaterialTable()
	assert.True(t, tbl.ColumnVisible("name"))

	tbl.SetColumnVisible("name", false)
	assert.False(t, tbl.ColumnVisible("name"))

	tbl.SetColumnVisible("name", true)
	assert.True(t, tbl.ColumnVisible("name"))
}

func TestInFilter(t *testing.T) {
	tbl := newMaterialTable()
	tbl.SetRows(sampleRows())

	tbl.SetColumnFilter("category", In(func(r matRow) string { return r.Category }, "penyangga"))
	require.Len(t, tbl.View(), 1)
	assert.Equal(t, "Palet Kayu", tbl.View()[0].Name)
}
