package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type supplierRow struct {
	Code string
	Name string
	City string
}

var cols = []Column[supplierRow]{
	{Header: "Kode", Extract: func(r supplierRow) string { return r.Code }},
	{Header: "Nama", Extract: func(r supplierRow) string { return r.Name }},
	{Header: "Kota", Extract: func(r supplierRow) string { return r.City }},
}

func TestWriteCSVRoundTrip(t *testing.T) {
	rows := []supplierRow{
		{Code: "SUP-001", Name: `Acme, Inc.`, City: "Jakarta"},
		{Code: "SUP-002", Name: `PT "Hebat" Sekali`, City: "Bandung,\nBarat"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cols, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Kode", "Nama", "Kota"}, records[0])
	assert.Equal(t, []string{"SUP-001", "Acme, Inc.", "Jakarta"}, records[1])
	assert.Equal(t, []string{"SUP-002", `PT "Hebat" Sekali`, "Bandung,\nBarat"}, records[2])
}

func TestWriteCSVEmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, cols, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "hanya baris header")
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 4, 5, 0, time.Local)
	assert.Equal(t, "supplier_2026-08-29.csv", Filename("supplier", now))
}
