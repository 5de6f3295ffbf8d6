package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numclean/internal/numeric"
)

func TestFromRecords(t *testing.T) {
	tbl, err := FromRecords([][]string{
		{"A", "B"},
		{"1", "2"},
		{"3"}, // short rows pad with nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, tbl.Names())
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, "3", tbl.Cell(0, 1))
	assert.Nil(t, tbl.Cell(1, 1))
}

func TestFromRecords_Errors(t *testing.T) {
	_, err := FromRecords(nil)
	assert.Error(t, err)

	_, err = FromRecords([][]string{
		{"A"},
		{"1", "2"},
	})
	assert.Error(t, err)
}

func TestTable_Records(t *testing.T) {
	tbl := New([]string{"A", "B"})
	require.NoError(t, tbl.AppendRow([]any{"raw", numeric.Of(12.5)}))
	require.NoError(t, tbl.AppendRow([]any{nil, numeric.Missing}))

	assert.Equal(t, [][]string{
		{"A", "B"},
		{"raw", "12.5"},
		{"", ""},
	}, tbl.Records())
}

func TestTable_Clone(t *testing.T) {
	tbl := newTestTable(t)
	c := tbl.Clone()

	c.SetCell(0, 0, "changed")
	assert.Equal(t, "23.5 °C", tbl.Cell(0, 0))
	assert.Equal(t, tbl.Names(), c.Names())
}

func TestTable_AppendRowMismatch(t *testing.T) {
	tbl := New([]string{"A", "B"})
	assert.Error(t, tbl.AppendRow([]any{"only one"}))
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		tok  string
		want Ref
	}{
		{tok: "2", want: ByIndex(2)},
		{tok: "-1", want: ByIndex(-1)},
		{tok: "0", want: ByIndex(0)},
		{tok: "Temperature", want: ByName("Temperature")},
		{tok: "2x", want: ByName("2x")},
		{tok: "1.5", want: ByName("1.5")},
		{tok: "-", want: ByName("-")},
		{tok: "", want: ByName("")},
	}

	for _, tt := range tests {
		t.Run(tt.tok, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRef(tt.tok))
		})
	}
}

func TestParseRefs(t *testing.T) {
	refs := ParseRefs([]string{"Temperature", "2", "Distance"})
	assert.Equal(t, []Ref{ByName("Temperature"), ByIndex(2), ByName("Distance")}, refs)
}

func TestRef_String(t *testing.T) {
	assert.Equal(t, "Temperature", ByName("Temperature").String())
	assert.Equal(t, "4", ByIndex(4).String())
}
