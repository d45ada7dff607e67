package tabular

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goattrition/domain/table"
)

func TestExportCSVRoundTrip(t *testing.T) {
	ds := table.New("export", []string{"Name", "Comment", "Income"}, [][]string{
		{"Smith, Jane", `said "hi"`, "3000"},
		{"Lee", "line one\nline two", ""},
	})

	out, err := ExportCSV(ds.NewView())
	require.NoError(t, err)

	reloaded, err := ReadCSV("reloaded", bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, ds.Header, reloaded.Header)
	assert.Equal(t, ds.Rows, reloaded.Rows)
}

func TestExportCSVFilteredView(t *testing.T) {
	ds := table.New("export", []string{"Age", "Department"}, [][]string{
		{"25", "Sales"},
		{"30", "HR"},
		{"40", "IT"},
	})

	out, err := ExportCSV(ds.ViewOf([]int{0, 2}))
	require.NoError(t, err)

	reloaded, err := ReadCSV("reloaded", bytes.NewReader(out))
	require.NoError(t, err)

	require.Equal(t, 2, reloaded.RowCount())
	assert.Equal(t, "25", reloaded.Rows[0][0])
	assert.Equal(t, "IT", reloaded.Rows[1][1])
}

func TestExportCSVEmptyView(t *testing.T) {
	ds := table.New("export", []string{"Age", "Department"}, nil)

	out, err := ExportCSV(ds.NewView())
	require.NoError(t, err)

	reloaded, err := ReadCSV("reloaded", bytes.NewReader(out))
	require.NoError(t, err)

	assert.Equal(t, ds.Header, reloaded.Header)
	assert.Equal(t, 0, reloaded.RowCount())
}
