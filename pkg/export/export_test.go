package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(Report{
		Columns: []string{"ID", "Subject", "Status"},
		Rows: [][]string{
			{"1", "Maths", "Pending"},
			{"2", "Physics, advanced", "Resolved"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "ID,Subject,Status\n1,Maths,Pending\n2,\"Physics, advanced\",Resolved\n", string(data))
}

func TestRenderCSVNoColumns(t *testing.T) {
	_, err := RenderCSV(Report{})
	assert.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(Report{
		Title:   "Doubts",
		Columns: []string{"ID", "Subject"},
		Rows:    [][]string{{"1", "Maths"}},
	})
	require.NoError(t, err)

	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderPDFShortRowPadsCells(t *testing.T) {
	data, err := RenderPDF(Report{
		Columns: []string{"ID", "Subject", "Status"},
		Rows:    [][]string{{"1"}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
