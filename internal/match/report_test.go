// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package match

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestReportRoundTrip(t *testing.T) {
	table := pubTable(
		[]string{"a", "张三", "", ""},
		[]string{"b", "", "", "张三"},
		[]string{"c", "", "", ""},
	)
	res, err := Tag(table, testCols, []string{"张三"})
	require.NoError(t, err)

	rep := BuildReport(res, "roster.xlsx", 1, "pubs.xlsx", "论文", "out.xlsx")
	require.Len(t, rep.Rows, 3)
	assert.Equal(t, RowStatus{Row: 1, Status: "1"}, rep.Rows[0])
	assert.Equal(t, RowStatus{Row: 2, Status: "0"}, rep.Rows[1])
	assert.Equal(t, RowStatus{Row: 3, Status: ""}, rep.Rows[2])

	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, WriteReport(path, rep))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, rep.Summary, got.Summary)
	assert.Equal(t, rep.Rows, got.Rows)
	assert.Equal(t, "pubs.xlsx", got.PublicationsPath)
}
