// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package roster

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/pubaudit/internal/workbook"
)

func writeRoster(t *testing.T, path, sheet string, rows [][]string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	writeRoster(t, path, "固定人员清单", [][]string{
		{"序号", "姓名", "职称"},
		{"1", "张三", "教授"},
		{"2", "", "副教授"},  // empty name cell is dropped
		{"3", " 李四 ", ""}, // padding is part of the name and kept
		{"4", "张三", "讲师"}, // duplicate retained
	})

	names, err := Load(path, "固定人员清单", "姓名")
	require.NoError(t, err)
	assert.Equal(t, []string{"张三", " 李四 ", "张三"}, names)
}

func TestLoadKeepsNamesVerbatim(t *testing.T) {
	// A padded roster cell stays padded, so it never substring-matches an
	// unpadded author field; that mirrors how the source workbooks behave.
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	writeRoster(t, path, "固定人员清单", [][]string{
		{"姓名"},
		{" 李四 "},
		{"  "}, // whitespace-only is still a value, not an empty cell
	})

	names, err := Load(path, "固定人员清单", "姓名")
	require.NoError(t, err)
	assert.Equal(t, []string{" 李四 ", "  "}, names)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), "固定人员清单", "姓名")
	assert.Error(t, err)
}

func TestLoadMissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	writeRoster(t, path, "人员", [][]string{{"姓名"}, {"张三"}})

	_, err := Load(path, "固定人员清单", "姓名")
	assert.ErrorContains(t, err, "固定人员清单")
}

func TestLoadMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	writeRoster(t, path, "固定人员清单", [][]string{
		{"序号", "名称"},
		{"1", "张三"},
	})

	_, err := Load(path, "固定人员清单", "姓名")
	require.Error(t, err)

	// The error carries the sheet's actual columns so the operator can fix
	// the configured header name.
	var colErr *workbook.ColumnError
	require.True(t, errors.As(err, &colErr))
	assert.Equal(t, []string{"姓名"}, colErr.Missing)
	assert.Equal(t, []string{"序号", "名称"}, colErr.Available)
}

func TestLoadLenientMissingFile(t *testing.T) {
	// The tag pipeline must complete even without a roster: the run
	// proceeds with an empty roster and every row ends up unmatched.
	var diag bytes.Buffer
	names := LoadLenient(filepath.Join(t.TempDir(), "nope.xlsx"), "固定人员清单", "姓名", &diag)

	assert.Empty(t, names)
	assert.Contains(t, diag.String(), "empty roster")
}

func TestLoadLenientPassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.xlsx")
	writeRoster(t, path, "固定人员清单", [][]string{{"姓名"}, {"张三"}})

	var diag bytes.Buffer
	names := LoadLenient(path, "固定人员清单", "姓名", &diag)

	assert.Equal(t, []string{"张三"}, names)
	assert.Empty(t, diag.String())
}

func TestDedupe(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{"keeps first occurrence order", []string{"张三", "李四", "张三", "王五", "李四"}, []string{"张三", "李四", "王五"}},
		{"no duplicates", []string{"张三", "李四"}, []string{"张三", "李四"}},
		{"empty", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedupe(tt.names))
		})
	}
}
