package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordbot/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestParseText(t *testing.T) {
	input := strings.Join([]string{
		"cat кот",
		"",
		"  Dog \t Собака  ",
		"sun",
		"red красный цвет",
		"a|b знак",
		"cat кошка",
		"house дом",
	}, "\n")

	result, err := ParseText(strings.NewReader(input))

	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{
		{English: "cat", Russian: "кот"},
		{English: "dog", Russian: "собака"},
		{English: "house", Russian: "дом"},
	}, result.Pairs)
	assert.Equal(t, 4, result.Skipped)
}

func TestParseText_Empty(t *testing.T) {
	result, err := ParseText(strings.NewReader("\n\n"))

	require.NoError(t, err)
	assert.Empty(t, result.Pairs)
	assert.Equal(t, 0, result.Skipped)
}

func writeTestXLSX(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "dict.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestParseXLSX(t *testing.T) {
	path := writeTestXLSX(t, "Words", [][]interface{}{
		{"cat", "кот"},
		{"Dog", " собака "},
		{"sun"},
		{"red", "красный", "цвет"},
		{},
		{"house", "дом"},
	})

	result, err := ParseXLSX(path, "Words")

	require.NoError(t, err)
	assert.Equal(t, []domain.WordPair{
		{English: "cat", Russian: "кот"},
		{English: "dog", Russian: "собака"},
		{English: "house", Russian: "дом"},
	}, result.Pairs)
	assert.Equal(t, 2, result.Skipped)
}

func TestParseXLSX_UnknownSheet(t *testing.T) {
	path := writeTestXLSX(t, "Sheet1", [][]interface{}{{"cat", "кот"}})

	_, err := ParseXLSX(path, "Missing")

	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	t.Run("text file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dict.txt")
		require.NoError(t, os.WriteFile(path, []byte("cat кот\ndog собака\n"), 0o644))

		result, err := ReadFile(path, "")

		require.NoError(t, err)
		assert.Len(t, result.Pairs, 2)
	})

	t.Run("spreadsheet uses active sheet", func(t *testing.T) {
		path := writeTestXLSX(t, "Sheet1", [][]interface{}{{"cat", "кот"}})

		result, err := ReadFile(path, "")

		require.NoError(t, err)
		assert.Equal(t, []domain.WordPair{{English: "cat", Russian: "кот"}}, result.Pairs)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), "")

		assert.Error(t, err)
	})
}
