package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wordbot/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ParseResult holds the pairs read from a dictionary file
type ParseResult struct {
	Pairs   []domain.WordPair
	Skipped int
}

func (r *ParseResult) add(fields []string, seen map[string]bool) {
	if len(fields) != 2 {
		r.Skipped++
		return
	}
	pair, err := domain.NewWordPair(fields[0], fields[1])
	if err != nil || seen[pair.English] {
		r.Skipped++
		return
	}
	seen[pair.English] = true
	r.Pairs = append(r.Pairs, pair)
}

// ReadFile parses a dictionary file. Files ending in .xlsx are read as
// spreadsheets, anything else as text with one pair per line.
func ReadFile(path, sheet string) (*ParseResult, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ParseXLSX(path, sheet)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary: %w", err)
	}
	defer file.Close()

	return ParseText(file)
}

// ParseText reads "english russian" lines. Blank lines are ignored, lines
// without exactly two words or with invalid words are skipped.
// Only the first pair of a repeated english word is kept.
func ParseText(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		result.add(fields, seen)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	return result, nil
}

// ParseXLSX reads pairs from the first two filled cells of every row.
// An empty sheet name selects the active sheet.
func ParseXLSX(path, sheet string) (*ParseResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(f.GetActiveSheetIndex())
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows of %q: %w", sheet, err)
	}

	result := &ParseResult{}
	seen := make(map[string]bool)

	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if cell = strings.TrimSpace(cell); cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) == 0 {
			continue
		}
		result.add(cells, seen)
	}

	return result, nil
}
