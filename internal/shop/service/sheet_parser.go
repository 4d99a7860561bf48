// Package service implements the inventory workbook parser used by the bulk
// upload flow.
package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/pointward/gateway/internal/errors"
	shopDomain "github.com/pointward/gateway/internal/shop/domain"
)

// Column headers the workbook must carry, matched case-insensitively on the
// first row of the first sheet.
const (
	columnName                   = "name"
	columnDescription            = "description"
	columnPhotoURL               = "photo_url"
	columnPrice                  = "price"
	columnPercentPointAllocation = "percent_point_allocation"
)

var requiredColumns = []string{
	columnName,
	columnDescription,
	columnPhotoURL,
	columnPrice,
	columnPercentPointAllocation,
}

// SheetParser extracts catalog rows from an uploaded workbook.
type SheetParser interface {
	// Parse reads an xlsx workbook and returns its catalog rows in sheet
	// order. A missing required column or an unparsable numeric cell fails
	// the whole upload with ErrInvalidInput.
	Parse(sheet io.Reader) ([]shopDomain.SheetItem, error)
}

// sheetParser implements SheetParser on top of excelize.
type sheetParser struct{}

// NewSheetParser creates a new SheetParser.
func NewSheetParser() SheetParser {
	return &sheetParser{}
}

// Parse reads the first sheet of the workbook. The first row is the header;
// columns may appear in any order. Blank cells fall back to zero values, but
// rows with all cells blank are skipped.
func (p *sheetParser) Parse(sheet io.Reader) ([]shopDomain.SheetItem, error) {
	workbook, err := excelize.OpenReader(sheet)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "file is not a readable workbook")
	}
	defer func() {
		_ = workbook.Close()
	}()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "workbook has no sheets")
	}

	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "failed to read workbook rows")
	}
	if len(rows) == 0 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "workbook has no header row")
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	items := make([]shopDomain.SheetItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if rowIsBlank(row) {
			continue
		}

		// Header is row 1, so data rows are numbered from 2.
		rowNumber := i + 2

		price, err := parseNumericCell(cell(row, columns[columnPrice]), columnPrice, rowNumber)
		if err != nil {
			return nil, err
		}
		percent, err := parseNumericCell(
			cell(row, columns[columnPercentPointAllocation]), columnPercentPointAllocation, rowNumber)
		if err != nil {
			return nil, err
		}

		items = append(items, shopDomain.SheetItem{
			Name:                   cell(row, columns[columnName]),
			Description:            cell(row, columns[columnDescription]),
			PhotoURL:               cell(row, columns[columnPhotoURL]),
			Price:                  price,
			PercentPointAllocation: percent,
		})
	}

	return items, nil
}

// mapColumns resolves each required column to its index in the header row.
func mapColumns(header []string) (map[string]int, error) {
	indexes := make(map[string]int, len(header))
	for i, name := range header {
		indexes[strings.ToLower(strings.TrimSpace(name))] = i
	}

	columns := make(map[string]int, len(requiredColumns))
	for _, name := range requiredColumns {
		index, ok := indexes[name]
		if !ok {
			return nil, apperrors.Wrap(apperrors.ErrInvalidInput,
				fmt.Sprintf("workbook is missing the %q column", name))
		}
		columns[name] = index
	}
	return columns, nil
}

// cell returns the trimmed cell at the given index. Trailing blank cells are
// dropped by the reader, so a short row reads as blank cells.
func cell(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

// parseNumericCell parses a numeric cell, treating blank as zero.
func parseNumericCell(value, column string, rowNumber int) (float64, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput,
			fmt.Sprintf("row %d has a non-numeric %s", rowNumber, column))
	}
	return parsed, nil
}

// rowIsBlank reports whether every cell in the row is empty.
func rowIsBlank(row []string) bool {
	for _, value := range row {
		if strings.TrimSpace(value) != "" {
			return false
		}
	}
	return true
}
