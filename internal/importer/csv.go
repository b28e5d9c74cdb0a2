package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/tally/internal/cli"
	"github.com/Veraticus/tally/internal/common"
	"github.com/Veraticus/tally/internal/model"
)

var requiredColumns = []string{"date", "category_id", "amount"}

// ReadCSV reads expenses from a CSV file with a header row naming the
// date, category_id, amount and (optionally) description columns in any order.
func ReadCSV(r io.Reader) ([]model.NewExpense, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV file is empty", common.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: CSV header is missing %q", common.ErrInvalidInput, name)
		}
	}

	var batch []model.NewExpense
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}

		expense, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		batch = append(batch, expense)
	}

	return batch, nil
}

func parseRecord(record []string, columns map[string]int) (model.NewExpense, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date := field("date")
	if err := cli.ValidateDate(date); err != nil {
		return model.NewExpense{}, err
	}
	categoryID, err := cli.ParseID(field("category_id"))
	if err != nil {
		return model.NewExpense{}, err
	}
	amount, err := cli.ParseAmount(field("amount"))
	if err != nil {
		return model.NewExpense{}, err
	}

	return model.NewExpense{
		CategoryID:  categoryID,
		Amount:      amount,
		Date:        date,
		Description: field("description"),
	}, nil
}
