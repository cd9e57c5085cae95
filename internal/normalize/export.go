package normalize

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lenahart/ledgerlens/internal/model"
)

// Table is the flat tabular form of a canonical row set: the export
// artifact consumed by the oracle and written to disk by the exporter.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Flatten lays out canonical rows as a table: preferred columns first,
// then the union of unknown columns in first-seen order across the batch.
func Flatten(rows []model.Transaction) *Table {
	columns := make([]string, 0, len(PreferredColumns))
	columns = append(columns, PreferredColumns...)

	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		seen[c] = true
	}
	for _, row := range rows {
		for _, k := range row.ExtraOrder {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}

	table := &Table{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		table.Rows = append(table.Rows, flattenRow(&row, columns))
	}

	return table
}

func flattenRow(row *model.Transaction, columns []string) []string {
	values := make([]string, 0, len(columns))
	for _, col := range columns {
		values = append(values, columnValue(row, col))
	}
	return values
}

func columnValue(row *model.Transaction, col string) string {
	switch col {
	case "_id":
		return row.ID
	case "userId":
		return row.UserID
	case "type":
		return row.Type
	case "amount":
		return strconv.FormatFloat(row.Amount, 'f', -1, 64)
	case "currency":
		return row.Currency
	case "category":
		return row.Category
	case "description":
		return row.Description
	case "recipient":
		return row.Recipient
	case "paymentMethod":
		return row.PaymentMethod
	case "status":
		return row.Status
	case "date":
		return row.Date
	case "tags":
		return row.TagsJoined()
	case "htmlFile":
		return row.Attachment
	default:
		return row.Extra[col]
	}
}

// CSV renders the table as delimited text with a header row.
func (t *Table) CSV() (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(t.Columns); err != nil {
		return "", fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}

	return sb.String(), nil
}

// WriteFile writes the CSV form of the table to path.
func (t *Table) WriteFile(path string) error {
	content, err := t.CSV()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}
