package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lenahart/ledgerlens/internal/model"
	"github.com/lenahart/ledgerlens/internal/service"
)

// SaveTransactions stores a batch of transactions. Existing rows with the
// same ID are replaced, so re-importing a file is safe.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO transactions
		(id, user_id, type, amount, currency, category, description,
		 recipient, payment_method, status, date, tags, attachment, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		tags, err := marshalJSONColumn(txn.Tags)
		if err != nil {
			return fmt.Errorf("failed to encode tags for %s: %w", txn.ID, err)
		}
		extra, err := marshalJSONColumn(txn.Extra)
		if err != nil {
			return fmt.Errorf("failed to encode extra fields for %s: %w", txn.ID, err)
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID, txn.UserID, txn.Type, txn.Amount, txn.Currency,
			txn.Category, txn.Description, txn.Recipient, txn.PaymentMethod,
			txn.Status, txn.Date, tags, txn.Attachment, extra,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transactions: %w", err)
	}

	return nil
}

// GetRawTransactions returns a user's transactions as raw documents in
// insertion order, reassembling the JSON overflow column into top-level
// fields.
func (s *SQLiteStorage) GetRawTransactions(ctx context.Context, userID string, filter service.TransactionFilter) ([]model.RawRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := strings.Builder{}
	query.WriteString(`
		SELECT id, user_id, type, amount, currency, category, description,
		       recipient, payment_method, status, date, tags, attachment, extra
		FROM transactions
		WHERE user_id = ?
	`)
	args := []any{userID}

	if filter.Type != "" {
		query.WriteString(" AND type = ?")
		args = append(args, filter.Type)
	}
	if filter.StartDate != nil {
		query.WriteString(" AND date >= ?")
		args = append(args, filter.StartDate.UTC().Format(time.RFC3339))
	}
	if filter.EndDate != nil {
		query.WriteString(" AND date <= ?")
		args = append(args, filter.EndDate.UTC().Format(time.RFC3339))
	}

	query.WriteString(" ORDER BY rowid")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := make([]model.RawRecord, 0)
	for rows.Next() {
		rec, err := scanRawRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return records, nil
}

// CountTransactions returns the number of stored transactions for a user.
func (s *SQLiteStorage) CountTransactions(ctx context.Context, userID string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE user_id = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return count, nil
}

// scanRawRecord rebuilds a document from a row. Columns left empty on
// write stay absent from the document, matching how imported records
// omitted the field in the first place.
func scanRawRecord(rows *sql.Rows) (model.RawRecord, error) {
	var (
		id, userID                             string
		amount                                 float64
		typ, currency, category, description   sql.NullString
		recipient, paymentMethod, status, date sql.NullString
		tags, attachment, extra                sql.NullString
	)

	if err := rows.Scan(&id, &userID, &typ, &amount, &currency, &category,
		&description, &recipient, &paymentMethod, &status, &date,
		&tags, &attachment, &extra); err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	rec := model.RawRecord{
		"_id":    id,
		"userId": userID,
		"amount": amount,
	}

	setIfPresent := func(key string, v sql.NullString) {
		if v.Valid && v.String != "" {
			rec[key] = v.String
		}
	}
	setIfPresent("type", typ)
	setIfPresent("currency", currency)
	setIfPresent("category", category)
	setIfPresent("description", description)
	setIfPresent("recipient", recipient)
	setIfPresent("paymentMethod", paymentMethod)
	setIfPresent("status", status)
	setIfPresent("date", date)
	setIfPresent("htmlFile", attachment)

	if tags.Valid && tags.String != "" {
		var list []string
		if err := json.Unmarshal([]byte(tags.String), &list); err == nil && len(list) > 0 {
			rec["tags"] = list
		}
	}

	if extra.Valid && extra.String != "" {
		var fields map[string]string
		if err := json.Unmarshal([]byte(extra.String), &fields); err == nil {
			for k, v := range fields {
				rec[k] = v
			}
		}
	}

	return rec, nil
}

// marshalJSONColumn encodes a value for a JSON text column, mapping empty
// collections to the empty string so they read back as absent.
func marshalJSONColumn(v any) (string, error) {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "", nil
		}
	case map[string]string:
		if len(val) == 0 {
			return "", nil
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
