package model

import (
	"strings"
	"time"
)

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// RawRecord is a single transaction document exactly as the store returned
// it. Field presence is non-uniform across records.
type RawRecord map[string]any

// Transaction is the canonical row produced by the normalizer. It is
// immutable for the duration of a pipeline run.
type Transaction struct {
	ID            string
	UserID        string
	Type          string // "income" or "expense"
	Amount        float64
	Currency      string
	Category      string
	Description   string
	Recipient     string
	PaymentMethod string
	Status        string
	Date          string // ISO-8601 when convertible, original text otherwise
	Attachment    string // flattened "name (date)" form of the file sub-object
	Tags          []string

	// Fields the store returned that are not part of the canonical set,
	// flattened to strings, original order preserved.
	Extra      map[string]string
	ExtraOrder []string
}

// DateTime parses the row's date field. It accepts both a full timestamp
// form and a date-only form; anything else reports false.
func (t *Transaction) DateTime() (time.Time, bool) {
	s := strings.TrimSpace(t.Date)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "T") {
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
	}

	if len(s) >= 10 {
		if ts, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return ts, true
		}
	}

	return time.Time{}, false
}

// TagsJoined returns the comma-separated flat form of the tag list used by
// the export artifact.
func (t *Transaction) TagsJoined() string {
	return strings.Join(t.Tags, ",")
}
