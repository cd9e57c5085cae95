// Package normalize converts raw heterogeneous store documents into
// canonical transaction rows and assembles the delimited export artifact.
package normalize

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/lenahart/ledgerlens/internal/model"
)

// Canonical column names, in the fixed preferred order used for exported
// and serialized forms. Unknown document fields are appended after these.
var PreferredColumns = []string{
	"_id", "userId", "type", "amount", "currency", "category",
	"description", "recipient", "paymentMethod", "status", "date",
	"tags", "htmlFile",
}

var canonicalKeys = map[string]bool{
	"_id": true, "id": true, "userId": true, "type": true, "amount": true,
	"currency": true, "category": true, "description": true,
	"recipient": true, "paymentMethod": true, "status": true, "date": true,
	"tags": true, "htmlFile": true,
}

// Normalize converts raw store documents into canonical rows, preserving
// insertion order. Missing optional fields degrade to empty values; no
// record aborts the batch.
func Normalize(records []model.RawRecord) []model.Transaction {
	rows := make([]model.Transaction, 0, len(records))

	for i, rec := range records {
		row := model.Transaction{
			ID:            recordID(rec, i),
			UserID:        stringify(rec["userId"]),
			Type:          stringify(rec["type"]),
			Amount:        toAmount(rec["amount"]),
			Currency:      stringify(rec["currency"]),
			Category:      stringify(rec["category"]),
			Description:   stringify(rec["description"]),
			Recipient:     stringify(rec["recipient"]),
			PaymentMethod: stringify(rec["paymentMethod"]),
			Status:        stringify(rec["status"]),
			Date:          isoDate(rec["date"]),
			Attachment:    flattenAttachment(rec["htmlFile"]),
			Tags:          toTags(rec["tags"]),
		}

		// Unknown fields ride along in flattened form. Documents are
		// unordered maps, so a deterministic per-record key order stands
		// in for the document's original one.
		var extraKeys []string
		for k := range rec {
			if !canonicalKeys[k] {
				extraKeys = append(extraKeys, k)
			}
		}
		sort.Strings(extraKeys)

		if len(extraKeys) > 0 {
			row.Extra = make(map[string]string, len(extraKeys))
			row.ExtraOrder = extraKeys
			for _, k := range extraKeys {
				row.Extra[k] = stringify(rec[k])
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// recordID extracts the document identifier in string form. The store
// guarantees one, but a synthetic position-based ID keeps the non-empty
// invariant even for hand-built records.
func recordID(rec model.RawRecord, position int) string {
	if id := stringify(rec["_id"]); id != "" {
		return id
	}
	if id := stringify(rec["id"]); id != "" {
		return id
	}
	return fmt.Sprintf("row-%d", position)
}

// stringify reduces any document value to its flat string form.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

// toAmount coerces an amount value, defaulting to 0 on anything unparseable.
func toAmount(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// isoDate reduces datetime-typed values to ISO-8601 strings. Values
// without datetime semantics pass through unchanged.
func isoDate(v any) string {
	if ts, ok := v.(time.Time); ok {
		return ts.UTC().Format(time.RFC3339)
	}
	return stringify(v)
}

// toTags converts a document tag list to an ordered string slice.
func toTags(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		tags := make([]string, 0, len(val))
		for _, item := range val {
			tags = append(tags, stringify(item))
		}
		return tags
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

// flattenAttachment reduces the file sub-object to "name (date)" form.
func flattenAttachment(v any) string {
	attachment, ok := v.(map[string]any)
	if !ok {
		return stringify(v)
	}

	name := stringify(attachment["fileName"])
	if name == "" {
		name = stringify(attachment["name"])
	}
	uploaded := isoDate(attachment["uploadDate"])

	return fmt.Sprintf("%s (%s)", name, uploaded)
}
