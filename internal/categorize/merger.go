// Package categorize reconciles the oracle's category labels against the
// canonical row set.
package categorize

import (
	"github.com/lenahart/ledgerlens/internal/model"
)

// Merge resolves a label for every canonical row: the externally supplied
// one when it belongs to the fixed category set, otherwise Uncategorized.
// Identifiers in external that match no row are ignored. Merge never
// fails; a nil or empty external map labels every row Uncategorized.
func Merge(rows []model.Transaction, external map[string]string) model.CategoryMap {
	merged := make(model.CategoryMap, len(rows))

	for i := range rows {
		id := rows[i].ID
		label, ok := external[id]
		if !ok || !model.ValidCategory(label) {
			label = model.Uncategorized
		}
		merged[id] = label
	}

	return merged
}
