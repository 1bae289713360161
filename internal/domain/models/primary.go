package models

// PrimaryOrFirst picks the sub-record flagged primary, falling back to the
// first element. ok=false when the relation is empty; the row field then
// renders as a placeholder, not an error.
func PrimaryOrFirst[T any](items []T, isPrimary func(T) bool) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	for _, it := range items {
		if isPrimary(it) {
			return it, true
		}
	}
	return items[0], true
}
