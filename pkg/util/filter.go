package util

// InPlaceFilter retains the elements keep returns true for, preserving
// order and reusing the backing array.
func InPlaceFilter[T any](items *[]T, keep func(T) bool) {
	filtered := (*items)[:0]
	for _, item := range *items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}

	*items = filtered
}
