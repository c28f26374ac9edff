package utils

import "cmp"

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// MaxIndex returns the first index holding the largest value and whether no
// other index holds it too. It returns -1 for an empty slice.
func MaxIndex[T cmp.Ordered](slice []T) (int, bool) {
	best, unique := -1, false
	for i, v := range slice {
		switch {
		case best < 0 || v > slice[best]:
			best, unique = i, true
		case v == slice[best]:
			unique = false
		}
	}
	return best, unique
}
