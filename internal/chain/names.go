package chain

import "strconv"

// SlotNames returns one stable identifier per position in a resource list
// of the given length. Identifiers are derived from the position index
// only, never from the type name, because the same type may appear in
// several positions. The function is total: any length, including zero,
// yields a valid (possibly empty) result.
func SlotNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i)
	}
	return names
}
