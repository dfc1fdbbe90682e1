package models

import "strings"

// equalAddress compares two hex addresses ignoring checksum casing.
func equalAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
