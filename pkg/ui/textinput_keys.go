package ui

// IsPrintableKey returns true if the key is a single printable ASCII character.
// The multi-select filter uses it to decide which keys extend the query.
func IsPrintableKey(key string) bool {
	return len(key) == 1 && key[0] >= 32 && key[0] < 127
}

// isSpaceKey matches the space bar across terminal key spellings
func isSpaceKey(key string) bool {
	return key == " " || key == "space"
}

// isRemoveKey matches keys that delete the chip under the cursor
func isRemoveKey(key string) bool {
	switch key {
	case "x", "backspace", "delete":
		return true
	}
	return false
}
