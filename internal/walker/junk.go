package walker

import "strings"

// junkNames are OS-generated auxiliary files users rarely want packaged.
// Matching is case-insensitive against the entry's final path component.
var junkNames = map[string]bool{
	"thumbs.db":   true,
	"desktop.ini": true,
	".ds_store":   true,
}

func isJunk(name string) bool {
	return junkNames[strings.ToLower(name)]
}
