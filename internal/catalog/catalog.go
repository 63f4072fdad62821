// Package catalog extracts item identifiers from an ox_inventory-style
// items catalog file.
package catalog

import (
	"fmt"
	"os"
	"regexp"
)

// entryPattern matches a quoted entry key followed by an opening table
// brace: ["sandwich"] = { or ['sandwich'] = {. The key itself may not
// contain quote characters.
var entryPattern = regexp.MustCompile(`\[['"]([^'"]+)['"]\]\s*=\s*\{`)

// Identifiers reads the catalog file at path and returns every declared
// entry identifier in order of appearance. Identifiers are not
// deduplicated; a key declared twice is returned twice.
func Identifiers(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Extract(string(content)), nil
}

// Extract returns the entry identifiers declared in the given catalog
// text, left to right, non-overlapping.
func Extract(content string) []string {
	matches := entryPattern.FindAllStringSubmatch(content, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m[1])
	}
	return ids
}
