// Package scan indexes an image directory by base name and derives
// duplicate-image and missing-asset results from the index.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProgressFunc is called once per processed item with the number of
// items done so far and the total.
type ProgressFunc func(done, total int)

// Group is a set of directory entries sharing one base name. A group
// always has at least one member; only groups with two or more are
// duplicates.
type Group struct {
	Name  string
	Files []string
}

// Index maps base names to the directory entries that share them.
// Iteration order is first-seen order, i.e. directory listing order.
type Index struct {
	names  []string
	groups map[string][]string
}

// BuildIndex lists the immediate entries of dir and groups them by base
// name. It does not recurse; subdirectory names are grouped like any
// other entry. onProgress, if non-nil, is invoked after each entry.
func BuildIndex(dir string, onProgress ProgressFunc) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list image directory: %w", err)
	}

	idx := &Index{groups: make(map[string][]string, len(entries))}
	total := len(entries)
	for i, e := range entries {
		name := e.Name()
		base := baseName(name)
		if _, seen := idx.groups[base]; !seen {
			idx.names = append(idx.names, base)
		}
		idx.groups[base] = append(idx.groups[base], name)
		if onProgress != nil {
			onProgress(i+1, total)
		}
	}
	return idx, nil
}

// baseName strips the final extension. Dotfiles like ".cache" have no
// extension and keep their full name.
func baseName(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// Contains reports whether base is a key in the index.
func (idx *Index) Contains(base string) bool {
	_, ok := idx.groups[base]
	return ok
}

// Files returns the entries recorded for base, in listing order.
func (idx *Index) Files(base string) []string {
	return idx.groups[base]
}

// Len returns the number of directory entries indexed.
func (idx *Index) Len() int {
	n := 0
	for _, files := range idx.groups {
		n += len(files)
	}
	return n
}

// Duplicates returns the groups with two or more members, preserving
// the index's iteration order.
func (idx *Index) Duplicates() []Group {
	var dups []Group
	for _, name := range idx.names {
		files := idx.groups[name]
		if len(files) > 1 {
			dups = append(dups, Group{Name: name, Files: files})
		}
	}
	return dups
}

// Missing returns the subsequence of ids whose value is not a base name
// in idx, preserving the original order. Duplicate identifiers in ids
// are reported as many times as they appear. onProgress, if non-nil, is
// invoked after each identifier.
func Missing(ids []string, idx *Index, onProgress ProgressFunc) []string {
	var missing []string
	total := len(ids)
	for i, id := range ids {
		if !idx.Contains(id) {
			missing = append(missing, id)
		}
		if onProgress != nil {
			onProgress(i+1, total)
		}
	}
	return missing
}
