package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFiles(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("WriteFile %s: %v", name, err)
		}
	}
	return dir
}

func TestBuildIndex_GroupsByBaseName(t *testing.T) {
	dir := writeFiles(t, "pic.png", "pic.jpg", "other.png")

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	if idx.Len() != 3 {
		t.Errorf("Len = %d, want 3", idx.Len())
	}
	if got := idx.Files("pic"); len(got) != 2 {
		t.Errorf("Files(pic) = %v, want 2 entries", got)
	}
	if !idx.Contains("other") {
		t.Error("Contains(other) = false, want true")
	}
	if idx.Contains("pic.png") {
		t.Error("Contains(pic.png) = true, want false (full names are not keys)")
	}
}

func TestDuplicates_OnlySharedBaseNames(t *testing.T) {
	dir := writeFiles(t, "pic.png", "pic.jpg", "other.png")

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	dups := idx.Duplicates()
	if len(dups) != 1 {
		t.Fatalf("Duplicates = %v, want exactly one group", dups)
	}
	if dups[0].Name != "pic" || len(dups[0].Files) != 2 {
		t.Errorf("group = %+v, want base name pic with 2 files", dups[0])
	}
}

func TestDuplicates_CoverExactlySharedFiles(t *testing.T) {
	dir := writeFiles(t, "a.png", "a.jpg", "a.webp", "b.png", "b.jpg", "c.png")

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	members := make(map[string]bool)
	for _, g := range idx.Duplicates() {
		if len(g.Files) < 2 {
			t.Errorf("group %s has %d members, want >= 2", g.Name, len(g.Files))
		}
		for _, f := range g.Files {
			members[f] = true
		}
	}

	want := map[string]bool{
		"a.png": true, "a.jpg": true, "a.webp": true,
		"b.png": true, "b.jpg": true,
	}
	if !reflect.DeepEqual(members, want) {
		t.Errorf("duplicate members = %v, want %v", members, want)
	}
}

func TestBuildIndex_SubdirIsOrdinaryEntry(t *testing.T) {
	dir := writeFiles(t, "pic.png")
	if err := os.Mkdir(filepath.Join(dir, "pic"), 0755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	dups := idx.Duplicates()
	if len(dups) != 1 || len(dups[0].Files) != 2 {
		t.Errorf("Duplicates = %v, want one group with the file and the subdirectory", dups)
	}
}

func TestBaseName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"pic.png", "pic"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".cache", ".cache"},
	}
	for _, tc := range cases {
		if got := baseName(tc.name); got != tc.want {
			t.Errorf("baseName(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestMissing_PreservesCatalogOrder(t *testing.T) {
	dir := writeFiles(t, "a.png", "c.png")

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	got := Missing([]string{"a", "b", "c"}, idx, nil)
	want := []string{"b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want %v", got, want)
	}
}

func TestMissing_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	idx, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	got := Missing([]string{"x", "y", "z"}, idx, nil)
	want := []string{"x", "y", "z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Missing = %v, want all identifiers in order", got)
	}
	if dups := idx.Duplicates(); len(dups) != 0 {
		t.Errorf("Duplicates on empty dir = %v, want none", dups)
	}
}

func TestScan_Idempotent(t *testing.T) {
	dir := writeFiles(t, "pic.png", "pic.jpg", "other.png", "water.png")
	ids := []string{"pic", "bread", "water"}

	first, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}
	second, err := BuildIndex(dir, nil)
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	if !reflect.DeepEqual(first.Duplicates(), second.Duplicates()) {
		t.Error("Duplicates differ between identical scans")
	}
	if !reflect.DeepEqual(Missing(ids, first, nil), Missing(ids, second, nil)) {
		t.Error("Missing differs between identical scans")
	}
}

func TestProgressReporting(t *testing.T) {
	dir := writeFiles(t, "a.png", "b.png", "c.png")

	var calls [][2]int
	idx, err := BuildIndex(dir, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	if err != nil {
		t.Fatalf("BuildIndex: %v", err)
	}

	if len(calls) != 3 {
		t.Fatalf("progress calls = %d, want one per entry", len(calls))
	}
	if last := calls[len(calls)-1]; last != [2]int{3, 3} {
		t.Errorf("final progress = %v, want [3 3]", last)
	}

	calls = nil
	Missing([]string{"a", "b", "x", "y"}, idx, func(done, total int) {
		calls = append(calls, [2]int{done, total})
	})
	if len(calls) != 4 {
		t.Fatalf("missing progress calls = %d, want one per identifier", len(calls))
	}
	if last := calls[len(calls)-1]; last != [2]int{4, 4} {
		t.Errorf("final missing progress = %v, want [4 4]", last)
	}
}

func TestBuildIndex_MissingDirectory(t *testing.T) {
	_, err := BuildIndex(filepath.Join(t.TempDir(), "nope"), nil)
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}
