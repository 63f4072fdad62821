package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateCatalogPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "items.lua")
	if err := os.WriteFile(file, []byte("[\"a\"] = {}"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cases := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing file", file, false},
		{"with surrounding whitespace", "  " + file + " ", false},
		{"directory", dir, true},
		{"missing", filepath.Join(dir, "nope.lua"), true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCatalogPath(tc.path)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateCatalogPath(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}

func TestValidateImagesPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cases := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing directory", dir, false},
		{"file", file, true},
		{"missing", filepath.Join(dir, "nope"), true},
		{"empty", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImagesPath(tc.path)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateImagesPath(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
		})
	}
}
