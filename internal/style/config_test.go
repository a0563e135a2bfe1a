package style

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultEnablesEveryCategory(t *testing.T) {
	v := reflect.ValueOf(Default())
	for i := 0; i < v.NumField(); i++ {
		if !v.Field(i).Bool() {
			t.Errorf("field %s should default to true", v.Type().Field(i).Name)
		}
	}
}

func writeStyle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverridesOnlyListedKeys(t *testing.T) {
	path := writeStyle(t, "ident = false\nplus_assign = false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ident {
		t.Error("ident should be off")
	}
	if cfg.PlusAssign {
		t.Error("plus_assign should be off")
	}
	if !cfg.NumInt || !cfg.Assign || !cfg.BitShiftRightAssign {
		t.Error("unlisted keys must keep their defaults")
	}
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := writeStyle(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeStyle(t, "identifier = false\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
