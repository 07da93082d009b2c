package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/model"
	"github.com/Tiliavir/dial/internal/storage"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames", "clock.svg")

	if err := storage.WriteAtomic(path, []byte("first")); err != nil {
		t.Fatalf("WriteAtomic: %v", err)
	}
	if err := storage.WriteAtomic(path, []byte("second")); err != nil {
		t.Fatalf("WriteAtomic (overwrite): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("content = %q, want %q", data, "second")
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should not remain after a successful write")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "busy.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBusyFile(t *testing.T) {
	path := writeFile(t, `
busy:
  - start: "14:00"
    end: "20:00"
    color: red
  - start: "9:30"
    end: "10:15"
    color: "#3366ff"
`)
	got, err := storage.LoadBusyFile(path)
	if err != nil {
		t.Fatalf("LoadBusyFile: %v", err)
	}
	want := []model.BusyInterval{
		{Start: model.TimeOfDay{Hour: 14}, End: model.TimeOfDay{Hour: 20}, Color: "red"},
		{Start: model.TimeOfDay{Hour: 9, Minute: 30}, End: model.TimeOfDay{Hour: 10, Minute: 15}, Color: "#3366ff"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadBusyFile mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBusyFileInvalidEntry(t *testing.T) {
	path := writeFile(t, `
busy:
  - start: "25:00"
    end: "20:00"
    color: red
`)
	_, err := storage.LoadBusyFile(path)
	if err == nil {
		t.Fatal("expected error for out-of-range hour")
	}
	var verr *busy.ValidationError
	if !errors.As(err, &verr) || verr.Field != "start hour" {
		t.Errorf("error = %v, want wrapped start hour ValidationError", err)
	}
}

func TestLoadBusyFileErrors(t *testing.T) {
	if _, err := storage.LoadBusyFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := storage.LoadBusyFile(writeFile(t, "busy: [unclosed")); err == nil {
		t.Error("expected error for corrupt YAML")
	}
}
