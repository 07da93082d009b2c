package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Tiliavir/dial/internal/busy"
	"github.com/Tiliavir/dial/internal/model"
)

// BaseDir returns the root data directory (~/.dial).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".dial"), nil
}

// WriteAtomic writes data to path via a temp file and rename, so readers
// polling the file never see a half-written frame.
func WriteAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage error creating directories: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// busyFile is the YAML layout accepted by LoadBusyFile:
//
//	busy:
//	  - start: "14:00"
//	    end: "20:00"
//	    color: red
type busyFile struct {
	Busy []busyEntry `yaml:"busy"`
}

type busyEntry struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Color string `yaml:"color"`
}

// LoadBusyFile reads busy intervals from a YAML file. Every entry goes
// through the same validation as interactive input; the first invalid entry
// aborts the load. File order is display order.
func LoadBusyFile(path string) ([]model.BusyInterval, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("busy file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var f busyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}

	intervals := make([]model.BusyInterval, 0, len(f.Busy))
	for i, e := range f.Busy {
		sh, sm, _ := strings.Cut(e.Start, ":")
		eh, em, _ := strings.Cut(e.End, ":")
		b, err := busy.Input{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em, Color: e.Color}.Parse()
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", path, i+1, err)
		}
		intervals = append(intervals, b)
	}
	return intervals, nil
}
