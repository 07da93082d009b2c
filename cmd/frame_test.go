package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Tiliavir/dial/internal/config"
	"github.com/Tiliavir/dial/internal/model"
)

func TestPickFormat(t *testing.T) {
	c := config.Default()
	tests := []struct {
		flag, out string
		want      string
	}{
		{"", "", "svg"},
		{"", "clock.PNG", "png"},
		{"svg", "clock.png", "svg"},
		{"PNG", "", "png"},
		{"", "clock.txt", "svg"},
	}
	for _, tt := range tests {
		if got := pickFormat(tt.flag, tt.out, c); got != tt.want {
			t.Errorf("pickFormat(%q, %q) = %q, want %q", tt.flag, tt.out, got, tt.want)
		}
	}
}

func TestPickViewport(t *testing.T) {
	c := config.Default()
	vp, err := pickViewport("", c)
	if err != nil || vp != (model.Viewport{Width: 510, Height: 510}) {
		t.Errorf("default viewport = %v, %v", vp, err)
	}
	vp, err = pickViewport("500x300", c)
	if err != nil || vp != (model.Viewport{Width: 500, Height: 300}) {
		t.Errorf("flag viewport = %v, %v", vp, err)
	}
	if _, err := pickViewport("wide", c); err == nil {
		t.Error("expected error for malformed viewport")
	}
}

func TestCollectBusy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busy.yaml")
	content := "busy:\n  - start: \"08:00\"\n    end: \"09:00\"\n    color: green\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := collectBusy(path, []string{"14:00-20:00=red"})
	if err != nil {
		t.Fatalf("collectBusy: %v", err)
	}
	want := []model.BusyInterval{
		{Start: model.TimeOfDay{Hour: 8}, End: model.TimeOfDay{Hour: 9}, Color: "green"},
		{Start: model.TimeOfDay{Hour: 14}, End: model.TimeOfDay{Hour: 20}, Color: "red"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("collectBusy (-want +got):\n%s", diff)
	}

	if _, err := collectBusy("", []string{"25:00-20:00=red"}); err == nil {
		t.Error("expected error for out-of-range --busy")
	}
}
