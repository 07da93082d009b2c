package model

import "fmt"

// TimeOfDay is the wall-clock reading shown on the dial. Only hour, minute
// and second matter; dates are never carried.
type TimeOfDay struct {
	Hour   int `json:"hour" yaml:"hour"`
	Minute int `json:"minute" yaml:"minute"`
	Second int `json:"second" yaml:"second"`
}

// Validate range-checks the fields as 0–23, 0–59 and 0–59.
func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 {
		return fmt.Errorf("hour %d out of range 0-23", t.Hour)
	}
	if t.Minute < 0 || t.Minute > 59 {
		return fmt.Errorf("minute %d out of range 0-59", t.Minute)
	}
	if t.Second < 0 || t.Second > 59 {
		return fmt.Errorf("second %d out of range 0-59", t.Second)
	}
	return nil
}

// String formats t as HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// BusyInterval is a shaded band on the dial between Start and End.
// Two intervals are the same interval iff they compare equal with ==.
type BusyInterval struct {
	Start TimeOfDay `json:"start" yaml:"start"`
	End   TimeOfDay `json:"end" yaml:"end"`
	Color string    `json:"color" yaml:"color"`
}

// Viewport is the pixel size of the container the clock is drawn into.
type Viewport struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Width, v.Height)
}
