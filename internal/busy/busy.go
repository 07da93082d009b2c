package busy

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tiliavir/dial/internal/model"
)

// minColorLength rejects the empty string and short placeholder labels.
const minColorLength = 3

// ValidationError describes the first invalid field of an Input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Input is a busy interval as typed by the user, before validation.
type Input struct {
	StartHour   string
	StartMinute string
	EndHour     string
	EndMinute   string
	Color       string
}

// Parse validates in and returns the interval. Fields are checked in order
// start hour, start minute, end hour, end minute, color; the first failure
// is returned and nothing is created.
func (in Input) Parse() (model.BusyInterval, error) {
	sh, err := parseField("start hour", in.StartHour, 24)
	if err != nil {
		return model.BusyInterval{}, err
	}
	sm, err := parseField("start minute", in.StartMinute, 60)
	if err != nil {
		return model.BusyInterval{}, err
	}
	eh, err := parseField("end hour", in.EndHour, 24)
	if err != nil {
		return model.BusyInterval{}, err
	}
	em, err := parseField("end minute", in.EndMinute, 60)
	if err != nil {
		return model.BusyInterval{}, err
	}
	color := strings.TrimSpace(in.Color)
	if len(color) < minColorLength {
		return model.BusyInterval{}, &ValidationError{Field: "color", Message: "no colour selected"}
	}
	return model.BusyInterval{
		Start: model.TimeOfDay{Hour: sh, Minute: sm},
		End:   model.TimeOfDay{Hour: eh, Minute: em},
		Color: color,
	}, nil
}

func parseField(name, raw string, bound int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("%s %q is not a whole number", name, raw),
		}
	}
	if n < 0 || n >= bound {
		return 0, &ValidationError{
			Field:   name,
			Message: fmt.Sprintf("%s must be at least 0 and less than %d, got %d", name, bound, n),
		}
	}
	return n, nil
}

// Add returns a new list with b in front of list. list is not modified.
func Add(list []model.BusyInterval, b model.BusyInterval) []model.BusyInterval {
	out := make([]model.BusyInterval, 0, len(list)+1)
	out = append(out, b)
	return append(out, list...)
}

// Remove returns a new list without any entry equal to b. list is not
// modified; when nothing matches the result equals list.
func Remove(list []model.BusyInterval, b model.BusyInterval) []model.BusyInterval {
	out := make([]model.BusyInterval, 0, len(list))
	for _, e := range list {
		if e != b {
			out = append(out, e)
		}
	}
	return out
}

// ParseSpec parses the compact "HH:MM-HH:MM=color" form used on the command line.
func ParseSpec(spec string) (model.BusyInterval, error) {
	span, color, ok := strings.Cut(spec, "=")
	if !ok {
		return model.BusyInterval{}, fmt.Errorf("invalid busy interval %q: want HH:MM-HH:MM=color", spec)
	}
	from, to, ok := strings.Cut(span, "-")
	if !ok {
		return model.BusyInterval{}, fmt.Errorf("invalid busy interval %q: want HH:MM-HH:MM=color", spec)
	}
	sh, sm, ok1 := strings.Cut(from, ":")
	eh, em, ok2 := strings.Cut(to, ":")
	if !ok1 || !ok2 {
		return model.BusyInterval{}, fmt.Errorf("invalid busy interval %q: want HH:MM-HH:MM=color", spec)
	}
	return Input{StartHour: sh, StartMinute: sm, EndHour: eh, EndMinute: em, Color: color}.Parse()
}
