package busy

import (
	"fmt"
	"strings"
)

// Verb is the action of an edit command.
type Verb string

const (
	VerbAdd    Verb = "add"
	VerbRemove Verb = "remove"
	VerbList   Verb = "list"
	VerbResize Verb = "resize"
	VerbHelp   Verb = "help"
)

// Command is one line of the interactive edit surface, e.g.
//
//	add 14 00 20 00 red
//	remove 14 00 20 00 red
//	resize 500 300
type Command struct {
	Verb  Verb
	Input Input
	// Args holds the raw arguments of verbs that take no Input.
	Args []string
}

// ParseCommand splits line into a Command. It only checks the shape of the
// line; field values are validated later by Input.Parse.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}
	verb := Verb(strings.ToLower(fields[0]))
	args := fields[1:]
	switch verb {
	case VerbAdd, VerbRemove:
		if len(args) < 4 {
			return Command{}, fmt.Errorf("usage: %s START_HOUR START_MINUTE END_HOUR END_MINUTE COLOR", verb)
		}
		in := Input{StartHour: args[0], StartMinute: args[1], EndHour: args[2], EndMinute: args[3]}
		if len(args) > 4 {
			in.Color = strings.Join(args[4:], " ")
		}
		return Command{Verb: verb, Input: in}, nil
	case VerbResize:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("usage: resize WIDTH HEIGHT")
		}
		return Command{Verb: verb, Args: args}, nil
	case VerbList, VerbHelp:
		return Command{Verb: verb}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q (try \"help\")", fields[0])
	}
}

// Help is the usage text of the edit surface.
const Help = `Commands:
  add SH SM EH EM COLOR      add a busy interval, e.g. "add 14 00 20 00 red"
  remove SH SM EH EM COLOR   remove every matching busy interval
  list                       show busy intervals, newest first
  resize W H                 set the viewport size in pixels
  help                       show this text`
