// Package command maps logical verbs onto the hub's protocol command codes
// and validates that a verb applies to an entity's kind.
//
// Mapping is a pure function: no I/O, no mutation. The same (verb, entity)
// input always yields the same Command tuple.
package command

import (
	"fmt"
	"strconv"

	"github.com/cseelye/simpleisy/entity"
)

// Verb is a logical action a caller can request on an entity.
type Verb string

// Verb constants.
const (
	TurnOn  Verb = "turn_on"
	TurnOff Verb = "turn_off"
	Run     Verb = "run"
	RunThen Verb = "run_then"
	RunElse Verb = "run_else"
)

// Protocol command codes and subcodes.
const (
	CodeOn  = "DON"
	CodeOff = "DOF"
	CodeRun = "RUN"

	SubcodeThen = "THEN"
	SubcodeElse = "ELSE"
)

// maxOnLevel is the hub's raw on-level ceiling for DON.
const maxOnLevel = 255

// Command is the protocol-level tuple for one action: the addressed target,
// the short command code, an optional subcode, and an optional parameter.
type Command struct {
	// Target is the node address or program ID the command is aimed at.
	Target string

	// Code is the protocol command code ("DON", "DOF", "RUN").
	Code string

	// Subcode selects a RUN clause ("THEN" or "ELSE"); empty otherwise.
	Subcode string

	// Parameter is an optional command argument, such as the raw on-level
	// for DON. Empty when the command takes none.
	Parameter string
}

// Wire renders the tuple as the hub's path token.
//
// Device commands keep their code form, with the parameter appended as a
// path segment ("DON", "DON/200", "DOF"). Program commands use the hub's
// camel-cased run tokens: RUN maps to "run", RUN/THEN to "runThen", and
// RUN/ELSE to "runElse".
func (c Command) Wire() string {
	if c.Code == CodeRun {
		switch c.Subcode {
		case SubcodeThen:
			return "runThen"
		case SubcodeElse:
			return "runElse"
		default:
			return "run"
		}
	}
	if c.Parameter != "" {
		return c.Code + "/" + c.Parameter
	}
	return c.Code
}

// Map resolves a verb against an entity into a protocol command tuple.
//
// TurnOn and TurnOff apply to devices and groups (the hub drives scenes with
// the same codes); Run, RunThen, and RunElse apply only to programs. Any
// other combination fails with ErrInvalidCommand. Folders accept no verbs.
func Map(verb Verb, e entity.Entity) (Command, error) {
	switch verb {
	case TurnOn, TurnOff:
		if e.Kind != entity.KindDevice && e.Kind != entity.KindGroup {
			return Command{}, mismatch(verb, e)
		}
		code := CodeOn
		if verb == TurnOff {
			code = CodeOff
		}
		return Command{Target: e.Address, Code: code}, nil

	case Run, RunThen, RunElse:
		if e.Kind != entity.KindProgram {
			return Command{}, mismatch(verb, e)
		}
		cmd := Command{Target: e.Address, Code: CodeRun}
		switch verb {
		case RunThen:
			cmd.Subcode = SubcodeThen
		case RunElse:
			cmd.Subcode = SubcodeElse
		}
		return cmd, nil
	}

	return Command{}, fmt.Errorf("%w: unknown verb %q", ErrInvalidCommand, verb)
}

// OnLevel converts a brightness percentage (0-100) to the hub's raw
// DON parameter (0-255).
func OnLevel(percent int) (string, error) {
	if percent < 0 || percent > 100 {
		return "", fmt.Errorf("%w: on-level %d%% outside 0-100", ErrInvalidCommand, percent)
	}
	return strconv.Itoa(percent * maxOnLevel / 100), nil
}

func mismatch(verb Verb, e entity.Entity) error {
	return fmt.Errorf("%w: %s on %s %q", ErrInvalidCommand, verb, e.Kind, e.Address)
}
