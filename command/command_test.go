package command

import (
	"errors"
	"testing"

	"github.com/cseelye/simpleisy/entity"
)

func deviceEntity() entity.Entity {
	return entity.Entity{Address: "1A 2B 3C", Name: "Lamp", Kind: entity.KindDevice}
}

func programEntity() entity.Entity {
	return entity.Entity{Address: "0012", Name: "Night mode", Kind: entity.KindProgram}
}

func TestMap_VerbTable(t *testing.T) {
	tests := []struct {
		name        string
		verb        Verb
		target      entity.Entity
		wantCode    string
		wantSubcode string
		wantWire    string
	}{
		{
			name:     "turn on device",
			verb:     TurnOn,
			target:   deviceEntity(),
			wantCode: "DON",
			wantWire: "DON",
		},
		{
			name:     "turn off device",
			verb:     TurnOff,
			target:   deviceEntity(),
			wantCode: "DOF",
			wantWire: "DOF",
		},
		{
			name:     "turn on group",
			verb:     TurnOn,
			target:   entity.Entity{Address: "12345", Kind: entity.KindGroup},
			wantCode: "DON",
			wantWire: "DON",
		},
		{
			name:     "run program",
			verb:     Run,
			target:   programEntity(),
			wantCode: "RUN",
			wantWire: "run",
		},
		{
			name:        "run then clause",
			verb:        RunThen,
			target:      programEntity(),
			wantCode:    "RUN",
			wantSubcode: "THEN",
			wantWire:    "runThen",
		},
		{
			name:        "run else clause",
			verb:        RunElse,
			target:      programEntity(),
			wantCode:    "RUN",
			wantSubcode: "ELSE",
			wantWire:    "runElse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Map(tt.verb, tt.target)
			if err != nil {
				t.Fatalf("Map() error = %v", err)
			}
			if cmd.Target != tt.target.Address {
				t.Errorf("Target = %q, want %q", cmd.Target, tt.target.Address)
			}
			if cmd.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", cmd.Code, tt.wantCode)
			}
			if cmd.Subcode != tt.wantSubcode {
				t.Errorf("Subcode = %q, want %q", cmd.Subcode, tt.wantSubcode)
			}
			if got := cmd.Wire(); got != tt.wantWire {
				t.Errorf("Wire() = %q, want %q", got, tt.wantWire)
			}
		})
	}
}

func TestMap_KindValidation(t *testing.T) {
	tests := []struct {
		name   string
		verb   Verb
		target entity.Entity
	}{
		{
			name:   "turn on program",
			verb:   TurnOn,
			target: programEntity(),
		},
		{
			name:   "turn off program",
			verb:   TurnOff,
			target: programEntity(),
		},
		{
			name:   "run device",
			verb:   Run,
			target: deviceEntity(),
		},
		{
			name:   "run folder",
			verb:   Run,
			target: entity.Entity{Address: "23691", Kind: entity.KindFolder},
		},
		{
			name:   "turn on folder",
			verb:   TurnOn,
			target: entity.Entity{Address: "23691", Kind: entity.KindFolder},
		},
		{
			name:   "unknown verb",
			verb:   Verb("explode"),
			target: deviceEntity(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Map(tt.verb, tt.target)
			if !errors.Is(err, ErrInvalidCommand) {
				t.Errorf("Map() error = %v, want ErrInvalidCommand", err)
			}
		})
	}
}

func TestMap_Pure(t *testing.T) {
	dev := deviceEntity()

	first, err := Map(TurnOn, dev)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	second, err := Map(TurnOn, dev)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if first != second {
		t.Errorf("Map() not deterministic: %+v vs %+v", first, second)
	}
}

func TestOnLevel(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    string
		wantErr bool
	}{
		{name: "full", percent: 100, want: "255"},
		{name: "zero", percent: 0, want: "0"},
		{name: "half", percent: 50, want: "127"},
		{name: "negative", percent: -1, wantErr: true},
		{name: "over 100", percent: 101, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OnLevel(tt.percent)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCommand) {
					t.Errorf("OnLevel() error = %v, want ErrInvalidCommand", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("OnLevel() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("OnLevel(%d) = %q, want %q", tt.percent, got, tt.want)
			}
		})
	}
}

func TestWire_DeviceParameter(t *testing.T) {
	cmd := Command{Target: "1A 2B 3C", Code: CodeOn, Parameter: "200"}
	if got := cmd.Wire(); got != "DON/200" {
		t.Errorf("Wire() = %q, want %q", got, "DON/200")
	}
}
