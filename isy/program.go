package isy

import (
	"github.com/cseelye/simpleisy/command"
	"github.com/cseelye/simpleisy/entity"
)

// Program is a handle for a hub-resident automation program. Obtain one
// from Controller.GetProgram.
type Program struct {
	entity entity.Entity
	ctrl   *Controller
}

// Entity returns a copy of the underlying entity record.
func (p *Program) Entity() entity.Entity {
	return *p.entity.DeepCopy()
}

// ID returns the hub-assigned program ID.
func (p *Program) ID() string {
	return p.entity.Address
}

// Name returns the program's name.
func (p *Program) Name() string {
	return p.entity.Name
}

// Run executes the program, evaluating its condition to pick the clause.
func (p *Program) Run() error {
	return p.run(command.Run)
}

// RunThen executes the program's "then" clause directly.
func (p *Program) RunThen() error {
	return p.run(command.RunThen)
}

// RunElse executes the program's "else" clause directly.
func (p *Program) RunElse() error {
	return p.run(command.RunElse)
}

func (p *Program) run(verb command.Verb) error {
	cmd, err := command.Map(verb, p.entity)
	if err != nil {
		return err
	}
	return p.ctrl.ProgramCommand(cmd.Target, cmd.Wire())
}
