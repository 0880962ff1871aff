package isy

import (
	"github.com/cseelye/simpleisy/command"
	"github.com/cseelye/simpleisy/entity"
)

// Device is a handle for a controllable node (device or group) exposing
// verb-named operations. Obtain one from Controller.GetDevice.
//
// The wrapped entity is a snapshot from discovery time; commands do not
// refresh it. Re-run ListAllNodes and fetch a new handle for fresh state.
type Device struct {
	entity entity.Entity
	ctrl   *Controller
}

// Entity returns a copy of the underlying entity record.
func (d *Device) Entity() entity.Entity {
	return *d.entity.DeepCopy()
}

// Address returns the hub address of the node.
func (d *Device) Address() string {
	return d.entity.Address
}

// Name returns the node's human-readable name.
func (d *Device) Name() string {
	return d.entity.Name
}

// State returns the last-known status value from discovery. May be stale.
func (d *Device) State() string {
	return d.entity.State
}

// TurnOn switches the node fully on (DON).
func (d *Device) TurnOn() error {
	cmd, err := command.Map(command.TurnOn, d.entity)
	if err != nil {
		return err
	}
	return d.ctrl.NodeCommand(cmd.Target, cmd.Wire())
}

// TurnOnLevel switches the node on at a brightness percentage (0-100),
// sent to the hub as DON with the scaled 0-255 on-level.
func (d *Device) TurnOnLevel(percent int) error {
	cmd, err := command.Map(command.TurnOn, d.entity)
	if err != nil {
		return err
	}
	if cmd.Parameter, err = command.OnLevel(percent); err != nil {
		return err
	}
	return d.ctrl.NodeCommand(cmd.Target, cmd.Wire())
}

// TurnOff switches the node off (DOF).
func (d *Device) TurnOff() error {
	cmd, err := command.Map(command.TurnOff, d.entity)
	if err != nil {
		return err
	}
	return d.ctrl.NodeCommand(cmd.Target, cmd.Wire())
}
