// Package isy is the entry point for controlling an ISY home-automation
// hub over its XML REST protocol.
//
// The Controller composes three pieces: the isyxml parser that normalizes
// hub payloads, the entity registries that index discovered nodes and
// programs, and the command mapper that translates verbs into protocol
// codes. Network round trips go through the Transport collaborator, which
// owns authentication and timeouts.
//
// # Usage
//
//	ctrl := isy.New("192.168.1.10", "admin", "secret")
//
//	nodes, err := ctrl.ListAllNodes()
//	if err != nil {
//	    return err
//	}
//
//	lamp, err := ctrl.GetDevice("Living room lights")
//	if err != nil {
//	    return err
//	}
//	if err := lamp.TurnOn(); err != nil {
//	    return err
//	}
//
//	prog, err := ctrl.GetProgram("Night mode")
//	if err != nil {
//	    return err
//	}
//	if err := prog.RunThen(); err != nil {
//	    return err
//	}
//
// For protocol codes the verb table does not cover, NodeCommand and
// ProgramCommand send raw codes without validation:
//
//	ctrl.NodeCommand("1A 2B 3C", "DON/128")
//
// # Error handling
//
// Every failure surfaces synchronously to the caller as one of the
// sentinel kinds: isy.ErrTransport, isy.ErrCommandFailed, isyxml.ErrParse,
// entity.ErrNotFound, command.ErrInvalidCommand. Nothing is retried or
// swallowed internally; retry policy belongs to the caller.
//
// # Concurrency
//
// The call model is single-threaded, synchronous, and blocking. A
// Controller must not be used from multiple goroutines without external
// synchronisation.
package isy
