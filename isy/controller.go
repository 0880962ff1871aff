package isy

import (
	"fmt"
	"net/url"
	"time"

	"github.com/cseelye/simpleisy/entity"
	"github.com/cseelye/simpleisy/isyxml"
)

// Logger defines the logging interface used by the Controller.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// settings collects construction options before the Controller is built.
type settings struct {
	https       bool
	insecureTLS bool
	timeout     time.Duration
	transport   Transport
	logger      Logger
}

// Option customises Controller construction.
type Option func(*settings)

// WithHTTPS switches the default transport to HTTPS.
func WithHTTPS() Option {
	return func(s *settings) { s.https = true }
}

// WithInsecureTLS disables certificate verification on the default HTTPS
// transport, for hubs with self-signed certificates.
func WithInsecureTLS() Option {
	return func(s *settings) { s.insecureTLS = true }
}

// WithTimeout sets the per-round-trip timeout on the default transport.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithTransport substitutes the transport collaborator entirely. Host and
// credential arguments to New are ignored when this option is used.
func WithTransport(t Transport) Option {
	return func(s *settings) { s.transport = t }
}

// WithLogger sets the logger for the Controller and its registries.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.logger = l }
}

// Controller is the entry point for talking to a hub. It composes the XML
// parser, the entity registries, and the command mapper over a Transport.
//
// Construction stores connection parameters only; no network I/O happens
// until the first discovery or command call. Nodes and programs are held in
// separate registries so that refreshing one set never destroys the other.
//
// Thread Safety:
//   - The Controller is NOT safe for concurrent use. Calls are synchronous
//     and blocking, one round trip at a time.
type Controller struct {
	transport Transport
	nodes     *entity.Registry
	programs  *entity.Registry
	logger    Logger
}

// New creates a Controller for the hub at host ("192.168.1.10" or
// "hub.example.com:8443"). Credentials are handed to the transport for
// basic auth and never inspected here.
func New(host, username, password string, opts ...Option) *Controller {
	s := settings{
		timeout: defaultTimeout,
		logger:  noopLogger{},
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.transport == nil {
		s.transport = newHTTPTransport(host, username, password, s)
	}

	c := &Controller{
		transport: s.transport,
		nodes:     entity.NewRegistry(),
		programs:  entity.NewRegistry(),
		logger:    s.logger,
	}
	c.nodes.SetLogger(s.logger)
	c.programs.SetLogger(s.logger)
	return c
}

// ListAllNodes fetches the hub's node list, replaces the node registry with
// the parsed set, and returns it in hub-reported order. On a transport or
// parse failure the registry keeps its previous content.
func (c *Controller) ListAllNodes() ([]entity.Entity, error) {
	raw, err := c.transport.Get("nodes")
	if err != nil {
		return nil, err
	}

	entities, err := isyxml.ParseNodes(raw)
	if err != nil {
		return nil, err
	}

	c.nodes.Upsert(entities)
	c.logger.Debug("node discovery complete", "count", len(entities))
	return entities, nil
}

// ListAllPrograms fetches the hub's program list (including subfolders),
// replaces the program registry with the parsed set, and returns it in
// hub-reported order. Same failure contract as ListAllNodes.
func (c *Controller) ListAllPrograms() ([]entity.Entity, error) {
	raw, err := c.transport.Get("programs?subfolders=true")
	if err != nil {
		return nil, err
	}

	entities, err := isyxml.ParsePrograms(raw)
	if err != nil {
		return nil, err
	}

	c.programs.Upsert(entities)
	c.logger.Debug("program discovery complete", "count", len(entities))
	return entities, nil
}

// GetDevice resolves a controllable node (device or group) by address
// first, then by name, and wraps it in a Device handle. A discovery round
// trip runs lazily if no node discovery has happened yet.
//
// Name resolution returns the first match in hub-reported order; the hub
// does not enforce unique names.
func (c *Controller) GetDevice(nameOrAddress string) (*Device, error) {
	if c.nodes.Count() == 0 {
		if _, err := c.ListAllNodes(); err != nil {
			return nil, err
		}
	}

	e, err := c.resolveNode(nameOrAddress)
	if err != nil {
		return nil, err
	}
	return &Device{entity: *e, ctrl: c}, nil
}

// GetProgram resolves a program by ID first, then by name, and wraps it in
// a Program handle. Folder entries are skipped during name resolution. A
// discovery round trip runs lazily if no program discovery has happened yet.
func (c *Controller) GetProgram(nameOrID string) (*Program, error) {
	if c.programs.Count() == 0 {
		if _, err := c.ListAllPrograms(); err != nil {
			return nil, err
		}
	}

	if e, err := c.programs.GetByAddress(nameOrID); err == nil {
		if e.Kind != entity.KindProgram {
			return nil, fmt.Errorf("%w: %q is a %s, not a program", entity.ErrNotFound, nameOrID, e.Kind)
		}
		return &Program{entity: *e, ctrl: c}, nil
	}

	for _, e := range c.programs.ListByKind(entity.KindProgram) {
		if e.Name == nameOrID {
			return &Program{entity: e, ctrl: c}, nil
		}
	}
	return nil, fmt.Errorf("%w: program %q", entity.ErrNotFound, nameOrID)
}

// NodeCommand sends a raw command code to a node address, bypassing the
// command mapper's verb/kind validation. It exists for protocol codes the
// verb table does not cover ("BMAN", "FDUP", "DON/128", ...).
func (c *Controller) NodeCommand(address, code string) error {
	return c.send("nodes/" + url.PathEscape(address) + "/cmd/" + code)
}

// ProgramCommand sends a raw command code to a program ID, bypassing the
// command mapper's verb/kind validation.
func (c *Controller) ProgramCommand(id, code string) error {
	return c.send("programs/" + url.PathEscape(id) + "/" + code)
}

// resolveNode finds a controllable node by address, then name. Folders and
// anything else that cannot take node commands resolve to ErrNotFound.
func (c *Controller) resolveNode(nameOrAddress string) (*entity.Entity, error) {
	if e, err := c.nodes.GetByAddress(nameOrAddress); err == nil {
		if controllable(e.Kind) {
			return e, nil
		}
		return nil, fmt.Errorf("%w: %q is a %s, not a controllable node", entity.ErrNotFound, nameOrAddress, e.Kind)
	}

	for _, e := range c.nodes.List() {
		if e.Name == nameOrAddress && controllable(e.Kind) {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: node %q", entity.ErrNotFound, nameOrAddress)
}

func controllable(kind entity.Kind) bool {
	return kind == entity.KindDevice || kind == entity.KindGroup
}

// send issues one command round trip and checks the hub's acknowledgement.
// No local state is updated on success; entity state only refreshes on the
// next discovery call.
func (c *Controller) send(path string) error {
	body, err := c.transport.SendCommand(path)
	if err != nil {
		return err
	}

	resp, err := isyxml.ParseResponse(body)
	if err != nil {
		return err
	}
	if !resp.Succeeded {
		return fmt.Errorf("%w: %s (status %d)", ErrCommandFailed, path, resp.Status)
	}

	c.logger.Debug("command acknowledged", "path", path)
	return nil
}
