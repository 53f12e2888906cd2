// Package argparse is a declarative command-line parser. Callers register
// typed optional and positional parameters bound to their own variables, then
// parse the argument vector once; defaults, conversion, arity and help/version
// text are handled by the parser.
package argparse

import (
	"fmt"
	"io"

	"github.com/dzonerzy/go-argparse/internal/arena"
	"github.com/dzonerzy/go-argparse/internal/fuzzy"
	"github.com/dzonerzy/go-argparse/internal/pool"
	argio "github.com/dzonerzy/go-argparse/io"
)

const okMessage = "OK."

// Indexes of the implicit options, registered first by New.
const (
	helpIndex    = 0
	versionIndex = 1
)

// Config bounds the resources a Parser may use. Non-positive fields take the
// DefaultConfig value.
type Config struct {
	ArenaSize           int // bytes for every string the parser keeps
	MaxOptionalParams   int // including -h/--help and -v/--version
	MaxPositionalParams int
	MaxErrorMessage     int // error slot size; messages keep MaxErrorMessage-1 bytes
}

// DefaultConfig returns the standard limits.
func DefaultConfig() Config {
	return Config{
		ArenaSize:           arena.DefaultSize,
		MaxOptionalParams:   32,
		MaxPositionalParams: 32,
		MaxErrorMessage:     256,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ArenaSize <= 0 {
		c.ArenaSize = d.ArenaSize
	}
	if c.MaxOptionalParams <= 0 {
		c.MaxOptionalParams = d.MaxOptionalParams
	}
	if c.MaxPositionalParams <= 0 {
		c.MaxPositionalParams = d.MaxPositionalParams
	}
	if c.MaxErrorMessage <= 0 {
		c.MaxErrorMessage = d.MaxErrorMessage
	}
	return c
}

type parseState int

const (
	stateIdle parseState = iota
	stateWritingDefaults
	stateScanning
	stateDone
	stateFailed
)

func (s parseState) String() string {
	switch s {
	case stateWritingDefaults:
		return "writing-defaults"
	case stateScanning:
		return "scanning"
	case stateDone:
		return "done"
	case stateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Parser holds the registered parameters and the strings they reference.
// A Parser is meant for one goroutine.
type Parser struct {
	cfg   Config
	arena *arena.Arena

	name    arena.Ref
	desc    arena.Ref
	version arena.Ref
	author  arena.Ref
	date    arena.Ref

	optional   []paramDef
	positional []paramDef
	strict     bool

	errMsg   string
	hasError bool
	state    parseState

	helpRequested    bool
	versionRequested bool

	io        *argio.IOManager
	log       *argio.Logger
	exitCodes *ExitCodeManager
}

// New creates a parser with DefaultConfig.
func New(name, description string) (*Parser, error) {
	return NewWithConfig(name, description, DefaultConfig())
}

// NewWithConfig creates a parser and registers -h/--help and -v/--version.
// It fails with ErrAllocation when the limits cannot hold even that much.
func NewWithConfig(name, description string, cfg Config) (*Parser, error) {
	cfg = cfg.withDefaults()
	p := &Parser{
		cfg:        cfg,
		arena:      arena.New(cfg.ArenaSize),
		optional:   make([]paramDef, 0, cfg.MaxOptionalParams),
		positional: make([]paramDef, 0, cfg.MaxPositionalParams),
		errMsg:     truncate(okMessage, cfg.MaxErrorMessage-1),
		io:         argio.New(),
		exitCodes:  newExitCodeManager(),
	}

	var err error
	for _, f := range []struct {
		dst *arena.Ref
		s   string
	}{
		{&p.name, name},
		{&p.desc, description},
		{&p.version, ""},
		{&p.author, ""},
		{&p.date, ""},
	} {
		if *f.dst, err = p.intern(f.s); err != nil {
			return nil, p.fail(ErrorTypeAllocation, "", "", "Cannot store the program information.")
		}
	}

	if err := p.AddFlag(&p.helpRequested, "-h", "--help", "help", "Show help message."); err != nil {
		return nil, p.fail(ErrorTypeAllocation, "", "help", "Cannot set help option.")
	}
	if err := p.AddFlag(&p.versionRequested, "-v", "--version", "version", "Show version string."); err != nil {
		return nil, p.fail(ErrorTypeAllocation, "", "version", "Cannot set version option.")
	}
	return p, nil
}

// SetVersion sets the version shown by -v/--version. On failure the previous
// value is kept.
func (p *Parser) SetVersion(v string) error {
	return p.setInfo(&p.version, v, "Cannot add version string.")
}

// SetAuthor sets the author line of the version text.
func (p *Parser) SetAuthor(a string) error {
	return p.setInfo(&p.author, a, "Cannot add author name.")
}

// SetDate sets the release date line of the version text.
func (p *Parser) SetDate(d string) error {
	return p.setInfo(&p.date, d, "Cannot add release date.")
}

func (p *Parser) setInfo(dst *arena.Ref, s, msg string) error {
	ref, err := p.intern(s)
	if err != nil {
		return p.fail(ErrorTypeCapacityExceeded, "", "", "%s", msg)
	}
	*dst = ref
	return nil
}

// RequireFullPositionalParams makes Parse fail when fewer positional tokens
// than registered positional parameters are supplied.
func (p *Parser) RequireFullPositionalParams() *Parser {
	p.strict = true
	return p
}

// WithIO replaces the IO manager used for help, version and ParseOrExit output.
func (p *Parser) WithIO(m *argio.IOManager) *Parser {
	if m != nil {
		p.io = m
	}
	return p
}

// WithLogger attaches a logger for registration warnings and parse traces.
func (p *Parser) WithLogger(l *argio.Logger) *Parser {
	p.log = l
	return p
}

func (p *Parser) IO() *argio.IOManager        { return p.io }
func (p *Parser) ExitCodes() *ExitCodeManager { return p.exitCodes }
func (p *Parser) ExitCode(err error) int      { return p.exitCodes.Resolve(err) }
func (p *Parser) ErrorMessage() string        { return p.errMsg }
func (p *Parser) Name() string                { return p.str(p.name) }
func (p *Parser) Description() string         { return p.str(p.desc) }

func (p *Parser) str(ref arena.Ref) string { return p.arena.String(ref) }

// intern stores s in the arena, recording a failure in the error slot.
func (p *Parser) intern(s string) (arena.Ref, error) {
	ref, err := p.arena.Intern(s)
	if err != nil {
		return arena.Ref{}, p.fail(ErrorTypeCapacityExceeded, "", "", "Cannot store the string '%s'.", s)
	}
	return ref, nil
}

// fail formats a message into the error slot and returns it as an *Error.
func (p *Parser) fail(typ ErrorType, tok, param, format string, args ...any) *Error {
	buf := pool.GetBuffer()
	fmt.Fprintf(buf, format, args...)
	p.errMsg = truncate(buf.String(), p.cfg.MaxErrorMessage-1)
	pool.PutBuffer(buf)

	p.hasError = true
	return &Error{Type: typ, Message: p.errMsg, Token: tok, Param: param}
}

// Parse writes every default, then consumes args[1:] (args[0] is the program
// name). Help and version print their text to the IO manager's stdout and
// return an *ExitRequest. A failed parse may leave destinations partially set.
func (p *Parser) Parse(args []string) error {
	p.state = stateWritingDefaults
	p.writeDefaults()

	p.state = stateScanning
	filled := 0
	for i := 1; i < len(args); {
		tok := args[i]

		kind := Classify(tok)
		if kind == TokenMalformed {
			return p.failParse(p.fail(ErrorTypeMalformedToken, tok, "",
				"Illegal argument type: near the arg '%s'.", tok))
		}

		if kind == TokenPositional {
			if filled == len(p.positional) {
				return p.failParse(p.fail(ErrorTypeTooManyPositional, tok, "",
					"Too many positional arguments: near the arg '%s'. Needs %d positional args, but has more args.",
					tok, len(p.positional)))
			}
			pd := &p.positional[filled]
			if err := pd.bind.convert(tok); err != nil {
				return p.failParse(p.invalidValue(tok, pd))
			}
			p.log.Debug("positional '%s' <- %q", p.str(pd.name), tok)
			filled++
			i++
			continue
		}

		idx := p.findOptional(tok)
		if idx < 0 {
			perr := p.fail(ErrorTypeUnknownOption, tok, "", "Unknown option: near the arg '%s'.", tok)
			perr.Suggestion = fuzzy.SuggestOption(tok, p.optionTokens())
			return p.failParse(perr)
		}
		switch idx {
		case helpIndex:
			return p.exit(ExitHelp, p.PrintHelp)
		case versionIndex:
			return p.exit(ExitVersion, p.PrintVersion)
		}

		pd := &p.optional[idx]
		if pd.varType() == VarFlag {
			_ = pd.bind.convert(tok)
			p.log.Debug("flag '%s' set by %s", p.str(pd.name), tok)
			i++
			continue
		}
		if i+1 >= len(args) {
			return p.failParse(p.fail(ErrorTypeMissingValue, tok, p.str(pd.name),
				"Lack of the last argument: near the arg '%s'.", tok))
		}
		val := args[i+1]
		if err := pd.bind.convert(val); err != nil {
			return p.failParse(p.invalidValue(val, pd))
		}
		p.log.Debug("option '%s' <- %q", p.str(pd.name), val)
		i += 2
	}

	if p.strict && filled < len(p.positional) {
		return p.failParse(p.fail(ErrorTypeTooFewPositional, "", "",
			"Too few positional arguments: needs %d args, but has only %d args.", len(p.positional), filled))
	}
	p.state = stateDone
	return nil
}

func (p *Parser) writeDefaults() {
	for i := range p.optional {
		p.optional[i].bind.assign(p.optional[i].def)
	}
	for i := range p.positional {
		p.positional[i].bind.assign(p.positional[i].def)
	}
}

func (p *Parser) invalidValue(tok string, pd *paramDef) *Error {
	name := p.str(pd.name)
	return p.fail(ErrorTypeInvalidValue, tok, name, "Invalid value: arg '%s', %s", tok, name)
}

func (p *Parser) failParse(err *Error) error {
	p.state = stateFailed
	return err
}

func (p *Parser) exit(reason ExitReason, render func(w io.Writer) error) error {
	p.state = stateDone
	if err := render(p.io.Out()); err != nil {
		return err
	}
	return &ExitRequest{Code: p.exitCodes.Defaults().Success, Reason: reason}
}

func (p *Parser) optionTokens() []string {
	toks := make([]string, 0, 2*len(p.optional))
	for i := range p.optional {
		toks = append(toks, p.str(p.optional[i].short), p.str(p.optional[i].long))
	}
	return toks
}
