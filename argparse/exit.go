package argparse

import (
	"errors"
	"os"

	argio "github.com/dzonerzy/go-argparse/io"
)

// ExitReason tells why Parse asked the caller to terminate.
type ExitReason string

const (
	ExitHelp    ExitReason = "help"
	ExitVersion ExitReason = "version"
)

var (
	ErrHelpShown    = errors.New("help shown")
	ErrVersionShown = errors.New("version shown")
)

// ExitRequest is returned by Parse after help or version text was written.
// The caller should stop and exit with Code; Parse itself never exits.
type ExitRequest struct {
	Code   int
	Reason ExitReason
}

func (e *ExitRequest) Error() string {
	return "exit requested: " + string(e.Reason)
}

// Is matches ErrHelpShown and ErrVersionShown by reason.
func (e *ExitRequest) Is(target error) bool {
	switch target {
	case ErrHelpShown:
		return e.Reason == ExitHelp
	case ErrVersionShown:
		return e.Reason == ExitVersion
	}
	return false
}

// ExitCodeDefaults holds common default codes.
type ExitCodeDefaults struct {
	Success       int // default: 0
	GeneralError  int // default: 1
	MisusageError int // default: 2
}

func defaultExitDefaults() ExitCodeDefaults {
	return ExitCodeDefaults{Success: 0, GeneralError: 1, MisusageError: 2}
}

// ExitCodeManager maps parser errors to process exit codes.
type ExitCodeManager struct {
	codesByType map[ErrorType]int
	defaults    ExitCodeDefaults
}

func newExitCodeManager() *ExitCodeManager {
	m := &ExitCodeManager{
		codesByType: make(map[ErrorType]int),
		defaults:    defaultExitDefaults(),
	}
	// Bad command lines are misusage; registration failures stay general.
	for _, typ := range []ErrorType{
		ErrorTypeMalformedToken,
		ErrorTypeUnknownOption,
		ErrorTypeTooManyPositional,
		ErrorTypeTooFewPositional,
		ErrorTypeMissingValue,
		ErrorTypeInvalidValue,
	} {
		m.codesByType[typ] = m.defaults.MisusageError
	}
	return m
}

// Define overrides the exit code used for a specific error category.
func (e *ExitCodeManager) Define(typ ErrorType, code int) *ExitCodeManager {
	e.codesByType[typ] = code
	return e
}

// Default replaces the manager's default codes. Categories already mapped keep
// their codes.
func (e *ExitCodeManager) Default(d ExitCodeDefaults) *ExitCodeManager { e.defaults = d; return e }

// Defaults returns the current default codes.
func (e *ExitCodeManager) Defaults() ExitCodeDefaults { return e.defaults }

// Resolve converts an error to an exit code.
// Precedence:
//  1. ExitRequest (requested code)
//  2. Error category mapping (Define)
//  3. Default codes
func (e *ExitCodeManager) Resolve(err error) int {
	if err == nil {
		return e.defaults.Success
	}

	var req *ExitRequest
	if errors.As(err, &req) {
		return req.Code
	}

	var perr *Error
	if errors.As(err, &perr) {
		if code, ok := e.codesByType[perr.Type]; ok {
			return code
		}
	}
	return e.defaults.GeneralError
}

var exitFn = os.Exit

// ParseOrExit parses args and terminates the process when parsing does not
// complete: with code 0 after help or version, or with the mapped exit code
// after a failure, whose message is logged to stderr first.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	if err == nil {
		return
	}

	var req *ExitRequest
	if !errors.As(err, &req) {
		log := p.log
		if log == nil {
			log = argio.NewLogger(p.io)
		}
		log.Error("%s", p.ErrorMessage())

		var perr *Error
		if errors.As(err, &perr) && perr.Suggestion != "" {
			log.Error("Did you mean '%s'?", perr.Suggestion)
		}
	}
	exitFn(p.ExitCode(err))
}
