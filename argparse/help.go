package argparse

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/pool"
)

const descIndent = "    |    "

// PrintHelp writes the usage line followed by one block per optional and
// positional parameter, in registration order.
func (p *Parser) PrintHelp(w io.Writer) error {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.WriteString("\n")
	fmt.Fprintf(buf, "Usage   : %s [-h/--help] [-v/--version] (optional_parameters ...) ", p.str(p.name))
	for i := range p.positional {
		fmt.Fprintf(buf, "[%s] ", p.str(p.positional[i].name))
	}
	buf.WriteString("\n\n")

	p.writeSection(buf, "Optional", p.optional)
	p.writeSection(buf, "Positional", p.positional)

	_, err := w.Write(buf.Bytes())
	return err
}

func (p *Parser) writeSection(buf *bytes.Buffer, title string, defs []paramDef) {
	if len(defs) == 0 {
		return
	}
	plural := "s"
	if len(defs) == 1 {
		plural = ""
	}
	fmt.Fprintf(buf, "%s Parameter%s:\n\n", title, plural)
	for i := range defs {
		p.writeParam(buf, &defs[i])
	}
}

// writeParam renders one entry, e.g.
//
//	    -i [int] / --intparam [int] : int_param
//	    | description:
//	    |    text
func (p *Parser) writeParam(buf *bytes.Buffer, pd *paramDef) {
	short, long := p.str(pd.short), p.str(pd.long)
	tag := pd.varType().tag()

	writeToken := func(tok string) {
		buf.WriteString(tok)
		buf.WriteByte(' ')
		if tag != "" {
			buf.WriteString(tag)
			buf.WriteByte(' ')
		}
	}

	buf.WriteString("    ")
	if short != "" {
		writeToken(short)
	}
	if short != "" && long != "" {
		buf.WriteString("/ ")
	}
	if long != "" {
		writeToken(long)
	}
	if short == "" && long == "" {
		buf.WriteString(tag)
		buf.WriteByte(' ')
	}
	fmt.Fprintf(buf, ": %s\n", p.str(pd.name))

	buf.WriteString("    | description:\n")
	buf.WriteString(descIndent)
	buf.WriteString(strings.ReplaceAll(p.str(pd.desc), "\n", "\n"+descIndent))
	buf.WriteString("\n\n")
}

// PrintVersion writes the program name and version, author and release date.
func (p *Parser) PrintVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s %s\nwritten by %s\nreleased on %s\n\n",
		p.str(p.name), p.str(p.version), p.str(p.author), p.str(p.date))
	return err
}

// Dump writes the parser's internal state for debugging.
func (p *Parser) Dump(w io.Writer) error {
	hasError := 0
	if p.hasError {
		hasError = 1
	}

	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	buf.WriteString("*** ArgParser ***\n")
	fmt.Fprintf(buf, "progName = '%s' \n", p.str(p.name))
	fmt.Fprintf(buf, "progDesc = '%s' \n", p.str(p.desc))
	fmt.Fprintf(buf, "hasError = '%d' \n", hasError)
	fmt.Fprintf(buf, "errorMsg = '%s' \n", p.errMsg)
	fmt.Fprintf(buf, "state    = '%s' \n", p.state)
	fmt.Fprintf(buf, "optional = '%d/%d' \n", len(p.optional), p.cfg.MaxOptionalParams)
	fmt.Fprintf(buf, "position = '%d/%d' \n", len(p.positional), p.cfg.MaxPositionalParams)
	fmt.Fprintf(buf, "arena    = '%d/%d' \n", p.arena.Len(), p.arena.Cap())
	if p.strict {
		buf.WriteString("strict   = '1' \n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}
