package argparse

import (
	"strconv"

	"github.com/dzonerzy/go-argparse/internal/arena"
	argio "github.com/dzonerzy/go-argparse/io"
)

// paramDef is one registered parameter. All strings live in the parser's arena.
type paramDef struct {
	bind  binding
	def   Value
	short arena.Ref
	long  arena.Ref
	name  arena.Ref
	desc  arena.Ref
}

func (pd *paramDef) varType() VarType { return pd.bind.varType() }

func (p *Parser) AddInt(dest *int, def int, short, long, name, desc string) error {
	return p.register(signedBinding[int]{dst: dest, typ: VarInt, bits: strconv.IntSize}, IntValue(def), short, long, name, desc)
}

func (p *Parser) AddUint(dest *uint, def uint, short, long, name, desc string) error {
	return p.register(unsignedBinding[uint]{dst: dest, typ: VarUint, bits: strconv.IntSize}, UintValue(def), short, long, name, desc)
}

func (p *Parser) AddInt32(dest *int32, def int32, short, long, name, desc string) error {
	return p.register(signedBinding[int32]{dst: dest, typ: VarInt32, bits: 32}, Int32Value(def), short, long, name, desc)
}

func (p *Parser) AddUint32(dest *uint32, def uint32, short, long, name, desc string) error {
	return p.register(unsignedBinding[uint32]{dst: dest, typ: VarUint32, bits: 32}, Uint32Value(def), short, long, name, desc)
}

func (p *Parser) AddInt64(dest *int64, def int64, short, long, name, desc string) error {
	return p.register(signedBinding[int64]{dst: dest, typ: VarInt64, bits: 64}, Int64Value(def), short, long, name, desc)
}

func (p *Parser) AddUint64(dest *uint64, def uint64, short, long, name, desc string) error {
	return p.register(unsignedBinding[uint64]{dst: dest, typ: VarUint64, bits: 64}, Uint64Value(def), short, long, name, desc)
}

// AddFloat registers a float32 parameter.
func (p *Parser) AddFloat(dest *float32, def float32, short, long, name, desc string) error {
	return p.register(floatBinding[float32]{dst: dest, typ: VarFloat, bits: 32}, FloatValue(def), short, long, name, desc)
}

// AddDouble registers a float64 parameter.
func (p *Parser) AddDouble(dest *float64, def float64, short, long, name, desc string) error {
	return p.register(floatBinding[float64]{dst: dest, typ: VarDouble, bits: 64}, DoubleValue(def), short, long, name, desc)
}

// AddBool registers a parameter that takes a value: an integer (non-zero is
// true) or true/false.
func (p *Parser) AddBool(dest *bool, def bool, short, long, name, desc string) error {
	return p.register(boolBinding{dst: dest}, BoolValue(def), short, long, name, desc)
}

// AddString registers a string parameter. The destination keeps at most
// maxLen-1 bytes of any value written to it.
func (p *Parser) AddString(dest *string, def string, maxLen int, short, long, name, desc string) error {
	return p.register(stringBinding{dst: dest, maxLen: maxLen}, StringValue(def, maxLen), short, long, name, desc)
}

// AddFlag registers a switch. It defaults to false and becomes true when its
// token appears; it never consumes a value.
func (p *Parser) AddFlag(dest *bool, short, long, name, desc string) error {
	return p.register(flagBinding{dst: dest}, FlagValue(false), short, long, name, desc)
}

// register appends a definition to the optional registry when short or long is
// set, to the positional registry otherwise. On failure nothing is kept.
func (p *Parser) register(b binding, def Value, short, long, name, desc string) error {
	optional := short != "" || long != ""

	list, limit, kind := &p.positional, p.cfg.MaxPositionalParams, "positional"
	if optional {
		list, limit, kind = &p.optional, p.cfg.MaxOptionalParams, "optional"
	}
	if len(*list) >= limit {
		return p.fail(ErrorTypeCapacityExceeded, "", name, "Maximum number of %s parameters reached.", kind)
	}
	if b.isNil() {
		return p.fail(ErrorTypeInvalidDefinition, "", name, "Destination of the parameter '%s' is nil.", name)
	}
	if def.typ == VarString && def.maxLen < 1 {
		return p.fail(ErrorTypeInvalidDefinition, "", name,
			"Invalid string length %d for the parameter '%s'.", def.maxLen, name)
	}

	mark := p.arena.Mark()
	pd := paramDef{bind: b, def: def}

	var err error
	if def.typ == VarString {
		var ref arena.Ref
		if ref, err = p.intern(def.s); err != nil {
			p.arena.Rollback(mark)
			return err
		}
		pd.def.s = p.arena.String(ref)
	}
	for _, f := range []struct {
		dst *arena.Ref
		s   string
	}{
		{&pd.short, short},
		{&pd.long, long},
		{&pd.name, name},
		{&pd.desc, desc},
	} {
		if *f.dst, err = p.intern(f.s); err != nil {
			p.arena.Rollback(mark)
			return err
		}
	}

	*list = append(*list, pd)
	if optional {
		p.warnShadowed(len(p.optional) - 1)
	}
	p.log.Debug("registered %s parameter '%s' (%s)", kind, name, b.varType())
	return nil
}

// findOptional returns the index of the first optional definition whose short
// or long token equals tok, or -1.
func (p *Parser) findOptional(tok string) int {
	for i := range p.optional {
		pd := &p.optional[i]
		if p.str(pd.short) == tok || p.str(pd.long) == tok {
			return i
		}
	}
	return -1
}

// ShadowedTokens returns, in registration order, option tokens that can never
// be matched because an earlier registration already claims them. Duplicates
// are accepted at registration and resolved first-match-wins.
func (p *Parser) ShadowedTokens() []string {
	var out []string
	seen := make(map[string]bool)
	reported := make(map[string]bool)
	for i := range p.optional {
		pd := &p.optional[i]
		toks := [2]string{p.str(pd.short), p.str(pd.long)}
		for _, tok := range toks {
			if tok != "" && seen[tok] && !reported[tok] {
				out = append(out, tok)
				reported[tok] = true
			}
		}
		for _, tok := range toks {
			if tok != "" {
				seen[tok] = true
			}
		}
	}
	return out
}

func (p *Parser) warnShadowed(idx int) {
	if !p.log.Enabled(argio.LevelWarning) {
		return
	}
	pd := &p.optional[idx]
	for _, tok := range [2]string{p.str(pd.short), p.str(pd.long)} {
		if tok == "" {
			continue
		}
		if owner := p.findOptional(tok); owner >= 0 && owner < idx {
			p.log.Warning("Option '%s' of '%s' is shadowed by '%s'.",
				tok, p.str(pd.name), p.str(p.optional[owner].name))
		}
	}
}

// NumOptional returns the number of optional parameters, help and version included.
func (p *Parser) NumOptional() int { return len(p.optional) }

// NumPositional returns the number of positional parameters.
func (p *Parser) NumPositional() int { return len(p.positional) }
