package hint

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/amp-labs/strict-hint/errors"
)

// Parse reads a textual spec, resolving names through reg:
//
//	int                    Primitive
//	(int, string)          Union
//	[int]                  ListOf
//	dict[string, [int]]    Generic (the name must resolve to a Generic)
//	*time.Time             pointer to a registered Primitive
//
// An empty (or all-blank) text parses to None. A nil reg means the default
// registry.
func Parse(reg *Registry, text string) (Spec, error) {
	if reg == nil {
		reg = DefaultRegistry()
	}

	if strings.TrimSpace(text) == "" {
		return None, nil
	}

	p := &parser{reg: reg, text: text}

	spec, err := p.parseSpec()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.pos != len(p.text) {
		return nil, p.errorf("unexpected %q", p.text[p.pos:])
	}

	return spec, nil
}

// ParseDefault parses text against the default registry.
func ParseDefault(text string) (Spec, error) {
	return Parse(defaultRegistry, text)
}

// MustParse is Parse that panics on error. Intended for package-level specs.
func MustParse(reg *Registry, text string) Spec { //nolint:ireturn
	spec, err := Parse(reg, text)
	if err != nil {
		panic(err)
	}

	return spec
}

type parser struct {
	reg  *Registry
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %q at offset %d: %s",
		errors.ErrInvalidSpec, p.text, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) skipSpace() {
	for p.pos < len(p.text) && strings.ContainsRune(" \t\r\n", rune(p.text[p.pos])) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()

	if p.pos >= len(p.text) {
		return 0
	}

	return p.text[p.pos]
}

func (p *parser) expect(ch byte) error {
	if p.peek() != ch {
		return p.errorf("expected %q", ch)
	}

	p.pos++

	return nil
}

func (p *parser) parseSpec() (Spec, error) { //nolint:ireturn
	switch p.peek() {
	case '(':
		p.pos++

		members, err := p.parseList(')')
		if err != nil {
			return nil, err
		}

		return OneOf(members...), nil
	case '[':
		p.pos++

		elem, err := p.parseSpec()
		if err != nil {
			return nil, err
		}

		if err := p.expect(']'); err != nil {
			return nil, err
		}

		return SliceOf(elem), nil
	case '*':
		p.pos++

		return p.parsePointer()
	default:
		return p.parseNamed()
	}
}

// parseList reads comma-separated specs up to and including the closing byte.
func (p *parser) parseList(closing byte) ([]Spec, error) {
	var specs []Spec

	for {
		spec, err := p.parseSpec()
		if err != nil {
			return nil, err
		}

		specs = append(specs, spec)

		switch p.peek() {
		case ',':
			p.pos++
		case closing:
			p.pos++

			return specs, nil
		default:
			return nil, p.errorf("expected ',' or %q", closing)
		}
	}
}

func (p *parser) parsePointer() (Spec, error) { //nolint:ireturn
	start := p.pos

	spec, err := p.parseSpec()
	if err != nil {
		return nil, err
	}

	prim, ok := spec.(Primitive)
	if !ok || prim.Type == nil {
		p.pos = start

		return nil, p.errorf("pointer to non-primitive %s", display(spec))
	}

	return Of(reflect.PointerTo(prim.Type)), nil
}

func (p *parser) parseNamed() (Spec, error) { //nolint:ireturn
	p.skipSpace()

	start := p.pos
	for p.pos < len(p.text) && isNameRune(rune(p.text[p.pos])) {
		p.pos++
	}

	name := p.text[start:p.pos]
	if name == "" {
		return nil, p.errorf("expected a type name")
	}

	spec, ok := p.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownType, name)
	}

	// Only generics take brackets directly after the name.
	if p.pos >= len(p.text) || p.text[p.pos] != '[' {
		return spec, nil
	}

	generic, ok := spec.(Generic)
	if !ok {
		return nil, p.errorf("%q is not generic", name)
	}

	p.pos++

	args, err := p.parseList(']')
	if err != nil {
		return nil, err
	}

	return generic.With(args...), nil
}
