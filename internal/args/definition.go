package args

import "fmt"

// Kind identifies what an option expects on the command line.
type Kind int

const (
	// KindFlag is a boolean option; its presence sets it to true and it
	// never takes a value.
	KindFlag Kind = iota
	// KindInt is a valued option holding a signed 32-bit integer.
	KindInt
	// KindUint is a valued option holding an unsigned 32-bit integer.
	KindUint
	// KindOneOf is a valued option restricted to a fixed set of strings.
	KindOneOf
)

// Definition describes one recognized command-line option. Definitions are
// immutable once built; construct them with NewDefinition.
type Definition struct {
	id           string
	shortName    rune
	longName     string
	description  []string
	kind         Kind
	oneOf        []string
	stopParsing  bool
	defaultValue Value
}

// ID returns the option's stable lookup key. It is never shown to users.
func (d *Definition) ID() string {
	return d.id
}

// ShortName returns the single-character name, or 0 if the option has none.
func (d *Definition) ShortName() rune {
	return d.shortName
}

// LongName returns the long name, or "" if the option has none.
func (d *Definition) LongName() string {
	return d.longName
}

// Description returns the help text lines. The first line is rendered inline;
// the rest are indented below it.
func (d *Definition) Description() []string {
	return d.description
}

// Kind returns what the option expects on the command line.
func (d *Definition) Kind() Kind {
	return d.kind
}

// OneOf returns the allowed strings for a KindOneOf option.
func (d *Definition) OneOf() []string {
	return d.oneOf
}

// StopParsing reports whether matching this option terminates the parse,
// discarding all remaining tokens.
func (d *Definition) StopParsing() bool {
	return d.stopParsing
}

// DefaultValue returns the value used when the option is absent.
func (d *Definition) DefaultValue() Value {
	return d.defaultValue
}

// DefinitionBuilder assembles a Definition. All invariant checks happen in
// Build, so a half-configured builder can never leak an invalid Definition.
type DefinitionBuilder struct {
	def        Definition
	hasKind    bool
	hasDefault bool
}

// NewDefinition starts building an option definition with the given id.
func NewDefinition(id string) *DefinitionBuilder {
	return &DefinitionBuilder{def: Definition{id: id}}
}

// ShortName sets the single-character option name (the x in -x).
func (b *DefinitionBuilder) ShortName(name rune) *DefinitionBuilder {
	b.def.shortName = name
	return b
}

// LongName sets the long option name (the long-name in --long-name).
func (b *DefinitionBuilder) LongName(name string) *DefinitionBuilder {
	b.def.longName = name
	return b
}

// Description sets the help text lines.
func (b *DefinitionBuilder) Description(lines ...string) *DefinitionBuilder {
	b.def.description = lines
	return b
}

// Flag declares the option as a boolean flag.
func (b *DefinitionBuilder) Flag() *DefinitionBuilder {
	b.def.kind = KindFlag
	b.hasKind = true
	return b
}

// Int declares the option as taking a signed 32-bit integer value.
func (b *DefinitionBuilder) Int() *DefinitionBuilder {
	b.def.kind = KindInt
	b.hasKind = true
	return b
}

// Uint declares the option as taking an unsigned 32-bit integer value.
func (b *DefinitionBuilder) Uint() *DefinitionBuilder {
	b.def.kind = KindUint
	b.hasKind = true
	return b
}

// OneOf declares the option as taking one of the given strings. Matching is
// exact and case-sensitive.
func (b *DefinitionBuilder) OneOf(values ...string) *DefinitionBuilder {
	b.def.kind = KindOneOf
	b.def.oneOf = values
	b.hasKind = true
	return b
}

// StopParsing makes the option terminate the parse once matched.
func (b *DefinitionBuilder) StopParsing() *DefinitionBuilder {
	b.def.stopParsing = true
	return b
}

// Default sets the value used when the option is absent. Its variant must
// match the declared kind.
func (b *DefinitionBuilder) Default(v Value) *DefinitionBuilder {
	b.def.defaultValue = v
	b.hasDefault = true
	return b
}

// Build validates the builder and returns the immutable Definition. A
// violated invariant is a bug in the calling code, not user input, so Build
// panics instead of returning an error.
func (b *DefinitionBuilder) Build() Definition {
	if b.def.id == "" {
		panic("id is required")
	}
	if b.def.shortName == 0 && b.def.longName == "" {
		panic("either short or long name is required")
	}
	if !b.hasKind {
		panic("kind is required")
	}
	if !b.hasDefault {
		panic("default value is required")
	}
	b.validateDefault()
	return b.def
}

func (b *DefinitionBuilder) validateDefault() {
	switch b.def.kind {
	case KindFlag:
		if b.def.defaultValue.Type() != TypeBool {
			panic("default value must be of type bool")
		}
	case KindInt:
		if b.def.defaultValue.Type() != TypeInt {
			panic("default value must be of type int32")
		}
	case KindUint:
		if b.def.defaultValue.Type() != TypeUint {
			panic("default value must be of type uint32")
		}
	case KindOneOf:
		if b.def.defaultValue.Type() != TypeStr {
			panic("default value must be of type string")
		}
	default:
		panic(fmt.Sprintf("unknown option kind: %d", b.def.kind))
	}
}

// matchDefinition finds the definition for a decomposed option name. Long
// names match exactly; short names match on the single character.
func matchDefinition(token, name string, isLongName bool, definitions []Definition) (*Definition, error) {
	for i := range definitions {
		def := &definitions[i]
		if isLongName {
			if def.longName != "" && def.longName == name {
				return def, nil
			}
		} else {
			if def.shortName != 0 && def.shortName == []rune(name)[0] {
				return def, nil
			}
		}
	}
	return nil, newParseError(ErrUnrecognisedOption, "unrecognised option: '%s'", token)
}
