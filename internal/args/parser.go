package args

import (
	"slices"
	"strconv"
	"strings"
)

// ParsedArg is the result of matching one token (or one token plus its value
// token) against a definition.
type ParsedArg struct {
	ID    string
	Value Value
}

// Parse validates a raw argument vector against the given definitions in a
// single left-to-right pass and returns the parsed values in first-occurrence
// order. The first failure aborts the whole parse; no partial results are
// returned.
//
// A repeated option is accepted silently when it coerces to the same value
// and rejected as conflicting otherwise. An option defined with StopParsing
// terminates the pass as soon as it is matched; remaining tokens are
// discarded without being examined, so --help and --version short-circuit an
// otherwise malformed command line.
func Parse(tokens []string, definitions []Definition) ([]ParsedArg, error) {
	var parsed []ParsedArg
	for i := 0; i < len(tokens); {
		arg, consumed, stop, err := parseSingle(tokens[i:], definitions)
		if err != nil {
			return nil, err
		}

		if existing := findParsed(arg.ID, parsed); existing != nil {
			if existing.Value != arg.Value {
				return nil, newParseError(ErrConflictingArguments,
					"conflicting arguments for duplicated option: '%s'", tokens[i])
			}
		} else {
			parsed = append(parsed, arg)
		}

		if stop {
			break
		}
		i += consumed
	}
	return parsed, nil
}

// parseSingle consumes one option from the front of tokens, together with the
// following token when a short-form valued option takes its value from it.
func parseSingle(tokens []string, definitions []Definition) (ParsedArg, int, bool, error) {
	if len(tokens) == 0 {
		panic("token list length should be validated before calling this function")
	}
	token := tokens[0]
	consumed := 1

	isLongName, name, value, hasValue, err := decompose(token)
	if err != nil {
		return ParsedArg{}, 0, false, err
	}
	definition, err := matchDefinition(token, name, isLongName, definitions)
	if err != nil {
		return ParsedArg{}, 0, false, err
	}

	if definition.Kind() != KindFlag {
		// A long option supplies its value only inline after '='; a short
		// option takes the next token.
		if (isLongName && !hasValue) || (!isLongName && len(tokens) < 2) {
			return ParsedArg{}, 0, false, newParseError(ErrMissingArgument,
				"option '%s' requires an argument", token)
		}
		if !isLongName {
			value = tokens[1]
			hasValue = true
			consumed++
		}
	}

	coerced, err := coerce(token, value, hasValue, definition)
	if err != nil {
		return ParsedArg{}, 0, false, err
	}
	return ParsedArg{ID: definition.ID(), Value: coerced}, consumed, definition.StopParsing(), nil
}

// decompose splits a raw token into long/short form, option name and inline
// value. It validates structure only; the name is matched against definitions
// separately.
func decompose(token string) (isLongName bool, name, value string, hasValue bool, err error) {
	eqIndex := strings.IndexByte(token, '=')
	isLongName = strings.HasPrefix(token, "--")

	// Short form must be exactly "-x": two bytes, leading hyphen, no '='.
	if !isLongName && (eqIndex >= 0 || !strings.HasPrefix(token, "-") || len(token) != 2) {
		return false, "", "", false, newParseError(ErrInvalidOption, "invalid option: '%s'", token)
	}

	startIndex := 1
	if isLongName {
		startIndex = 2
	}

	if eqIndex >= 0 {
		if eqIndex+1 == len(token) {
			return false, "", "", false, newParseError(ErrMissingArgument,
				"option '%s' requires an argument", token)
		}
		return isLongName, token[startIndex:eqIndex], token[eqIndex+1:], true, nil
	}
	return isLongName, token[startIndex:], "", false, nil
}

// coerce validates the raw value (or its absence) against the definition and
// produces the typed result.
func coerce(token, value string, hasValue bool, definition *Definition) (Value, error) {
	switch definition.Kind() {
	case KindFlag:
		if hasValue {
			return Value{}, newParseError(ErrUnexpectedArgument,
				"option '%s' doesn't allow an argument", token)
		}
		return BoolValue(true), nil
	case KindInt:
		if !hasValue {
			return Value{}, newParseError(ErrMissingArgument,
				"option '%s' requires an argument", token)
		}
		parsed, err := parseInt32(value)
		if err != nil {
			return Value{}, err
		}
		return IntValue(parsed), nil
	case KindUint:
		if !hasValue {
			return Value{}, newParseError(ErrMissingArgument,
				"option '%s' requires an argument", token)
		}
		parsed, err := parseUint32(value)
		if err != nil {
			return Value{}, err
		}
		return UintValue(parsed), nil
	case KindOneOf:
		if !hasValue {
			return Value{}, newParseError(ErrMissingArgument,
				"option '%s' requires an argument", token)
		}
		if !slices.Contains(definition.OneOf(), value) {
			return Value{}, newParseError(ErrInvalidArgumentValue,
				"invalid option argument: '%s'. Valid arguments are: %s",
				value, strings.Join(definition.OneOf(), ", "))
		}
		return StrValue(value), nil
	}
	panic("unknown option kind")
}

func parseInt32(value string) (int32, error) {
	number, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, newParseError(ErrInvalidArgumentValue, "invalid option argument: '%s'", value)
	}
	return int32(number), nil
}

func parseUint32(value string) (uint32, error) {
	number, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, newParseError(ErrInvalidArgumentValue, "invalid option argument: '%s'", value)
	}
	return uint32(number), nil
}

func findParsed(id string, parsed []ParsedArg) *ParsedArg {
	for i := range parsed {
		if parsed[i].ID == id {
			return &parsed[i]
		}
	}
	return nil
}
