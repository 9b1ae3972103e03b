package args

import "fmt"

// The Must accessors return the parsed value for an option id, falling back
// to the declared default when the option did not appear on the command line.
// Asking for the wrong type, or for an id with no definition, is a
// programming error in the caller, never a consequence of user input, so the
// accessors panic instead of returning an error.

// MustBool returns the bool value for id from parsed results or defaults.
func MustBool(id string, parsed []ParsedArg, definitions []Definition) bool {
	value := lookup(id, parsed, definitions)
	if value.Type() != TypeBool {
		panicTypeMismatch(id, parsed)
	}
	return value.boolVal
}

// MustInt returns the int32 value for id from parsed results or defaults.
func MustInt(id string, parsed []ParsedArg, definitions []Definition) int32 {
	value := lookup(id, parsed, definitions)
	if value.Type() != TypeInt {
		panicTypeMismatch(id, parsed)
	}
	return value.intVal
}

// MustUint returns the uint32 value for id from parsed results or defaults.
func MustUint(id string, parsed []ParsedArg, definitions []Definition) uint32 {
	value := lookup(id, parsed, definitions)
	if value.Type() != TypeUint {
		panicTypeMismatch(id, parsed)
	}
	return value.uintVal
}

// MustStr returns the string value for id from parsed results or defaults.
func MustStr(id string, parsed []ParsedArg, definitions []Definition) string {
	value := lookup(id, parsed, definitions)
	if value.Type() != TypeStr {
		panicTypeMismatch(id, parsed)
	}
	return value.strVal
}

func lookup(id string, parsed []ParsedArg, definitions []Definition) Value {
	if arg := findParsed(id, parsed); arg != nil {
		return arg.Value
	}
	for i := range definitions {
		if definitions[i].ID() == id {
			return definitions[i].DefaultValue()
		}
	}
	panic(fmt.Sprintf("missing argument definition for option: '%s'", id))
}

func panicTypeMismatch(id string, parsed []ParsedArg) {
	if findParsed(id, parsed) != nil {
		panic(fmt.Sprintf("invalid type for option: '%s'", id))
	}
	panic(fmt.Sprintf("invalid type for default value of option: '%s'", id))
}
