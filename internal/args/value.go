// Package args implements the command-line argument engine for practicestuff.
// It supports short (-x) and long (--long-name) options, flags and valued
// options (values in a separate token for short options, after '=' for long
// options), validation against option definitions, typed retrieval of parsed
// values by option id, default values, and options that stop parsing
// (--help, --version).
//
// It does not support commands or subcommands (resolved by the caller before
// parsing) or short option concatenation (-x -y -z => -xyz).
package args

import (
	"fmt"
	"strconv"
)

// ValueType identifies the variant held by a Value.
type ValueType int

// Value variants. The set is closed: every parsed result and every declared
// default is one of these.
const (
	TypeBool ValueType = iota
	TypeInt
	TypeUint
	TypeStr
)

// Value is a tagged union used both for declared defaults and parsed results.
// Values are comparable; equality is structural.
type Value struct {
	typ ValueType

	boolVal bool
	intVal  int32
	uintVal uint32
	strVal  string
}

// BoolValue returns a Value holding a bool.
func BoolValue(v bool) Value {
	return Value{typ: TypeBool, boolVal: v}
}

// IntValue returns a Value holding a signed 32-bit integer.
func IntValue(v int32) Value {
	return Value{typ: TypeInt, intVal: v}
}

// UintValue returns a Value holding an unsigned 32-bit integer.
func UintValue(v uint32) Value {
	return Value{typ: TypeUint, uintVal: v}
}

// StrValue returns a Value holding a string.
func StrValue(v string) Value {
	return Value{typ: TypeStr, strVal: v}
}

// Type returns the variant of the value.
func (v Value) Type() ValueType {
	return v.typ
}

// String renders the payload, regardless of variant. Used when option
// defaults are interpolated into help text.
func (v Value) String() string {
	switch v.typ {
	case TypeBool:
		return strconv.FormatBool(v.boolVal)
	case TypeInt:
		return strconv.FormatInt(int64(v.intVal), 10)
	case TypeUint:
		return strconv.FormatUint(uint64(v.uintVal), 10)
	case TypeStr:
		return v.strVal
	}
	panic(fmt.Sprintf("unknown value type: %d", v.typ))
}
