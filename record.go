package roster

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

type valueKind uint8

const (
	kindTyped valueKind = iota + 1
	kindText
	kindInvalid
)

// RawAge is the age field of an unvalidated record. It is one of three
// cases: an already typed integer, an explicitly invalid value carrying the
// text that failed upstream typing, or raw text that still has to be parsed.
// The zero RawAge is none of them and is rejected as invalid.
type RawAge struct {
	text  string
	value int
	kind  valueKind
}

// TypedAge returns a pre-typed age.
func TypedAge(n int) RawAge {
	return RawAge{kind: kindTyped, value: n}
}

// InvalidAge returns an age that was already rejected upstream. Validation
// fails on it with text as the offending value.
func InvalidAge(text string) RawAge {
	return RawAge{kind: kindInvalid, text: text}
}

// TextAge returns an age that arrives as text and is parsed on validation.
func TextAge(text string) RawAge {
	return RawAge{kind: kindText, text: text}
}

// Int returns the age as an integer. The boolean is false for an invalid
// age and for text that is not a base-10 integer.
func (a RawAge) Int() (int, bool) {
	switch a.kind {
	case kindTyped:
		return a.value, true
	case kindText:
		n, err := strconv.Atoi(a.text)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String returns the age as it was received.
func (a RawAge) String() string {
	if a.kind == kindTyped {
		return strconv.Itoa(a.value)
	}
	return a.text
}

// UnmarshalYAML decodes integer scalars as typed ages and every other
// scalar as text.
func (a *RawAge) UnmarshalYAML(node *yaml.Node) error {
	kind, n, text, err := decodeYAMLScalar(node)
	if err != nil {
		return fmt.Errorf("age: %w", err)
	}
	*a = RawAge{kind: kind, value: n, text: text}
	return nil
}

// UnmarshalTOML decodes TOML integers as typed ages and strings as text.
func (a *RawAge) UnmarshalTOML(data any) error {
	kind, n, text, err := decodeTOMLValue(data)
	if err != nil {
		return fmt.Errorf("age: %w", err)
	}
	*a = RawAge{kind: kind, value: n, text: text}
	return nil
}

// RawID is the identifier of an unvalidated record: either a typed integer
// or text that is parsed on validation.
type RawID struct {
	text  string
	value int
	kind  valueKind
}

// TypedID returns a pre-typed identifier.
func TypedID(n int) RawID {
	return RawID{kind: kindTyped, value: n}
}

// TextID returns an identifier that arrives as text.
func TextID(text string) RawID {
	return RawID{kind: kindText, text: text}
}

// Int returns the identifier as an integer. The boolean is false for text
// that is not a base-10 integer and for the zero RawID.
func (id RawID) Int() (int, bool) {
	switch id.kind {
	case kindTyped:
		return id.value, true
	case kindText:
		n, err := strconv.Atoi(id.text)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// String returns the identifier as it was received.
func (id RawID) String() string {
	if id.kind == kindTyped {
		return strconv.Itoa(id.value)
	}
	return id.text
}

// UnmarshalYAML decodes integer scalars as typed identifiers and every
// other scalar as text.
func (id *RawID) UnmarshalYAML(node *yaml.Node) error {
	kind, n, text, err := decodeYAMLScalar(node)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = RawID{kind: kind, value: n, text: text}
	return nil
}

// UnmarshalTOML decodes TOML integers as typed identifiers and strings as
// text.
func (id *RawID) UnmarshalTOML(data any) error {
	kind, n, text, err := decodeTOMLValue(data)
	if err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = RawID{kind: kind, value: n, text: text}
	return nil
}

func decodeYAMLScalar(node *yaml.Node) (valueKind, int, string, error) {
	if node.Kind != yaml.ScalarNode {
		return 0, 0, "", fmt.Errorf("expected a scalar at line %d", node.Line)
	}
	if node.ShortTag() == "!!int" {
		var n int
		if err := node.Decode(&n); err == nil {
			return kindTyped, n, "", nil
		}
	}
	return kindText, 0, node.Value, nil
}

func decodeTOMLValue(data any) (valueKind, int, string, error) {
	switch v := data.(type) {
	case int64:
		if int64(int(v)) != v {
			return kindText, 0, strconv.FormatInt(v, 10), nil
		}
		return kindTyped, int(v), "", nil
	case string:
		return kindText, 0, v, nil
	default:
		return 0, 0, "", fmt.Errorf("unsupported value %v (%T)", data, data)
	}
}

// RawRecord is an unvalidated (identifier, name, age) triple.
type RawRecord struct {
	ID   RawID  `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
	Age  RawAge `yaml:"age" toml:"age"`
}

// Raw builds a RawRecord from already typed values.
func Raw(id int, name string, age int) RawRecord {
	return RawRecord{ID: TypedID(id), Name: name, Age: TypedAge(age)}
}
