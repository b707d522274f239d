package manifest

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringOrArray is a string slice that can be unmarshaled from either a
// single string or an array of strings, so "fields: u8" and
// "fields: [u8, u8]" are both accepted.
type StringOrArray []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string
		if err := node.Decode(&str); err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array of strings", node.Line)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// variantFields mirrors Variant without its unmarshaler.
type variantFields Variant

// UnmarshalYAML accepts a full mapping or a bare name for unit variants.
func (v *Variant) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var name string
		if err := node.Decode(&name); err != nil {
			return err
		}

		*v = Variant{Name: name}

		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected variant name or mapping", node.Line)
	}

	var f variantFields
	if err := node.Decode(&f); err != nil {
		return err
	}

	*v = Variant(f)

	return nil
}

// MarshalYAML writes unit variants without options as a bare name.
func (v Variant) MarshalYAML() (any, error) {
	if v.IsUnit() && v.Into == nil && !v.Skip {
		return v.Name, nil
	}

	return variantFields(v), nil
}
