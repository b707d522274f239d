package manifest

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"variant-from-generator/internal/diagnostic"
	"variant-from-generator/internal/match"
)

const filePerm = 0o644

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Manifest. Unknown keys are rejected with a
// suggestion for the closest known key.
func Parse(data []byte) (*Manifest, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	var mf Manifest

	if len(root.Content) > 0 {
		var diags diagnostic.Diagnostics

		checkKeys(root.Content[0], &diags)

		if err := diags.Error(); err != nil {
			return nil, fmt.Errorf("invalid manifest: %w", err)
		}

		if err := root.Content[0].Decode(&mf); err != nil {
			return nil, fmt.Errorf("failed to decode manifest: %w", err)
		}
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *Manifest) {
	if mf.Version == "" {
		mf.Version = "1"
	}

	if mf.Bindings == "" {
		mf.Bindings = "std"
	}
}

// checkKeys reports mapping keys that are not part of the schema.
func checkKeys(doc *yaml.Node, diags *diagnostic.Diagnostics) {
	if doc.Kind != yaml.MappingNode {
		diags.AddError("invalid_document", fmt.Sprintf("line %d: manifest must be a mapping", doc.Line), "", "")
		return
	}

	checkMappingKeys(doc, manifestKeys, "", "", diags)

	enums := mappingValue(doc, "enums")
	if enums == nil || enums.Kind != yaml.SequenceNode {
		return
	}

	for _, en := range enums.Content {
		if en.Kind != yaml.MappingNode {
			continue
		}

		enumName := scalarValue(en, "name")
		checkMappingKeys(en, enumKeys, enumName, "", diags)

		variants := mappingValue(en, "variants")
		if variants == nil || variants.Kind != yaml.SequenceNode {
			continue
		}

		for _, v := range variants.Content {
			if v.Kind == yaml.MappingNode {
				checkMappingKeys(v, variantKeys, enumName, scalarValue(v, "name"), diags)
			}
		}
	}
}

func checkMappingKeys(node *yaml.Node, known []string, enum, variant string, diags *diagnostic.Diagnostics) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if slices.Contains(known, key.Value) {
			continue
		}

		diags.AddError("unknown_key",
			fmt.Sprintf("line %d: unknown key %q", key.Line, key.Value),
			enum, variant, match.Suggest(key.Value, known)...)
	}
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

func scalarValue(node *yaml.Node, key string) string {
	if v := mappingValue(node, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}

	return ""
}

// Marshal serializes a Manifest to YAML.
func Marshal(mf *Manifest) ([]byte, error) {
	return yaml.Marshal(mf)
}

// WriteFile writes a Manifest to the given path.
func WriteFile(mf *Manifest, path string) error {
	data, err := Marshal(mf)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}

	return nil
}
