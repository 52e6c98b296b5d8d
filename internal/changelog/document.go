package changelog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the persisted store shape:
//
//	projects:
//	  <name>:
//	    versions:
//	      <version>: {status, highlights?, finalizedAt?, changes: [...]}
//
// Projects and versions are YAML mappings, but their order is significant
// (search and list iterate in insertion order), so both levels marshal
// through yaml.Node instead of Go maps, which would lose ordering.
type document struct {
	Projects projectMap `yaml:"projects"`
}

// projectMap is an insertion-ordered name → project mapping.
type projectMap []*Project

// projectDoc is the on-disk value under a project key.
type projectDoc struct {
	Versions versionMap `yaml:"versions"`
}

// versionMap is an insertion-ordered version string → version mapping.
type versionMap []*Version

func (m projectMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m {
		key := &yaml.Node{Kind: yaml.ScalarNode, Value: p.Name}
		val := &yaml.Node{}
		if err := val.Encode(projectDoc{Versions: p.Versions}); err != nil {
			return nil, fmt.Errorf("encoding project %q: %w", p.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func (m *projectMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("projects: expected mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var pd projectDoc
		if err := valNode.Decode(&pd); err != nil {
			return fmt.Errorf("decoding project %q: %w", keyNode.Value, err)
		}
		*m = append(*m, &Project{Name: keyNode.Value, Versions: pd.Versions})
	}
	return nil
}

func (m versionMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, v := range m {
		// Version strings are always quoted so "1.2" stays a string.
		key := &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: v.Name}
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("encoding version %q: %w", v.Name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

func (m *versionMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("versions: expected mapping, got %s", nodeKind(node))
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		v := &Version{}
		if err := valNode.Decode(v); err != nil {
			return fmt.Errorf("decoding version %q: %w", keyNode.Value, err)
		}
		v.Name = keyNode.Value
		*m = append(*m, v)
	}
	return nil
}

func nodeKind(n *yaml.Node) string {
	switch n.Kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
