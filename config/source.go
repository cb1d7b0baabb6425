package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PropertySource is a flat string-keyed configuration lookup.
type PropertySource interface {
	Property(key string) (string, bool)
}

// Enumerable is implemented by sources that can list their keys. complete
// reports whether keys covers every key the source can answer for.
type Enumerable interface {
	Keys() (keys []string, complete bool)
}

// Properties is a PropertySource backed by a map
type Properties map[string]string

// Keys implements Enumerable
func (p Properties) Keys() ([]string, bool) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	return keys, true
}

// Property implements PropertySource
func (p Properties) Property(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Env looks properties up in the process environment. The key
// "slf4j.showHeader" is read from SLF4J_SHOWHEADER.
type Env struct {
	// Prefix is prepended to every variable name, e.g. "MYPLUGIN_"
	Prefix string
}

// Property implements PropertySource
func (e Env) Property(key string) (string, bool) {
	return os.LookupEnv(e.Prefix + EnvName(key))
}

// EnvName converts a property key to its environment variable name.
func EnvName(key string) string {
	return strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Chain consults each source in order and returns the first hit.
type Chain []PropertySource

// Property implements PropertySource
func (c Chain) Property(key string) (string, bool) {
	for _, src := range c {
		if src == nil {
			continue
		}
		if v, ok := src.Property(key); ok {
			return v, true
		}
	}
	return "", false
}

// Keys implements Enumerable. The result is incomplete when any member
// cannot enumerate its keys.
func (c Chain) Keys() ([]string, bool) {
	var keys []string
	complete := true
	for _, src := range c {
		if src == nil {
			continue
		}
		e, ok := src.(Enumerable)
		if !ok {
			complete = false
			continue
		}
		k, all := e.Keys()
		keys = append(keys, k...)
		complete = complete && all
	}
	return keys, complete
}

// LoadYAML reads a YAML document and flattens it into Properties.
// Nested mappings are joined with dots; scalar values keep their text.
func LoadYAML(r io.Reader) (Properties, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return Properties{}, nil
		}
		return nil, fmt.Errorf("decode properties: %w", err)
	}

	props := Properties{}
	if len(doc.Content) == 0 {
		return props, nil
	}
	if err := flatten(props, "", doc.Content[0]); err != nil {
		return nil, err
	}
	return props, nil
}

// LoadFile reads properties from a YAML file.
func LoadFile(path string) (Properties, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	props, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return props, nil
}

func flatten(props Properties, prefix string, n *yaml.Node) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := flatten(props, key, n.Content[i+1]); err != nil {
				return err
			}
		}
	case yaml.ScalarNode:
		if prefix == "" {
			return fmt.Errorf("line %d: scalar without a key", n.Line)
		}
		props[prefix] = n.Value
	case yaml.AliasNode:
		return flatten(props, prefix, n.Alias)
	default:
		return fmt.Errorf("line %d: unsupported value for %q", n.Line, prefix)
	}
	return nil
}
