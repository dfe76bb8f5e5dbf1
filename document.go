// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package jsv discovers JSON Schema files and renders them as styled terminal output.
package jsv

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
)

// DefaultDir is the conventional subdirectory searched for schema files
// when no directory is configured.
const DefaultDir = "schemas"

// DefaultExtensions returns the file extensions discovered as schema files
// when none are configured.
func DefaultExtensions() []string {
	return []string{".json"}
}

// Document is a single parsed schema file.
//
// The underlying value is never mutated after loading, every view is a
// read-only projection of it. Schema documents are display data, they are
// never validated against the JSON Schema specification.
type Document struct {
	// Path is the location the document was loaded from
	Path string

	root any
}

// LoadDocument reads and parses a schema file.
//
// Files ending in .yaml or .yml are parsed as YAML, everything else as JSON.
// Both parse into the same generic value tree.
func LoadDocument(fsys afero.Fs, path string) (*Document, error) {
	fi, err := fsys.Stat(path)
	if err != nil {
		return nil, err
	}

	if fi.IsDir() {
		return nil, fmt.Errorf("read %s: is a directory", path)
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	var root any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	return &Document{Path: path, root: root}, nil
}

// Root returns the parsed value tree.
func (d *Document) Root() any {
	return d.root
}

// Name returns the base name of the file the document was loaded from.
func (d *Document) Name() string {
	return filepath.Base(d.Path)
}

// Title returns the top-level "title", or "" when absent.
func (d *Document) Title() string {
	return stringKey(d.root, "title")
}

// Description returns the top-level "description", or "" when absent.
func (d *Document) Description() string {
	return stringKey(d.root, "description")
}

// SchemaURI returns the "$schema" dialect URI, or "" when absent.
func (d *Document) SchemaURI() string {
	return stringKey(d.root, "$schema")
}

// Type returns the declared top-level "type", or "" when absent.
func (d *Document) Type() string {
	obj, ok := nodeObject(d.root)
	if !ok {
		return ""
	}
	return typeString(obj["type"])
}

// Properties returns the top-level "properties" object, or nil when it is
// absent or not an object.
func (d *Document) Properties() map[string]any {
	obj, ok := nodeObject(d.root)
	if !ok {
		return nil
	}
	return nodeProperties(obj)
}

// Required returns the top-level "required" list, or nil when absent.
func (d *Document) Required() []string {
	obj, ok := nodeObject(d.root)
	if !ok {
		return nil
	}
	return nodeRequired(obj)
}

// Examples returns the top-level "examples" list, or nil when it is absent or
// not a list.
func (d *Document) Examples() []any {
	obj, ok := nodeObject(d.root)
	if !ok {
		return nil
	}
	examples, ok := obj["examples"].([]any)
	if !ok {
		return nil
	}
	return examples
}

// nodeObject reports v as a string-keyed object.
//
// YAML unmarshals interior maps with any keys, so coerce through cast instead
// of a bare type assertion.
func nodeObject(v any) (map[string]any, bool) {
	switch v.(type) {
	case map[string]any, map[any]any:
		return cast.ToStringMap(v), true
	default:
		return nil, false
	}
}

// nodeProperties returns the "properties" object of a schema node, or nil.
func nodeProperties(node map[string]any) map[string]any {
	props, ok := nodeObject(node["properties"])
	if !ok {
		return nil
	}
	return props
}

// nodeRequired returns the "required" list of a schema node.
//
// Entries that are not strings are dropped rather than erroring, the document
// is display data and may be arbitrarily misshapen.
func nodeRequired(node map[string]any) []string {
	raw, ok := node["required"].([]any)
	if !ok {
		return nil
	}
	required := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			required = append(required, s)
		}
	}
	return required
}

// isRequired reports whether name appears in the required list.
func isRequired(name string, required []string) bool {
	return slices.Contains(required, name)
}

// propertyNames returns the keys of a properties object in lexicographic
// order, the map itself has no stable iteration order.
func propertyNames(props map[string]any) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// typeString renders a "type" value, which per JSON Schema may be a single
// string or a list of strings.
func typeString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, cast.ToString(e))
		}
		return strings.Join(parts, " | ")
	default:
		return cast.ToString(v)
	}
}

// stringKey returns the named top-level key as a string, or "" when the root
// is not an object or the key is absent or not scalar.
func stringKey(root any, key string) string {
	obj, ok := nodeObject(root)
	if !ok {
		return ""
	}
	v, ok := obj[key]
	if !ok {
		return ""
	}
	if _, isContainer := v.(map[string]any); isContainer {
		return ""
	}
	if _, isContainer := v.([]any); isContainer {
		return ""
	}
	return cast.ToString(v)
}
