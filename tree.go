// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cast"
)

// treeDescriptionLimit keeps description leaves to a single readable line.
const treeDescriptionLimit = 80

// rootKeys are shown in the header already and skipped at the top level of
// the tree.
var rootKeys = []string{"title", "description", "$schema"}

// keywordRank orders well-known schema keywords ahead of everything else so
// the tree reads the same way schemas are usually written.
var keywordRank = map[string]int{
	"type":        0,
	"description": 1,
	"default":     2,
	"enum":        3,
	"required":    4,
	"properties":  5,
	"items":       6,
	"$defs":       7,
}

// Tree renders the document as a tree, one node per key, recursing through
// nested "properties" and array "items" without a depth limit.
//
// JSON cannot express reference cycles within a single document, so the walk
// always terminates.
func (r *Renderer) Tree(d *Document) string {
	title := d.Title()
	if title == "" {
		title = d.Name()
	}

	root := tree.Root(sectionStyle.Render(title))

	switch val := d.Root().(type) {
	case map[string]any, map[any]any:
		obj, _ := nodeObject(val)
		addObject(root, obj, true)
	case []any:
		addList(root, val)
	default:
		root.Child(typeStyle.Render(cast.ToString(val)))
	}

	return root.Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(faintStyle).
		String()
}

func addObject(parent *tree.Tree, obj map[string]any, atRoot bool) {
	for _, key := range orderedKeys(obj) {
		if atRoot && slices.Contains(rootKeys, key) {
			continue
		}
		addValue(parent, key, obj[key])
	}
}

func addValue(parent *tree.Tree, key string, v any) {
	// required and enum read better folded onto one line than as branches
	switch key {
	case "required":
		if names, ok := v.([]any); ok {
			parent.Child(fmt.Sprintf("%s: %s", labelStyle.Render(key), joinScalars(names)))
			return
		}
	case "enum":
		if values, ok := v.([]any); ok {
			parent.Child(fmt.Sprintf("%s: %s", noteStyle.Render(key), joinScalars(values)))
			return
		}
	}

	switch val := v.(type) {
	case map[string]any, map[any]any:
		obj, _ := nodeObject(val)
		branch := tree.Root(branchLabel(key))
		addObject(branch, obj, false)
		parent.Child(branch)
	case []any:
		branch := tree.Root(branchLabel(key))
		addList(branch, val)
		parent.Child(branch)
	default:
		parent.Child(leafLabel(key, v))
	}
}

func addList(parent *tree.Tree, values []any) {
	for i, item := range values {
		switch it := item.(type) {
		case map[string]any, map[any]any:
			obj, _ := nodeObject(it)
			sub := tree.Root(faintStyle.Render(fmt.Sprintf("[%d]", i)))
			addObject(sub, obj, false)
			parent.Child(sub)
		case []any:
			sub := tree.Root(faintStyle.Render(fmt.Sprintf("[%d]", i)))
			addList(sub, it)
			parent.Child(sub)
		default:
			parent.Child(typeStyle.Render(cast.ToString(item)))
		}
	}
}

// branchLabel styles a branch node, giving the structural keywords their own
// looks.
func branchLabel(key string) string {
	switch key {
	case "properties":
		return fmt.Sprintf("%s %s", propertyStyle.Render(key), faintStyle.Render("(fields)"))
	case "items":
		return fmt.Sprintf("%s %s", propertyStyle.Render(key), faintStyle.Render("(array items)"))
	case "$defs", "definitions":
		return fmt.Sprintf("%s %s", propertyStyle.Render(key), faintStyle.Render("(definitions)"))
	default:
		return propertyStyle.Render(key)
	}
}

func leafLabel(key string, v any) string {
	value := cast.ToString(v)
	if v == nil {
		value = "null"
	}

	switch key {
	case "type":
		return fmt.Sprintf("%s: %s", labelStyle.Render(key), typeStyle.Render(typeString(v)))
	case "description":
		return fmt.Sprintf("%s: %s", faintStyle.Render(key), faintStyle.Render(clip(value, treeDescriptionLimit)))
	default:
		return fmt.Sprintf("%s: %s", propertyStyle.Render(key), noteStyle.Render(value))
	}
}

func joinScalars(values []any) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, cast.ToString(v))
	}
	return strings.Join(parts, ", ")
}

// orderedKeys returns object keys with well-known schema keywords first and
// the rest lexicographic, map iteration alone is not deterministic.
func orderedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iKnown := keywordRank[keys[i]]
		rj, jKnown := keywordRank[keys[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown:
			return true
		case jKnown:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
