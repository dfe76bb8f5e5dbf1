// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cast"
)

// descriptionLimit caps how much of a property description makes it into the
// table before being cut with an ellipsis.
const descriptionLimit = 3000

// PropertiesTable renders one row per key under "properties": name, declared
// type, required flag, and description.
//
// Membership in the "required" list drives the flag, an absent list means
// nothing is required. Missing keys render as empty cells. A document without
// a properties object renders a short note instead.
func (r *Renderer) PropertiesTable(d *Document) string {
	props := d.Properties()
	if len(props) == 0 {
		return noteStyle.Render("No properties defined")
	}

	required := d.Required()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Width(r.width).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return sectionStyle.Padding(0, 1)
			case col == 0:
				return propertyStyle.Padding(0, 1)
			case col == 1:
				return typeStyle.Padding(0, 1)
			case col == 2:
				return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		}).
		Headers("Property", "Type", "Required", "Description")

	for _, name := range propertyNames(props) {
		prop, _ := nodeObject(props[name])

		t.Row(name, propertyType(prop), requiredCell(name, required), description(prop, descriptionLimit))
	}

	return t.String()
}

// propertyType renders the type cell, folding enum values in underneath the
// declared type.
func propertyType(prop map[string]any) string {
	typ := typeString(prop["type"])
	if typ == "" {
		typ = "any"
	}

	if enum, ok := prop["enum"].([]any); ok && len(enum) > 0 {
		values := make([]string, 0, len(enum))
		for _, v := range enum {
			values = append(values, cast.ToString(v))
		}
		typ = fmt.Sprintf("%s\nenum: %s", typ, strings.Join(values, ", "))
	}

	return typ
}

func requiredCell(name string, required []string) string {
	if isRequired(name, required) {
		return checkMark.String()
	}
	return crossMark.String()
}

func description(prop map[string]any, limit int) string {
	return clip(stringKey(prop, "description"), limit)
}

// clip cuts s with an ellipsis once it exceeds limit display cells, the
// ellipsis counts against the limit.
func clip(s string, limit int) string {
	return ansi.Truncate(s, limit, "...")
}
