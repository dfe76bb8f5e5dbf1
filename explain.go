// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
)

// Explain returns a markdown digest of the document, rendered for the
// terminal unless plain output is in effect.
//
// Rendering failures fall back to the raw markdown, a digest beats an error.
func (r *Renderer) Explain(ctx context.Context, d *Document) (string, error) {
	md := explainMarkdown(d)

	if r.plain {
		return md, nil
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(r.width),
	)
	if err != nil {
		log.FromContext(ctx).Debugf("failed to build markdown renderer: %v", err)
		return md, nil
	}

	out, err := tr.Render(md)
	if err != nil {
		log.FromContext(ctx).Debugf("failed to render markdown: %v", err)
		return md, nil
	}

	return out, nil
}

func explainMarkdown(d *Document) string {
	var sb strings.Builder

	title := d.Title()
	if title == "" {
		title = d.Name()
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	if desc := d.Description(); desc != "" {
		fmt.Fprintf(&sb, "%s\n\n", desc)
	}

	fmt.Fprintf(&sb, "Loaded from `%s`", d.Path)
	if uri := d.SchemaURI(); uri != "" {
		fmt.Fprintf(&sb, ", dialect `%s`", uri)
	}
	sb.WriteString(".\n")

	props := d.Properties()
	if len(props) == 0 {
		sb.WriteString("\nNo properties defined.\n")
	} else {
		required := d.Required()

		sb.WriteString("\n## Properties\n\n")
		for _, name := range propertyNames(props) {
			prop, _ := nodeObject(props[name])

			typ := typeString(prop["type"])
			if typ == "" {
				typ = "any"
			}

			line := fmt.Sprintf("- `%s` _%s_", name, typ)
			if isRequired(name, required) {
				line += ", **required**"
			}
			if desc := stringKey(prop, "description"); desc != "" {
				line = fmt.Sprintf("%s: %s", line, clip(desc, 200))
			}
			sb.WriteString(line + "\n")
		}
	}

	if n := len(d.Examples()); n > 0 {
		fmt.Fprintf(&sb, "\n%d example(s) available, view them in the overview.\n", n)
	}

	return sb.String()
}
