// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

var examplePanelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	}).
	Padding(0, 1)

// Examples renders each entry of the "examples" array as an independent
// bordered panel of pretty-printed JSON.
//
// An object example's "description" becomes the panel title and is left out
// of the body. A document without examples renders nothing, absence is not
// an error.
func (r *Renderer) Examples(ctx context.Context, d *Document) string {
	examples := d.Examples()
	if len(examples) == 0 {
		return ""
	}

	logger := log.FromContext(ctx)

	panels := make([]string, 0, len(examples))
	for i, example := range examples {
		title, body := SplitExample(example, i)

		b, err := json.MarshalIndent(body, "", "  ")
		if err != nil {
			logger.Debugf("failed to marshal example %d: %v", i+1, err)
			continue
		}
		content := string(b)

		if !r.plain {
			var buf strings.Builder
			if err := highlight(&buf, content, "json"); err != nil {
				logger.Debugf("failed to highlight: %v", err)
			} else {
				content = buf.String()
			}
		}

		header := noteStyle.Bold(true).Render(title)
		panels = append(panels, examplePanelStyle.Render(header+"\n"+content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// SplitExample pulls the "description" out of an object example for use as
// a display title, everything else stays in the body. i is the zero-based
// position of the example, used for the fallback title.
func SplitExample(example any, i int) (string, any) {
	title := fmt.Sprintf("Example %d", i+1)

	obj, ok := nodeObject(example)
	if !ok {
		return title, example
	}

	if desc := stringKey(obj, "description"); desc != "" {
		title = desc
	}

	if _, ok := obj["description"]; !ok {
		return title, obj
	}

	body := make(map[string]any, len(obj)-1)
	for k, v := range obj {
		if k != "description" {
			body[k] = v
		}
	}
	return title, body
}
