// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// highlight writes source through chroma's terminal formatter, picking the
// style variant to match the terminal background.
func highlight(w io.Writer, source, lang string) error {
	style := "tokyonight-day"
	if lipgloss.HasDarkBackground() {
		style = "tokyonight-moon"
	}
	return quick.Highlight(w, source, lang, "terminal256", style)
}

// Full renders the entire document as pretty-printed JSON with syntax
// highlighting and a line-number gutter. No semantic interpretation happens
// here: stripped of styling, the output parses back to the same value.
func (r *Renderer) Full(ctx context.Context, d *Document) (string, error) {
	b, err := json.MarshalIndent(d.Root(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s: %w", d.Path, err)
	}
	src := string(b)

	if !r.plain {
		var buf strings.Builder
		if err := highlight(&buf, src, "json"); err != nil {
			log.FromContext(ctx).Debugf("failed to highlight: %v", err)
		} else {
			src = buf.String()
		}
	}

	lines := strings.Split(src, "\n")
	gutter := len(strconv.Itoa(len(lines)))

	var out strings.Builder
	for i, line := range lines {
		fmt.Fprintf(&out, "%s %s\n", faintStyle.Render(fmt.Sprintf("%*d", gutter, i+1)), line)
	}

	return strings.TrimSuffix(out.String(), "\n"), nil
}
