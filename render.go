// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
)

// Mode selects which projection of a schema document gets rendered.
type Mode string

var _ pflag.Value = (*Mode)(nil)

const (
	// ModeOverview renders the header, properties table, tree, and examples
	ModeOverview Mode = "overview"
	// ModeFull renders the entire document with syntax highlighting
	ModeFull Mode = "full"
	// DefaultMode is the mode used when none is specified
	DefaultMode Mode = ModeOverview
)

// AvailableModes returns a list of available render modes.
func AvailableModes() []string {
	return []string{
		string(ModeOverview),
		string(ModeFull),
	}
}

// String implements the pflag.Value and fmt.Stringer interfaces
func (m *Mode) String() string {
	return string(*m)
}

// Set implements the pflag.Value interface
func (m *Mode) Set(value string) error {
	switch value {
	case string(ModeOverview):
		*m = ModeOverview
	case string(ModeFull):
		*m = ModeFull
	default:
		return fmt.Errorf("invalid mode: %s", value)
	}
	return nil
}

// Type implements the pflag.Value interface
func (m *Mode) Type() string {
	return "string"
}

// https://github.com/charmbracelet/vhs/blob/main/themes.json
var (
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#007197", // tokyonight-day cyan
		Dark:  "#7dcfff", // tokyonight cyan
	})
	labelStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
	borderColor = lipgloss.AdaptiveColor{
		Light: "#2e7de9", // tokyonight-day blue
		Dark:  "#7aa2f7", // tokyonight blue
	}
	propertyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#007197", // tokyonight-day cyan
		Dark:  "#7dcfff", // tokyonight cyan
	})
	typeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	})
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#8c6c3e", // tokyonight-day amber/yellow
		Dark:  "#e0af68", // tokyonight amber/yellow
	})
	checkMark = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	}).SetString("✓")
	crossMark = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f52a65", // tokyonight-day red
		Dark:  "#f7768e", // tokyonight red
	}).SetString("✗")
)

// Renderer writes styled views of schema documents to a single sink.
//
// All views are pure functions of the document, a renderer carries only the
// sink, the target width, and the color toggle.
type Renderer struct {
	w     io.Writer
	width int
	plain bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithWidth sets the target render width.
func WithWidth(width int) RendererOption {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithPlain disables syntax highlighting regardless of environment.
func WithPlain(plain bool) RendererOption {
	return func(r *Renderer) {
		r.plain = plain
	}
}

// NewRenderer creates a renderer writing to w.
//
// Highlighting is disabled up front when the environment asks for no color,
// lipgloss handles the rest of the styling degradation on its own.
func NewRenderer(w io.Writer, opts ...RendererOption) *Renderer {
	r := &Renderer{
		w:     w,
		width: 100,
		plain: termenv.EnvNoColor(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the target render width.
func (r *Renderer) Width() int {
	return r.width
}

// Render dispatches a document to the projection selected by mode.
func (r *Renderer) Render(ctx context.Context, d *Document, mode Mode) error {
	switch mode {
	case ModeFull:
		out, err := r.Full(ctx, d)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.w, out)
		return nil
	default:
		return r.Overview(ctx, d)
	}
}

// Overview writes the combined structured view: header, properties table,
// tree, and examples.
func (r *Renderer) Overview(ctx context.Context, d *Document) error {
	fmt.Fprintln(r.w, r.Header(d))

	r.section("Properties Overview")
	fmt.Fprintln(r.w, r.PropertiesTable(d))

	r.section("Tree View")
	fmt.Fprintln(r.w, r.Tree(d))

	if examples := r.Examples(ctx, d); examples != "" {
		r.section("Examples")
		fmt.Fprintln(r.w, examples)
	}

	fmt.Fprintln(r.w, faintStyle.Render("Run with --full to see the complete JSON with syntax highlighting"))
	return nil
}

// Header returns the document summary shown above the structured views.
func (r *Renderer) Header(d *Document) string {
	title := d.Title()
	if title == "" {
		title = d.Name()
	}

	lines := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Schema:"), title),
	}
	if desc := d.Description(); desc != "" {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Description:"), desc))
	}
	lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("File:"), d.Path))
	if uri := d.SchemaURI(); uri != "" {
		lines = append(lines, fmt.Sprintf("%s %s", labelStyle.Render("Dialect:"), faintStyle.Render(uri)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r *Renderer) section(title string) {
	fmt.Fprintf(r.w, "\n%s\n\n", sectionStyle.Render("═══ "+title+" ═══"))
}
