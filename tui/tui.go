// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package tui provides a full-screen interactive browser for schema documents.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/defenseunicorns/jsv"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#007197", // tokyonight-day cyan
		Dark:  "#7dcfff", // tokyonight cyan
	})
	boldStyle   = lipgloss.NewStyle().Bold(true)
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	})
	dimStyle  = lipgloss.NewStyle().Faint(true)
	noteStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#8c6c3e", // tokyonight-day amber/yellow
		Dark:  "#e0af68", // tokyonight amber/yellow
	})
	checkMark = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#587539", // tokyonight-day green
		Dark:  "#9ece6a", // tokyonight green
	}).SetString("✓")
	errorMark = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#f52a65", // tokyonight-day red
		Dark:  "#f7768e", // tokyonight red
	}).SetString("✗")
)

type view int

const (
	viewOverview view = iota
	viewProperties
	viewTree
	viewExamples
)

// Model is the bubbletea model for the schema browser.
//
// The document is immutable, every view is re-rendered from it whenever the
// window size or the selected view changes.
type Model struct {
	ctx      context.Context
	doc      *jsv.Document
	renderer *jsv.Renderer
	viewport viewport.Model
	bodies   []any
	view     view
	status   string
	ready    bool
}

// New creates a browser model for a loaded document.
func New(ctx context.Context, doc *jsv.Document) *Model {
	examples := doc.Examples()
	bodies := make([]any, 0, len(examples))
	for i, example := range examples {
		_, body := jsv.SplitExample(example, i)
		bodies = append(bodies, body)
	}

	return &Model{
		ctx:      ctx,
		doc:      doc,
		renderer: jsv.NewRenderer(io.Discard),
		bodies:   bodies,
	}
}

// Run opens the browser for a document and blocks until the user quits.
func Run(ctx context.Context, doc *jsv.Document) error {
	p := tea.NewProgram(New(ctx, doc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.renderer = jsv.NewRenderer(io.Discard, jsv.WithWidth(max(40, msg.Width-2)))

		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(1, msg.Height-chrome))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(1, msg.Height-chrome)
		}
		m.viewport.SetContent(m.content())

	case tea.KeyMsg:
		if keyExits(msg) {
			return m, tea.Quit
		}
		if m.handleKey(msg.String()) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func keyExits(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return true
	}

	return false
}

// handleKey reports whether the key was consumed, unconsumed keys fall
// through to the viewport for scrolling.
func (m *Model) handleKey(key string) bool {
	// digits copy individual examples while they are on screen
	if m.view == viewExamples && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if n := int(key[0] - '0'); n <= len(m.bodies) {
			m.copyExample(n)
			return true
		}
	}

	switch key {
	case "1":
		m.switchTo(viewOverview)
	case "2":
		m.switchTo(viewProperties)
	case "3":
		m.switchTo(viewTree)
	case "4":
		if len(m.bodies) > 0 {
			m.switchTo(viewExamples)
		}
	case "c":
		m.copyAll()
	default:
		return false
	}

	return true
}

func (m *Model) switchTo(v view) {
	m.view = v
	m.status = ""
	m.viewport.SetContent(m.content())
	m.viewport.GotoTop()
}

func (m *Model) copyExample(n int) {
	data, err := json.MarshalIndent(m.bodies[n-1], "", "  ")
	if err != nil {
		m.status = fmt.Sprintf("%s failed to marshal example %d: %v", errorMark, n, err)
		return
	}

	if err := clipboard.WriteAll(string(data)); err != nil {
		m.status = fmt.Sprintf("%s failed to copy: %v", errorMark, err)
		return
	}

	m.status = fmt.Sprintf("%s Copied example %d to clipboard", checkMark, n)
}

func (m *Model) copyAll() {
	if len(m.bodies) == 0 {
		m.status = noteStyle.Render("No examples to copy")
		return
	}

	var payload any = m.bodies
	if len(m.bodies) == 1 {
		payload = m.bodies[0]
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		m.status = fmt.Sprintf("%s failed to marshal examples: %v", errorMark, err)
		return
	}

	if err := clipboard.WriteAll(string(data)); err != nil {
		m.status = fmt.Sprintf("%s failed to copy: %v", errorMark, err)
		return
	}

	m.status = fmt.Sprintf("%s Copied %d example(s) to clipboard", checkMark, len(m.bodies))
}

func (m *Model) content() string {
	switch m.view {
	case viewProperties:
		return m.renderer.PropertiesTable(m.doc)
	case viewTree:
		return m.renderer.Tree(m.doc)
	case viewExamples:
		hint := dimStyle.Render("Press 1-9 to copy that example, c to copy all")
		return hint + "\n\n" + m.renderer.Examples(m.ctx, m.doc)
	default:
		return m.overview()
	}
}

func (m *Model) overview() string {
	var sb strings.Builder
	sb.WriteString(m.renderer.Header(m.doc))
	sb.WriteString("\n")

	if typ := m.doc.Type(); typ != "" {
		fmt.Fprintf(&sb, "%s %s\n", boldStyle.Render("Type:"), typ)
	}

	if required := m.doc.Required(); len(required) > 0 {
		fmt.Fprintf(&sb, "\n%s\n", boldStyle.Render(fmt.Sprintf("Required Fields (%d):", len(required))))
		for _, field := range required {
			fmt.Fprintf(&sb, "  • %s\n", field)
		}
	}

	return sb.String()
}

func (m *Model) headerView() string {
	title := titleStyle.Render("Schema Viewer - " + m.doc.Name())
	return title + "\n" + m.navView()
}

func (m *Model) navView() string {
	type item struct {
		v     view
		label string
	}

	items := []item{
		{viewOverview, "1 Overview"},
		{viewProperties, "2 Properties"},
		{viewTree, "3 Tree"},
	}
	if len(m.bodies) > 0 {
		items = append(items, item{viewExamples, "4 Examples"})
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		style := dimStyle
		if it.v == m.view {
			style = activeStyle
		}
		parts = append(parts, style.Render(it.label))
	}

	return strings.Join(parts, "  ")
}

func (m *Model) footerView() string {
	help := dimStyle.Render("1-4 switch view • ↑/↓ scroll • c copy examples • q quit")
	return m.status + "\n" + help
}
