// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package tui_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/defenseunicorns/jsv"
	"github.com/defenseunicorns/jsv/tui"
)

func loadTestDocument(t *testing.T, content string) *jsv.Document {
	t.Helper()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "doc.json", []byte(content), 0o644))

	doc, err := jsv.LoadDocument(fsys, "doc.json")
	require.NoError(t, err)
	return doc
}

func press(tm *teatest.TestModel, key string) {
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

func TestModelViews(t *testing.T) {
	t.Parallel()

	doc := loadTestDocument(t, `{
  "title": "Pet",
  "description": "A pet in the store",
  "type": "object",
  "properties": {
    "name": {"type": "string", "description": "Display name"},
    "status": {"type": "string", "enum": ["available", "sold"]}
  },
  "required": ["name"],
  "examples": [{"description": "A dog", "name": "Rex"}]
}`)

	m := tui.New(t.Context(), doc)
	tm := teatest.NewTestModel(
		t, m,
		teatest.WithInitialTermSize(120, 40),
	)

	// starts on the overview
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Schema Viewer - doc.json")) &&
				bytes.Contains(bts, []byte("Required Fields (1):"))
		},
	)

	press(tm, "2")
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			// the description column and enum fold only exist in the table
			return bytes.Contains(bts, []byte("Display")) &&
				bytes.Contains(bts, []byte("enum:"))
		},
	)

	press(tm, "3")
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("properties (fields)"))
		},
	)

	press(tm, "4")
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("A dog")) &&
				bytes.Contains(bts, []byte("Rex"))
		},
	)

	press(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModelCopyWithoutExamples(t *testing.T) {
	t.Parallel()

	doc := loadTestDocument(t, `{"title": "Bare", "properties": {"x": {"type": "string"}}}`)

	tm := teatest.NewTestModel(
		t, tui.New(t.Context(), doc),
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Schema Viewer - doc.json"))
		},
	)

	press(tm, "c")
	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("No examples to copy"))
		},
	)

	// the examples view is unreachable without examples
	press(tm, "4")
	press(tm, "q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}

func TestModelEscQuits(t *testing.T) {
	t.Parallel()

	doc := loadTestDocument(t, `{"title": "Bare"}`)

	tm := teatest.NewTestModel(
		t, tui.New(t.Context(), doc),
		teatest.WithInitialTermSize(120, 40),
	)

	teatest.WaitFor(
		t, tm.Output(),
		func(bts []byte) bool {
			return bytes.Contains(bts, []byte("Schema Viewer - doc.json"))
		},
	)

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
