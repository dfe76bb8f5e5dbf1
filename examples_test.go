// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestExamples(t *testing.T) {
	r := NewRenderer(io.Discard, WithPlain(true))
	ctx := log.WithContext(t.Context(), log.New(io.Discard))

	t.Run("each example renders as its own panel", func(t *testing.T) {
		doc := loadTestDocument(t, `{
  "examples": [
    {"description": "Create a user", "name": "Ada", "age": 36},
    {"name": "Grace"},
    42
  ]
}`)

		out := ansi.Strip(r.Examples(ctx, doc))

		// the description key becomes the panel title and leaves the body
		assert.Contains(t, out, "Create a user")
		assert.NotContains(t, out, "description")

		assert.Contains(t, out, `"name": "Ada"`)
		assert.Contains(t, out, `"age": 36`)

		// examples without a description are numbered
		assert.Contains(t, out, "Example 2")
		assert.Contains(t, out, `"name": "Grace"`)

		// scalar examples still render
		assert.Contains(t, out, "Example 3")
		assert.Contains(t, out, "42")
	})

	t.Run("absent examples render nothing", func(t *testing.T) {
		for _, content := range []string{`{}`, `{"examples": []}`, `{"examples": "nope"}`, `{"examples": {"a": 1}}`} {
			doc := loadTestDocument(t, content)
			assert.Empty(t, r.Examples(ctx, doc))
		}
	})
}

func TestSplitExample(t *testing.T) {
	testCases := []struct {
		name          string
		example       any
		expectedTitle string
	}{
		{
			name:          "description becomes the title",
			example:       map[string]any{"description": "Look here", "x": 1},
			expectedTitle: "Look here",
		},
		{
			name:          "object without description is numbered",
			example:       map[string]any{"x": 1},
			expectedTitle: "Example 3",
		},
		{
			name:          "scalar is numbered",
			example:       "plain",
			expectedTitle: "Example 3",
		},
		{
			name:          "non-string description titles as its string form",
			example:       map[string]any{"description": 7},
			expectedTitle: "7",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			title, body := SplitExample(tc.example, 2)
			assert.Equal(t, tc.expectedTitle, title)

			if tc.expectedTitle != "Example 3" {
				m, ok := body.(map[string]any)
				assert.True(t, ok)
				assert.NotContains(t, m, "description")
			}
		})
	}
}
