// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
)

// ErrQuit is returned when the user quits the interactive prompt.
var ErrQuit = errors.New("quit")

// MenuTable renders the numbered table of discovered schemas.
func MenuTable(entries []Entry) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return sectionStyle.Padding(0, 1)
			case col == 0:
				return faintStyle.Padding(0, 1).Align(lipgloss.Right)
			case col == 1:
				return propertyStyle.Padding(0, 1)
			default:
				return noteStyle.Padding(0, 1).Align(lipgloss.Right)
			}
		}).
		Headers("#", "Schema File", "Size")

	for i, e := range entries {
		t.Row(strconv.Itoa(i+1), e.Path, e.HumanSize())
	}

	return t.String()
}

// Choose prints the menu and reads selections from r one line at a time
// until a valid number, a quit token, or EOF.
//
// An empty line selects the first entry. Invalid input warns and re-prompts
// rather than exiting.
func Choose(ctx context.Context, r io.Reader, w io.Writer, entries []Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}

	logger := log.FromContext(ctx)

	fmt.Fprintln(w, sectionStyle.Render("Available JSON Schemas:"))
	fmt.Fprintln(w, MenuTable(entries))

	prompt := fmt.Sprintf("Select a schema number 1-%d (or %q to quit) [1]: ", len(entries), "q")
	fmt.Fprint(w, prompt)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			return entries[0], nil
		case strings.EqualFold(line, "q"), strings.EqualFold(line, "quit"):
			return Entry{}, ErrQuit
		}

		idx, err := strconv.Atoi(line)
		if err != nil {
			logger.Warnf("invalid input %q, enter a number", line)
			fmt.Fprint(w, prompt)
			continue
		}

		if idx < 1 || idx > len(entries) {
			logger.Warnf("invalid choice %d, select 1-%d", idx, len(entries))
			fmt.Fprint(w, prompt)
			continue
		}

		return entries[idx-1], nil
	}

	if err := scanner.Err(); err != nil {
		return Entry{}, err
	}

	// EOF reads as a quit
	return Entry{}, ErrQuit
}
