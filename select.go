// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
)

// ErrBadIndex is returned for selectors that parse as a number but do not
// land inside the discovered list.
var ErrBadIndex = errors.New("invalid schema number")

// Resolve maps a user-supplied selector onto exactly one schema file path.
//
// An all-digits selector is a 1-based index into entries. Anything else is
// treated as a filesystem path, which does not have to live inside the
// discovery root.
func Resolve(fsys afero.Fs, entries []Entry, selector string) (string, error) {
	if selector == "" {
		return "", errors.New("empty selector")
	}

	if IsIndex(selector) {
		idx, err := strconv.Atoi(selector)
		if err != nil {
			return "", fmt.Errorf("%w: %s", ErrBadIndex, selector)
		}
		if idx < 1 || idx > len(entries) {
			return "", fmt.Errorf("%w: select 1-%d, got %d", ErrBadIndex, len(entries), idx)
		}
		return entries[idx-1].Path, nil
	}

	fi, err := fsys.Stat(selector)
	if err != nil {
		return "", err
	}
	if fi.IsDir() {
		return "", fmt.Errorf("read %s: is a directory", selector)
	}

	return selector, nil
}

// IsIndex reports whether a selector picks by 1-based index rather than by
// path: one or more ASCII digits and nothing else.
func IsIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
