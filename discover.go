// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package jsv

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
)

// ErrNoSchemaDir is returned when the discovery root does not exist.
var ErrNoSchemaDir = errors.New("schema directory not found")

// ErrNoSchemas is returned when the discovery root contains no matching files.
var ErrNoSchemas = errors.New("no schemas found")

// Entry is a discovered schema file.
//
// Entries have no identity beyond their position in the discovered list, the
// 1-based index is the user-facing selector.
type Entry struct {
	// Path is the file location relative to the working directory
	Path string
	// Size is the file size in bytes
	Size int64
}

// HumanSize returns the entry size as a human-readable string.
func (e Entry) HumanSize() string {
	return humanize.IBytes(uint64(e.Size))
}

// Discover walks root and returns an entry for every regular file whose
// extension matches exts, in lexicographic path order.
//
// A missing root or zero matches both resolve to sentinel errors so callers
// can report them as a single message instead of a stack trace.
func Discover(fsys afero.Fs, root string, exts []string) ([]Entry, error) {
	fi, err := fsys.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNoSchemaDir, root)
		}
		return nil, err
	}

	if !fi.IsDir() {
		return nil, fmt.Errorf("read %s: not a directory", root)
	}

	var entries []Entry
	err = afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !matchesExt(path, exts) {
			return nil
		}
		entries = append(entries, Entry{Path: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w in %q (looked for %s)", ErrNoSchemas, root, strings.Join(exts, ", "))
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(a.Path, b.Path)
	})

	return entries, nil
}

func matchesExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(exts, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}
