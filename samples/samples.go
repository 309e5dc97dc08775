// Package samples runs bornomala sample programs in batch and reports the
// results.
//
// A sample is a program plus, optionally, the output it is expected to
// produce. Samples come from the built-in demonstrations or from *.bn files
// on disk; a sibling *.bn.out file holds the expected output.
package samples

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sampleExt   = ".bn"
	expectedExt = ".out"
)

// Case is a single sample program.
type Case struct {
	// Name identifies the case in reports.
	Name string

	// Description is a human readable label. Optional.
	Description string

	// Source is the program text.
	Source string

	// File is the path the case was loaded from, empty for built-ins.
	File string

	// Expected is the expected transcript: program output followed by the
	// error line, if the program fails. Only meaningful when HasExpected.
	Expected    string
	HasExpected bool
}

// Builtin returns the built-in demonstration cases.
func Builtin() []Case {
	out := make([]Case, len(builtinCases))
	copy(out, builtinCases)
	return out
}

// Load reads a sample file and its expected output, if present.
func Load(path string) (Case, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Case{}, err
	}
	c := Case{
		Name:   strings.TrimSuffix(filepath.ToSlash(path), sampleExt),
		Source: string(source),
		File:   path,
	}
	expected, err := os.ReadFile(path + expectedExt)
	switch {
	case err == nil:
		c.Expected = string(expected)
		c.HasExpected = true
	case !os.IsNotExist(err):
		return Case{}, err
	}
	return c, nil
}

// DiscoverFiles finds all *.bn files matching the given patterns. A pattern
// is a file, a directory, a glob, or a directory followed by "/..." to
// search recursively. If no patterns are provided, the current directory is
// searched.
func DiscoverFiles(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	var files []string
	seen := make(map[string]bool)
	add := func(path string) {
		if isSampleFile(path) && !seen[path] {
			files = append(files, path)
			seen[path] = true
		}
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "*") {
			matches, err := filepath.Glob(pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			for _, m := range matches {
				add(m)
			}
			continue
		}

		recursive := false
		searchDir := pattern
		if strings.HasSuffix(pattern, "...") {
			recursive = true
			searchDir = strings.TrimSuffix(strings.TrimSuffix(pattern, "..."), "/")
			if searchDir == "" {
				searchDir = "."
			}
		}

		info, err := os.Stat(searchDir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("path not found: %s", searchDir)
			}
			return nil, err
		}

		switch {
		case !info.IsDir():
			add(pattern)
		case recursive:
			err = filepath.WalkDir(searchDir, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() {
					add(path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
		default:
			entries, err := os.ReadDir(searchDir)
			if err != nil {
				return nil, err
			}
			for _, e := range entries {
				if !e.IsDir() {
					add(filepath.Join(searchDir, e.Name()))
				}
			}
		}
	}
	return files, nil
}

// Discover loads every sample file matching the given patterns.
func Discover(patterns []string) ([]Case, error) {
	files, err := DiscoverFiles(patterns)
	if err != nil {
		return nil, err
	}
	cases := make([]Case, 0, len(files))
	for _, file := range files {
		c, err := Load(file)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}
	return cases, nil
}

func isSampleFile(path string) bool {
	return strings.HasSuffix(path, sampleExt)
}
