// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

//go:embed license_header.txt
var licenseHeader string

// patterns maps file extensions (starting with a dot) or exact file names to
// the comment prefix used for the header in such files.
var patterns = map[string]string{
	".go":    "//",
	"go.mod": "//",
}

// ignored lists path fragments of files that never get a header.
var ignored = []string{"/_examples/", "/.git/"}

// processTree adds the license header to all matching files below dir. In
// check mode files are not modified; instead, all files with a missing or
// duplicated header are reported in the returned error.
func processTree(dir, license string, checkOnly bool) error {
	var issues []error
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || isIgnored(path) {
			return nil
		}
		prefix, found := commentPrefix(path)
		if !found {
			return nil
		}
		header := withPrefix(license, prefix)
		if checkOnly {
			issues = append(issues, checkFile(path, header, prefix))
			return nil
		}
		return addHeader(path, header)
	})
	if err != nil {
		return fmt.Errorf("failed to process directory %s: %w", dir, err)
	}
	return errors.Join(issues...)
}

func commentPrefix(path string) (string, bool) {
	for pattern, prefix := range patterns {
		if strings.HasPrefix(pattern, ".") && strings.HasSuffix(path, pattern) {
			return prefix, true
		}
		if filepath.Base(path) == pattern {
			return prefix, true
		}
	}
	return "", false
}

func isIgnored(path string) bool {
	path = "/" + filepath.ToSlash(path)
	for _, fragment := range ignored {
		if strings.Contains(path, fragment) {
			return true
		}
	}
	return false
}

// checkFile verifies that the file starts with the given header and that no
// second header follows it.
func checkFile(path, header, prefix string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if isGenerated(content) {
		return nil
	}
	if !strings.HasPrefix(string(content), header) {
		return fmt.Errorf("missing or incorrect license header: %s", path)
	}
	rest := strings.TrimPrefix(string(content), header)
	if !strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\n\n") {
		return fmt.Errorf("license header must be followed by exactly one empty line: %s", path)
	}
	if strings.Contains(rest, prefix+" Copyright") {
		return fmt.Errorf("double license header found in %s", path)
	}
	return nil
}

// addHeader puts the header in front of the file's content, replacing an
// outdated header of the same copyright holder.
func addHeader(path, header string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if isGenerated(content) {
		return nil
	}
	body := string(content)
	if strings.HasPrefix(body, header) {
		// keep the header, but normalize the spacing to the package clause
		rest := strings.TrimPrefix(body, header)
		if strings.HasPrefix(rest, "\n") && !strings.HasPrefix(rest, "\n\n") {
			return nil
		}
		body = rest
	}
	if strings.HasPrefix(body, "// Copyright") && strings.Contains(firstLine(body), "Sonic Operations Ltd") {
		// drop the outdated header up to the first empty line
		if end := strings.Index(body, "\n\n"); end >= 0 {
			body = body[end+2:]
		}
	}
	body = strings.TrimLeft(body, "\n")
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(header+"\n"+body), info.Mode().Perm())
}

func isGenerated(content []byte) bool {
	return strings.HasPrefix(string(content), "// Code generated")
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

// withPrefix turns every line of the license into a comment line.
func withPrefix(license, prefix string) string {
	var builder strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(license))
	for scanner.Scan() {
		if line := scanner.Text(); line == "" {
			builder.WriteString(prefix + "\n")
		} else {
			builder.WriteString(prefix + " " + line + "\n")
		}
	}
	return builder.String()
}
