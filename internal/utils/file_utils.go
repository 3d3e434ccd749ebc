package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadTargetsFromFile reads targets from a file, one per line.
// Blank lines and lines starting with '#' are skipped.
func ReadTargetsFromFile(filepath string) ([]string, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filepath, err)
	}
	defer file.Close()

	targets, err := ReadTargets(file)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filepath, err)
	}
	return targets, nil
}

// ReadTargets reads targets from r, one per line. Lines are trimmed of
// surrounding whitespace only; anything inside a line is left for the
// validators to judge.
func ReadTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return targets, nil
}

// ReadTargetsFromString reads targets from a string, splitting by newlines
func ReadTargetsFromString(content string) ([]string, error) {
	return ReadTargets(strings.NewReader(content))
}
