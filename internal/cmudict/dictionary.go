// Package cmudict loads the CMU pronouncing dictionary, either from its
// plain text format or from a compiled SQLite database.
package cmudict

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Dictionary maps a normalized word to its CMU phoneme sequence. Loaded
// once at startup and read-only afterwards.
type Dictionary struct {
	entries map[string][]string
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]string)}
}

// Add inserts a pronunciation. The first pronunciation for a word wins;
// later variants are ignored.
func (d *Dictionary) Add(word string, phonemes []string) {
	word = strings.ToLower(word)
	if _, exists := d.entries[word]; exists {
		return
	}
	d.entries[word] = phonemes
}

// Lookup returns the phoneme sequence for a normalized word.
func (d *Dictionary) Lookup(word string) ([]string, bool) {
	phonemes, ok := d.entries[word]
	return phonemes, ok
}

// Size returns the number of entries.
func (d *Dictionary) Size() int {
	return len(d.entries)
}

// LoadFile loads the dictionary from path, dispatching on the extension:
// .db/.sqlite files are compiled databases, everything else is parsed as
// CMU text.
func (d *Dictionary) LoadFile(path string) error {
	switch filepath.Ext(path) {
	case ".db", ".sqlite":
		return d.loadSQLite(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	return d.LoadText(file)
}

// LoadText parses the CMU dictionary text format:
//
//	;;; comment
//	WORD  P1 P2 ...
//	WORD(1)  P1 P2 ...
//
// Parenthesized alternate pronunciations are skipped so the first listed
// variant is the canonical one.
func (d *Dictionary) LoadText(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, phonemes, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		d.Add(word, phonemes)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading dictionary: %w", err)
	}
	return nil
}

func parseLine(line string) (string, []string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";;;") {
		return "", nil, false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", nil, false
	}

	word := fields[0]
	if strings.HasSuffix(word, ")") {
		// Alternate pronunciation, e.g. READ(1).
		return "", nil, false
	}

	return strings.ToLower(word), fields[1:], true
}
