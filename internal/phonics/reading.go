package phonics

import (
	"strings"

	"github.com/f3rmion/phonics/internal/ipa"
)

// ReadingUnit is a phonics-level unit: one letter or one recognized
// grapheme, with the phonemes it carries. Unit texts concatenate back to
// the word.
type ReadingUnit struct {
	Text     string
	Phonemes []ipa.Phoneme
}

// readingGraphemes are multi-letter graphemes matched during the scan,
// longest first.
var readingGraphemes = []string{
	"tch", "dge", "igh",
	"ch", "sh", "th", "ph", "wh", "ng", "ck", "kn", "wr", "gn", "qu",
}

// readingMergePairs are adjacent single-letter units combined after the
// scan, mostly vowel teams the scan leaves apart.
var readingMergePairs = map[string]bool{
	"ea": true, "ee": true, "oo": true, "ai": true, "ay": true,
	"oa": true, "ou": true, "ow": true, "oi": true, "oy": true,
	"au": true, "aw": true, "ew": true,
	"th": true, "sh": true, "ch": true,
}

// readingOverrides lists irregular spellings that bypass the scan; the
// listed units get one phoneme each, leftovers going to the last unit.
var readingOverrides = map[string][]string{
	"one":  {"one"},
	"once": {"once"},
	"two":  {"two"},
	"who":  {"wh", "o"},
	"eye":  {"eye"},
}

// SplitReading decomposes a word into phonics units. Independent of
// syllabification: the scan walks the spelling left to right, consuming one
// phoneme per unit, and a merge pass joins registered adjacent pairs.
func SplitReading(word string, phonemes []ipa.Phoneme) []ReadingUnit {
	if texts, ok := readingOverrides[word]; ok {
		return unitsFromTexts(texts, phonemes)
	}

	var units []ReadingUnit
	cursor := 0
	for i := 0; i < len(word); {
		text := matchGrapheme(word[i:])
		unit := ReadingUnit{Text: text}
		if cursor < len(phonemes) {
			unit.Phonemes = []ipa.Phoneme{phonemes[cursor]}
			cursor++
		}
		units = append(units, unit)
		i += len(text)
	}

	units = appendLeftovers(units, phonemes, cursor)
	return mergePairs(units)
}

func matchGrapheme(rest string) string {
	for _, g := range readingGraphemes {
		if strings.HasPrefix(rest, g) {
			return g
		}
	}
	return rest[:1]
}

func appendLeftovers(units []ReadingUnit, phonemes []ipa.Phoneme, cursor int) []ReadingUnit {
	if cursor < len(phonemes) && len(units) > 0 {
		last := &units[len(units)-1]
		last.Phonemes = append(last.Phonemes, phonemes[cursor:]...)
	}
	return units
}

func mergePairs(units []ReadingUnit) []ReadingUnit {
	for i := 0; i+1 < len(units); {
		a, b := units[i], units[i+1]
		if len(a.Text) == 1 && len(b.Text) == 1 && readingMergePairs[a.Text+b.Text] {
			merged := ReadingUnit{Text: a.Text + b.Text}
			merged.Phonemes = append(merged.Phonemes, a.Phonemes...)
			merged.Phonemes = append(merged.Phonemes, b.Phonemes...)
			units[i] = merged
			units = append(units[:i+1], units[i+2:]...)
			continue
		}
		i++
	}
	return units
}

func unitsFromTexts(texts []string, phonemes []ipa.Phoneme) []ReadingUnit {
	units := make([]ReadingUnit, len(texts))
	cursor := 0
	for i, text := range texts {
		units[i] = ReadingUnit{Text: text}
		if cursor < len(phonemes) {
			units[i].Phonemes = []ipa.Phoneme{phonemes[cursor]}
			cursor++
		}
	}
	return appendLeftovers(units, phonemes, cursor)
}
