// Package ipa converts CMU (ARPAbet) phonemes to IPA symbols.
package ipa

import (
	"strings"
)

// Stress marks prefixed to a vowel symbol.
const (
	StressPrimary   = "ˈ"
	StressSecondary = "ˌ"
)

// Phoneme is a single IPA symbol with its stress mark.
type Phoneme struct {
	Symbol string
	Stress string
}

// String renders the phoneme the way it appears in a transcription.
func (p Phoneme) String() string {
	return p.Stress + p.Symbol
}

// vowelSymbols are the IPA vowel symbols the mapper can produce.
var vowelSymbols = map[string]bool{
	"ɑ": true, "æ": true, "ʌ": true, "ə": true, "ɔ": true,
	"aʊ": true, "aɪ": true, "ɛ": true, "ər": true, "ɜr": true,
	"eɪ": true, "ɪ": true, "i": true, "oʊ": true, "ɔɪ": true,
	"ʊ": true, "u": true, "iː": true, "ɑː": true, "ɔː": true,
}

// IsVowel reports whether the phoneme is a vowel nucleus candidate.
func (p Phoneme) IsVowel() bool {
	return vowelSymbols[p.Symbol]
}

// Parse splits a rendered IPA string ("ˈʌ") back into symbol and stress.
func Parse(s string) Phoneme {
	switch {
	case strings.HasPrefix(s, StressPrimary):
		return Phoneme{Symbol: strings.TrimPrefix(s, StressPrimary), Stress: StressPrimary}
	case strings.HasPrefix(s, StressSecondary):
		return Phoneme{Symbol: strings.TrimPrefix(s, StressSecondary), Stress: StressSecondary}
	default:
		return Phoneme{Symbol: s}
	}
}

// ParseGroup parses a slice of rendered IPA strings.
func ParseGroup(ss []string) []Phoneme {
	out := make([]Phoneme, len(ss))
	for i, s := range ss {
		out[i] = Parse(s)
	}
	return out
}

// Render converts phonemes back to their string form.
func Render(ps []Phoneme) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// baseTable maps a CMU base symbol (stress digit stripped) to IPA.
var baseTable = map[string]string{
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ",
	"AW": "aʊ", "AY": "aɪ", "EH": "ɛ", "ER": "ɜr",
	"EY": "eɪ", "IH": "ɪ", "IY": "i", "OW": "oʊ",
	"OY": "ɔɪ", "UH": "ʊ", "UW": "u",
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð",
	"F": "f", "G": "g", "HH": "h", "JH": "dʒ",
	"K": "k", "L": "l", "M": "m", "N": "n",
	"NG": "ŋ", "P": "p", "R": "r", "S": "s",
	"SH": "ʃ", "T": "t", "TH": "θ", "V": "v",
	"W": "w", "Y": "j", "Z": "z", "ZH": "ʒ",
}

// exactTable holds symbol+stress combinations whose IPA rendering is not
// the mechanical stress-mark-plus-base form. Unstressed AH reduces to schwa
// and unstressed ER is the rhotic schwa.
var exactTable = map[string]string{
	"AH0": "ə",
	"ER0": "ər",
}

// wordOverrides replaces the whole mapped sequence for words whose
// conventional IPA spelling differs from the mechanical CMU rendering.
var wordOverrides = map[string]string{
	"good": "gʊd",
	"knee": "niː",
	"star": "stɑːr",
}

// Mapper converts CMU phoneme sequences to IPA.
type Mapper struct{}

// NewMapper creates a Mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts a CMU phoneme sequence to IPA, one phoneme per input symbol.
func (m *Mapper) Map(cmu []string) []Phoneme {
	out := make([]Phoneme, len(cmu))
	for i, sym := range cmu {
		out[i] = mapOne(sym)
	}
	return out
}

// MapWord converts a word's CMU sequence to IPA, applying whole-word
// overrides first.
func (m *Mapper) MapWord(word string, cmu []string) []Phoneme {
	if override, ok := wordOverrides[word]; ok {
		return splitOverride(override)
	}
	return m.Map(cmu)
}

func mapOne(sym string) Phoneme {
	base, digit := splitStress(sym)

	stress := ""
	switch digit {
	case '1':
		stress = StressPrimary
	case '2':
		stress = StressSecondary
	}

	if ipa, ok := exactTable[sym]; ok {
		return Phoneme{Symbol: ipa, Stress: stress}
	}
	if ipa, ok := baseTable[base]; ok {
		return Phoneme{Symbol: ipa, Stress: stress}
	}

	// Unknown symbols pass through lowercased rather than failing.
	return Phoneme{Symbol: strings.ToLower(sym)}
}

// splitStress strips a trailing stress digit from a CMU symbol.
func splitStress(sym string) (base string, digit byte) {
	if len(sym) > 0 {
		last := sym[len(sym)-1]
		if last >= '0' && last <= '9' {
			return sym[:len(sym)-1], last
		}
	}
	return sym, 0
}

// splitOverride breaks an override spelling into per-character phonemes,
// keeping the length mark with the symbol it lengthens.
func splitOverride(s string) []Phoneme {
	var out []Phoneme
	for _, r := range s {
		if r == 'ː' && len(out) > 0 {
			out[len(out)-1].Symbol += "ː"
			continue
		}
		out = append(out, Parse(string(r)))
	}
	return out
}
