package phonics

import (
	"math"

	"github.com/f3rmion/phonics/internal/ipa"
)

// Align distributes the mapped phoneme sequence across the syllables.
// The vowel-nucleus walk is preferred when the word has exactly one vowel
// letter and one vowel phoneme per syllable, since it tracks phonology
// rather than spelling; otherwise phonemes are allocated proportionally to
// syllable length. Either way the groups concatenate back to the full
// sequence.
func Align(sylls []string, phonemes []ipa.Phoneme) [][]ipa.Phoneme {
	if len(sylls) == 1 {
		return [][]ipa.Phoneme{phonemes}
	}
	if groups, ok := alignByNuclei(sylls, phonemes); ok {
		return groups
	}
	return alignProportional(sylls, phonemes)
}

// alignByNuclei assigns one vowel phoneme per syllable and splits the
// consonant phonemes between nuclei with the same consonant-count rule the
// boundary analyzer uses.
func alignByNuclei(sylls []string, phonemes []ipa.Phoneme) ([][]ipa.Phoneme, bool) {
	vowelLetterCount := 0
	for _, syl := range sylls {
		vowelLetterCount += len(vowelPositions(syl))
	}
	if vowelLetterCount != len(sylls) {
		return nil, false
	}

	var nuclei []int
	for i, p := range phonemes {
		if p.IsVowel() {
			nuclei = append(nuclei, i)
		}
	}
	if len(nuclei) != len(sylls) {
		return nil, false
	}

	groups := make([][]ipa.Phoneme, len(sylls))
	start := 0
	for i := 0; i < len(nuclei)-1; i++ {
		cons := nuclei[i+1] - nuclei[i] - 1
		boundary := nuclei[i] + 1 + (cons+1)/2
		groups[i] = phonemes[start:boundary]
		start = boundary
	}
	groups[len(sylls)-1] = phonemes[start:]
	return groups, true
}

// alignProportional gives each syllable round(len/total * phonemes) phonemes,
// at least one while any remain, and appends leftovers to the last group.
func alignProportional(sylls []string, phonemes []ipa.Phoneme) [][]ipa.Phoneme {
	total := 0
	for _, syl := range sylls {
		total += len(syl)
	}

	groups := make([][]ipa.Phoneme, len(sylls))
	idx := 0
	lastStart := 0
	for i, syl := range sylls {
		ratio := float64(len(syl)) / float64(total)
		count := int(math.Round(ratio * float64(len(phonemes))))
		if count < 1 {
			count = 1
		}
		if rem := len(phonemes) - idx; count > rem {
			count = rem
		}
		lastStart = idx
		groups[i] = phonemes[idx : idx+count]
		idx += count
	}
	if idx < len(phonemes) {
		groups[len(sylls)-1] = phonemes[lastStart:]
	}
	return groups
}
