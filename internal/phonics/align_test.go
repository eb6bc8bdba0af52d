package phonics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/phonics/internal/ipa"
)

func TestAlignSingleSyllable(t *testing.T) {
	phonemes := ipa.ParseGroup([]string{"k", "ˈæ", "t"})

	groups := Align([]string{"cat"}, phonemes)
	require.Len(t, groups, 1)
	assert.Equal(t, phonemes, groups[0])
}

func TestAlignByNuclei(t *testing.T) {
	// One vowel letter and one vowel phoneme per syllable: the nucleus walk
	// applies, and the two consonants between nuclei split one left one right.
	phonemes := ipa.ParseGroup([]string{"h", "ˈʌ", "n", "t", "ər"})

	groups := Align([]string{"hun", "ter"}, phonemes)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"h", "ˈʌ", "n"}, ipa.Render(groups[0]))
	assert.Equal(t, []string{"t", "ər"}, ipa.Render(groups[1]))
}

func TestAlignByNucleiSingleConsonant(t *testing.T) {
	// A lone consonant between nuclei goes left.
	phonemes := ipa.ParseGroup([]string{"ˈeɪ", "b", "ə", "l"})

	groups := Align([]string{"a", "ble"}, phonemes)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"ˈeɪ", "b"}, ipa.Render(groups[0]))
	assert.Equal(t, []string{"ə", "l"}, ipa.Render(groups[1]))
}

func TestAlignProportionalFallback(t *testing.T) {
	// "boat" carries two vowel letters for one nucleus, so the nucleus walk
	// refuses and allocation goes by syllable length.
	phonemes := ipa.ParseGroup([]string{"b", "ˈoʊ", "t", "ɪ", "ŋ"})

	groups := Align([]string{"boat", "ing"}, phonemes)
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"b", "ˈoʊ", "t"}, ipa.Render(groups[0]))
	assert.Equal(t, []string{"ɪ", "ŋ"}, ipa.Render(groups[1]))
}

func TestAlignConservesPhonemes(t *testing.T) {
	tests := []struct {
		sylls    []string
		phonemes []string
	}{
		{[]string{"hun", "ter"}, []string{"h", "ˈʌ", "n", "t", "ər"}},
		{[]string{"boat", "ing"}, []string{"b", "ˈoʊ", "t", "ɪ", "ŋ"}},
		{[]string{"sep", "tem", "ber"}, []string{"s", "ɛ", "p", "t", "ˈɛ", "m", "b", "ər"}},
		{[]string{"strengths"}, []string{"s", "t", "r", "ˈɛ", "ŋ", "θ", "s"}},
	}
	for _, tt := range tests {
		phonemes := ipa.ParseGroup(tt.phonemes)
		groups := Align(tt.sylls, phonemes)
		require.Len(t, groups, len(tt.sylls))

		var flat []ipa.Phoneme
		for _, g := range groups {
			flat = append(flat, g...)
		}
		assert.Equal(t, phonemes, flat, "syllables %v", tt.sylls)
	}
}
