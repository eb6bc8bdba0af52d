package ipa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapStressMarks(t *testing.T) {
	m := NewMapper()

	got := m.Map([]string{"HH", "AH1", "N", "T", "ER0"})
	assert.Equal(t, []string{"h", "ˈʌ", "n", "t", "ər"}, Render(got))
}

func TestMapExactRenderings(t *testing.T) {
	m := NewMapper()

	tests := []struct {
		cmu  string
		want string
	}{
		{"AH0", "ə"},
		{"AH1", "ˈʌ"},
		{"AH2", "ˌʌ"},
		{"ER0", "ər"},
		{"ER1", "ˈɜr"},
		{"IY1", "ˈi"},
		{"K", "k"},
		{"ZH", "ʒ"},
	}
	for _, tt := range tests {
		got := m.Map([]string{tt.cmu})
		require.Len(t, got, 1)
		assert.Equal(t, tt.want, got[0].String(), "cmu %s", tt.cmu)
	}
}

func TestMapWordOverrides(t *testing.T) {
	m := NewMapper()

	got := m.MapWord("good", []string{"G", "UH1", "D"})
	assert.Equal(t, []string{"g", "ʊ", "d"}, Render(got))

	got = m.MapWord("knee", []string{"N", "IY1"})
	assert.Equal(t, []string{"n", "iː"}, Render(got))

	// The length mark stays attached to the vowel it lengthens.
	got = m.MapWord("star", []string{"S", "T", "AA1", "R"})
	assert.Equal(t, []string{"s", "t", "ɑː", "r"}, Render(got))
	assert.True(t, got[2].IsVowel())
	assert.False(t, got[3].IsVowel())
}

func TestMapWordWithoutOverride(t *testing.T) {
	m := NewMapper()

	got := m.MapWord("cat", []string{"K", "AE1", "T"})
	assert.Equal(t, []string{"k", "ˈæ", "t"}, Render(got))
}

func TestMapUnknownSymbolPassthrough(t *testing.T) {
	m := NewMapper()

	got := m.Map([]string{"FOO"})
	require.Len(t, got, 1)
	assert.Equal(t, "foo", got[0].Symbol)
	assert.Empty(t, got[0].Stress)
}

func TestParseRenderRoundtrip(t *testing.T) {
	for _, s := range []string{"ˈaɪ", "ˌɛ", "n", "ər", "tʃ"} {
		assert.Equal(t, s, Parse(s).String())
	}

	p := Parse("ˈaɪ")
	assert.Equal(t, "aɪ", p.Symbol)
	assert.Equal(t, StressPrimary, p.Stress)
	assert.True(t, p.IsVowel())
}

func TestIsVowel(t *testing.T) {
	assert.True(t, Phoneme{Symbol: "ə"}.IsVowel())
	assert.True(t, Phoneme{Symbol: "ər"}.IsVowel())
	assert.True(t, Phoneme{Symbol: "iː"}.IsVowel())
	assert.False(t, Phoneme{Symbol: "t"}.IsVowel())
	assert.False(t, Phoneme{Symbol: "ʃ"}.IsVowel())
}
