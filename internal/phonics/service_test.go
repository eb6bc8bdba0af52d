package phonics

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/phonics/internal/cmudict"
	"github.com/f3rmion/phonics/internal/ipa"
)

func testService(t *testing.T) *Service {
	t.Helper()
	dict := cmudict.New()
	dict.Add("window", []string{"W", "IH1", "N", "D", "OW0"})
	dict.Add("ship", []string{"SH", "IH1", "P"})
	dict.Add("cat", []string{"K", "AE1", "T"})
	dict.Add("hunter", []string{"HH", "AH1", "N", "T", "ER0"})
	return NewService(dict, NewRegistry(), zerolog.Nop())
}

func TestAnalyzeWord(t *testing.T) {
	svc := testService(t)

	result, err := svc.Analyze("window")
	require.NoError(t, err)

	assert.Equal(t, "window", result.Word)
	assert.Equal(t, []string{"w", "ˈɪ", "n", "d", "oʊ"}, ipa.Render(result.Phonemes))

	require.Len(t, result.Syllables, 2)
	assert.Equal(t, "win", result.Syllables[0].Text)
	assert.Equal(t, []string{"w", "ˈɪ", "n"}, ipa.Render(result.Syllables[0].Phonemes))
	assert.Equal(t, "dow", result.Syllables[1].Text)
	assert.Equal(t, []string{"d", "oʊ"}, ipa.Render(result.Syllables[1].Phonemes))

	require.Len(t, result.Reading, 5)
	assert.Equal(t, "ow", result.Reading[4].Text)
	assert.Equal(t, []string{"oʊ"}, ipa.Render(result.Reading[4].Phonemes))
}

func TestAnalyzeSpecialCase(t *testing.T) {
	svc := testService(t)

	// The registry entry wins over the rule pipeline; its phoneme groups
	// flatten into the full transcription.
	result, err := svc.Analyze("hunter")
	require.NoError(t, err)

	require.Len(t, result.Syllables, 2)
	assert.Equal(t, "hun", result.Syllables[0].Text)
	assert.Equal(t, []string{"h", "ʌ", "n"}, ipa.Render(result.Syllables[0].Phonemes))
	assert.Equal(t, "ter", result.Syllables[1].Text)
	assert.Equal(t, []string{"t", "ər"}, ipa.Render(result.Syllables[1].Phonemes))
	assert.Equal(t, []string{"h", "ʌ", "n", "t", "ər"}, ipa.Render(result.Phonemes))
	assert.NotEmpty(t, result.Reading)
}

func TestAnalyzeNormalizesInput(t *testing.T) {
	svc := testService(t)

	plain, err := svc.Analyze("window")
	require.NoError(t, err)
	shouted, err := svc.Analyze("  WINDOW  ")
	require.NoError(t, err)
	assert.Equal(t, plain, shouted)
}

func TestAnalyzeErrors(t *testing.T) {
	svc := testService(t)

	_, err := svc.Analyze("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Analyze("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Analyze("zzzqx")
	assert.ErrorIs(t, err, ErrWordNotFound)
	assert.Contains(t, err.Error(), "zzzqx")
}

func TestAnalyzeDeterministic(t *testing.T) {
	svc := testService(t)

	first, err := svc.Analyze("window")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := svc.Analyze("window")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeConservation(t *testing.T) {
	svc := testService(t)

	for _, word := range []string{"window", "ship", "cat", "hunter"} {
		result, err := svc.Analyze(word)
		require.NoError(t, err)

		var texts []string
		var flat []ipa.Phoneme
		for _, syl := range result.Syllables {
			texts = append(texts, syl.Text)
			flat = append(flat, syl.Phonemes...)
		}
		assert.Equal(t, word, strings.Join(texts, ""), "word %s", word)
		assert.Equal(t, result.Phonemes, flat, "word %s", word)
	}
}

func TestResponseShape(t *testing.T) {
	svc := testService(t)

	result, err := svc.Analyze("window")
	require.NoError(t, err)

	resp := result.Response()
	assert.Equal(t, "window", resp.Word)
	assert.Equal(t, []string{"w", "ˈɪ", "n", "d", "oʊ"}, resp.FullPhonetic)

	require.Len(t, resp.Syllables, 2)
	assert.Equal(t, "win", resp.Syllables[0].Text)
	assert.Equal(t, []string{"w", "ˈɪ", "n"}, resp.Syllables[0].Phonetic)

	require.Len(t, resp.NaturalReading, 5)
	assert.Equal(t, "ow", resp.NaturalReading[4].Text)
	assert.Equal(t, "oʊ", resp.NaturalReading[4].Phonetic)
}

func TestDictionarySize(t *testing.T) {
	svc := testService(t)
	assert.Equal(t, 4, svc.DictionarySize())
}
