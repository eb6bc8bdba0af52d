// Package phonics decomposes English words into pronunciation-consistent
// syllables and phonics-level reading units.
package phonics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/f3rmion/phonics/internal/cmudict"
	"github.com/f3rmion/phonics/internal/ipa"
)

// Analysis errors. Each failure mode of a single analysis maps to exactly
// one of these; the transport layer dispatches on them with errors.Is.
var (
	ErrInvalidInput = errors.New("no word provided")
	ErrWordNotFound = errors.New("word not found in dictionary")
	ErrSegmentation = errors.New("syllable split failed")
)

// Syllable is a contiguous piece of the word with its phonemes.
type Syllable struct {
	Text     string
	Phonemes []ipa.Phoneme
}

// Result is one complete word analysis.
type Result struct {
	Word      string
	Phonemes  []ipa.Phoneme
	Syllables []Syllable
	Reading   []ReadingUnit
}

// Service runs the analysis pipeline. All of its state is read-only after
// construction, so a single Service is safe for concurrent use.
type Service struct {
	dict    *cmudict.Dictionary
	mapper  *ipa.Mapper
	special *Registry
	log     zerolog.Logger
}

// NewService creates a Service over a loaded dictionary.
func NewService(dict *cmudict.Dictionary, special *Registry, log zerolog.Logger) *Service {
	if special == nil {
		special = NewRegistry()
	}
	return &Service{
		dict:    dict,
		mapper:  ipa.NewMapper(),
		special: special,
		log:     log,
	}
}

// DictionarySize returns the number of words the service can analyze.
func (s *Service) DictionarySize() int {
	return s.dict.Size()
}

// Analyze decomposes a single word. The input is trimmed and lowercased
// first; analysis is deterministic, so equal inputs yield equal results.
func (s *Service) Analyze(raw string) (*Result, error) {
	word := strings.ToLower(strings.TrimSpace(raw))
	if word == "" {
		return nil, ErrInvalidInput
	}

	if sc, ok := s.special.Lookup(word); ok {
		s.log.Debug().Str("word", word).Msg("special case hit")
		return s.fromSpecialCase(word, sc), nil
	}

	cmu, ok := s.dict.Lookup(word)
	if !ok {
		return nil, fmt.Errorf("%q: %w", word, ErrWordNotFound)
	}
	phonemes := s.mapper.MapWord(word, cmu)

	sylls := Segment(word)
	if strings.Join(sylls, "") != word {
		// Unreachable given the fallback's totality, but the contract
		// still defines the terminal error.
		return nil, fmt.Errorf("%q: %w", word, ErrSegmentation)
	}
	groups := Align(sylls, phonemes)

	result := &Result{
		Word:     word,
		Phonemes: phonemes,
		Reading:  SplitReading(word, phonemes),
	}
	for i, syl := range sylls {
		result.Syllables = append(result.Syllables, Syllable{Text: syl, Phonemes: groups[i]})
	}

	s.log.Debug().Str("word", word).Strs("syllables", sylls).Msg("analyzed")
	return result, nil
}

// fromSpecialCase builds a result verbatim from a registry entry. The full
// phoneme sequence is the concatenation of the per-syllable groups, and the
// reading split still runs over it.
func (s *Service) fromSpecialCase(word string, sc SpecialCase) *Result {
	result := &Result{Word: word}
	for i, syl := range sc.Syllables {
		group := ipa.ParseGroup(sc.Phonemes[i])
		result.Syllables = append(result.Syllables, Syllable{Text: syl, Phonemes: group})
		result.Phonemes = append(result.Phonemes, group...)
	}
	result.Reading = SplitReading(word, result.Phonemes)
	return result
}

// SyllableResponse is the wire form of one syllable.
type SyllableResponse struct {
	Text     string   `json:"text"`
	Phonetic []string `json:"phonetic"`
}

// ReadingResponse is the wire form of one reading unit; its phonemes are
// rendered as a single string.
type ReadingResponse struct {
	Text     string `json:"text"`
	Phonetic string `json:"phonetic"`
}

// Response is the wire form of a Result.
type Response struct {
	Word           string             `json:"word"`
	FullPhonetic   []string           `json:"full_phonetic"`
	Syllables      []SyllableResponse `json:"syllables"`
	NaturalReading []ReadingResponse  `json:"natural_reading,omitempty"`
}

// Response converts a Result to its wire form.
func (r *Result) Response() Response {
	resp := Response{
		Word:         r.Word,
		FullPhonetic: ipa.Render(r.Phonemes),
	}
	for _, syl := range r.Syllables {
		resp.Syllables = append(resp.Syllables, SyllableResponse{
			Text:     syl.Text,
			Phonetic: ipa.Render(syl.Phonemes),
		})
	}
	for _, unit := range r.Reading {
		resp.NaturalReading = append(resp.NaturalReading, ReadingResponse{
			Text:     unit.Text,
			Phonetic: strings.Join(ipa.Render(unit.Phonemes), ""),
		})
	}
	return resp
}
