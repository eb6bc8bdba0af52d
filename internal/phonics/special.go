package phonics

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpecialCase is a hand-curated decomposition for a word the rule engine
// cannot reliably handle. Syllables and Phonemes are parallel: one phoneme
// group per syllable, phonemes in rendered IPA form.
type SpecialCase struct {
	Syllables []string   `yaml:"syllables"`
	Phonemes  [][]string `yaml:"phonemes"`
}

// Registry holds the special-case table. It is built once and read-only
// afterwards.
type Registry struct {
	entries map[string]SpecialCase
}

// NewRegistry creates a registry seeded with the built-in table.
func NewRegistry() *Registry {
	entries := make(map[string]SpecialCase, len(builtinCases))
	for word, sc := range builtinCases {
		entries[word] = sc
	}
	return &Registry{entries: entries}
}

// Lookup returns the override for a normalized word, if any.
func (r *Registry) Lookup(word string) (SpecialCase, bool) {
	sc, ok := r.entries[word]
	return sc, ok
}

// Size returns the number of registered words.
func (r *Registry) Size() int {
	return len(r.entries)
}

// LoadFile merges user overrides from a YAML file. File entries win over
// built-ins. Malformed entries make the whole load fail.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading special cases file: %w", err)
	}

	var cases map[string]SpecialCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return fmt.Errorf("parsing special cases file: %w", err)
	}

	for word, sc := range cases {
		if err := validateCase(word, sc); err != nil {
			return err
		}
		r.entries[word] = sc
	}
	return nil
}

func validateCase(word string, sc SpecialCase) error {
	if len(sc.Syllables) == 0 || len(sc.Syllables) != len(sc.Phonemes) {
		return fmt.Errorf("special case %q: need one phoneme group per syllable", word)
	}
	joined := ""
	for _, syl := range sc.Syllables {
		joined += syl
	}
	if joined != word {
		return fmt.Errorf("special case %q: syllables %v do not reconstruct the word", word, sc.Syllables)
	}
	return nil
}

// builtinCases are the words whose pronunciation or orthography defeats the
// general rules.
var builtinCases = map[string]SpecialCase{
	"good": {
		Syllables: []string{"good"},
		Phonemes:  [][]string{{"g", "ʊ", "d"}},
	},
	"knee": {
		Syllables: []string{"knee"},
		Phonemes:  [][]string{{"n", "iː"}},
	},
	"star": {
		Syllables: []string{"star"},
		Phonemes:  [][]string{{"s", "t", "ɑːr"}},
	},
	"hunter": {
		Syllables: []string{"hun", "ter"},
		Phonemes:  [][]string{{"h", "ʌ", "n"}, {"t", "ər"}},
	},
	"actually": {
		Syllables: []string{"ac", "tu", "ally"},
		Phonemes:  [][]string{{"æ", "k"}, {"tʃ", "u"}, {"ə", "l", "i"}},
	},
	"paper": {
		Syllables: []string{"pa", "per"},
		Phonemes:  [][]string{{"p", "eɪ"}, {"p", "ər"}},
	},
	"water": {
		Syllables: []string{"wa", "ter"},
		Phonemes:  [][]string{{"w", "ɔː"}, {"t", "ər"}},
	},
	"agree": {
		Syllables: []string{"a", "gree"},
		Phonemes:  [][]string{{"ə"}, {"g", "r", "ˈi"}},
	},
	"registration": {
		Syllables: []string{"re", "gis", "tra", "tion"},
		Phonemes:  [][]string{{"r", "ˌɛ"}, {"dʒ", "ɪ", "s"}, {"t", "r", "ˈeɪ"}, {"ʃ", "ə", "n"}},
	},
	"nationality": {
		Syllables: []string{"na", "tion", "al", "i", "ty"},
		Phonemes:  [][]string{{"n", "ˌæ"}, {"ʃ", "ə", "n"}, {"ˈæ", "l"}, {"ɪ"}, {"t", "i"}},
	},
	"designer": {
		Syllables: []string{"de", "sign", "er"},
		Phonemes:  [][]string{{"d", "i"}, {"z", "ˈaɪ", "n"}, {"ər"}},
	},
	"heritage": {
		Syllables: []string{"he", "ri", "tage"},
		Phonemes:  [][]string{{"h", "ˈɛ"}, {"r", "ɪ"}, {"t", "ɪ", "dʒ"}},
	},
	"lecture": {
		Syllables: []string{"lec", "ture"},
		Phonemes:  [][]string{{"l", "ˈɛ", "k"}, {"tʃ", "ər"}},
	},
	"female": {
		Syllables: []string{"fe", "male"},
		Phonemes:  [][]string{{"f", "ˈi"}, {"m", "ˌeɪ", "l"}},
	},
	"congratulations": {
		Syllables: []string{"con", "gra", "tu", "la", "tions"},
		Phonemes:  [][]string{{"k", "ə", "n"}, {"g", "r", "ˌæ"}, {"tʃ", "u"}, {"l", "ˈeɪ"}, {"ʃ", "ə", "n", "z"}},
	},
}
