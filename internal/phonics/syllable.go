package phonics

import "strings"

// Segment splits a word into pronunciation-consistent syllable substrings.
// The stages run in a fixed order; if the staged result fails to reconstruct
// the word, the pure vowel-interval fallback is used instead, so the
// concatenation of the returned syllables always equals the word.
func Segment(word string) []string {
	vp := vowelPositions(word)
	if len(vp) == 0 {
		return []string{word}
	}

	terminal, terminalStart := detectTerminal(word)
	prefix, prefixEnd := detectPrefix(word, terminal)

	sylls := splitMiddle(word, prefix, prefixEnd, terminal, terminalStart, vp)
	sylls = repairVowelless(sylls)
	sylls = consolidateShort(sylls)

	if strings.Join(sylls, "") != word {
		sylls = vowelIntervalSplit(word, vp)
	}
	return sylls
}

// detectTerminal finds the longest syllable-final pattern that does not
// consume the whole word. Returns the pattern and its start index, or
// ("", len(word)).
func detectTerminal(word string) (string, int) {
	for _, pat := range terminalPatterns {
		if strings.HasSuffix(word, pat) && len(pat) < len(word) {
			return pat, len(word) - len(pat)
		}
	}
	return "", len(word)
}

// detectPrefix finds the first ranked prefix that leaves at least half the
// word and does not collide with the terminal syllable.
func detectPrefix(word, terminal string) (string, int) {
	for _, p := range commonPrefixes {
		if !strings.HasPrefix(word, p) || len(p) > len(word)/2 {
			continue
		}
		if terminal != "" && len(word)-len(p) <= len(terminal) {
			continue
		}
		return p, len(p)
	}
	return "", 0
}

// splitMiddle subdivides the residue between prefix and terminal syllable
// using inter-vowel consonant counts.
func splitMiddle(word, prefix string, prefixEnd int, terminal string, terminalStart int, vp []int) []string {
	middle := word[prefixEnd:terminalStart]

	assemble := func(middleSylls []string) []string {
		var out []string
		if prefix != "" {
			out = append(out, prefix)
		}
		out = append(out, middleSylls...)
		if terminal != "" {
			out = append(out, terminal)
		}
		if len(out) == 0 {
			out = []string{word}
		}
		return out
	}

	// Short residues stay whole.
	if len(middle) <= 3 {
		if middle == "" {
			return assemble(nil)
		}
		return assemble([]string{middle})
	}

	var mvp []int
	for _, p := range vp {
		if p >= prefixEnd && p < terminalStart {
			mvp = append(mvp, p-prefixEnd)
		}
	}
	if len(mvp) <= 1 {
		return assemble([]string{middle})
	}

	var sylls []string
	prevEnd := 0
	for i := 0; i < len(mvp)-1; i++ {
		curr, next := mvp[i], mvp[i+1]

		// Advance past a run of adjacent vowels.
		consStart := curr
		for consStart+1 < len(middle) && consStart+1 < next && isVowelByte(middle[consStart+1]) {
			consStart++
		}
		consCount := next - consStart - 1

		var boundary int
		switch {
		case consCount == 0:
			boundary = curr + 1
		case consCount == 1:
			// V-CV: the consonant closes the first syllable unless the
			// following segment opens with an indivisible unit.
			following := middle[consStart+1 : next+1]
			if len(following) > 1 && startsWithUnit(following) {
				boundary = consStart + 1
			} else {
				boundary = consStart + 2
			}
		default:
			run := middle[consStart+1 : next]
			if idx := findUnit(run); idx >= 0 {
				boundary = consStart + 1 + idx
			} else if idx := findBlend(run); idx >= 0 {
				boundary = consStart + 1 + idx
			} else {
				// Bisect; the odd consonant stays with the first syllable.
				boundary = consStart + 1 + (consCount+1)/2
			}
		}

		if boundary > prevEnd && boundary < len(middle) {
			sylls = append(sylls, middle[prevEnd:boundary])
			prevEnd = boundary
		}
	}
	if prevEnd < len(middle) {
		sylls = append(sylls, middle[prevEnd:])
	}

	return assemble(sylls)
}

// repairVowelless merges interior syllables that carry no vowel into the
// shorter neighbor; ties favor the preceding syllable.
func repairVowelless(sylls []string) []string {
	if len(sylls) < 3 {
		return sylls
	}
	out := make([]string, 0, len(sylls))
	for i, syl := range sylls {
		if i > 0 && i < len(sylls)-1 && !hasVowel(syl) {
			if len(out[len(out)-1]) <= len(sylls[i+1]) {
				out[len(out)-1] += syl
			} else {
				sylls[i+1] = syl + sylls[i+1]
			}
			continue
		}
		out = append(out, syl)
	}
	return out
}

// consolidateShort merges syllables of length <=2 that do not start with a
// vowel into a neighbor when the combination reads as a known affix;
// stranded single consonants always join the following syllable.
func consolidateShort(sylls []string) []string {
	i := 0
	for i < len(sylls)-1 {
		curr := sylls[i]
		if len(curr) <= 2 && !isVowelByte(curr[0]) {
			combined := curr + sylls[i+1]
			if startsWithPrefix(combined) || endsWithSuffix(combined) {
				sylls[i] = combined
				sylls = append(sylls[:i+1], sylls[i+2:]...)
				i++
				continue
			}
			if len(curr) == 1 {
				sylls[i+1] = curr + sylls[i+1]
				sylls = append(sylls[:i], sylls[i+1:]...)
				continue
			}
		}
		i++
	}
	return sylls
}

// vowelIntervalSplit is the total fallback: one syllable per vowel, with the
// consonant run between two vowels bisected (odd consonant left) and leading
// or trailing consonants absorbed by the first and last syllables.
func vowelIntervalSplit(word string, vp []int) []string {
	var out []string
	start := 0
	for i := 1; i < len(vp); i++ {
		prev := vp[i-1]
		cons := vp[i] - prev - 1
		boundary := prev + 1 + (cons+1)/2
		out = append(out, word[start:boundary])
		start = boundary
	}
	return append(out, word[start:])
}
