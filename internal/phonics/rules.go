package phonics

import "strings"

// Letter classes used by the analyzer. The y counts as a vowel for
// boundary scanning but not for the protected single-letter prefixes.
const (
	vowelLetters     = "aeiouy"
	pureVowelLetters = "aeiou"
)

func isVowelByte(b byte) bool {
	return strings.IndexByte(vowelLetters, b) >= 0
}

func hasVowel(s string) bool {
	return strings.ContainsAny(s, vowelLetters)
}

// vowelPositions returns the indices of vowel letters in the word.
func vowelPositions(word string) []int {
	var out []int
	for i := 0; i < len(word); i++ {
		if isVowelByte(word[i]) {
			out = append(out, i)
		}
	}
	return out
}

// consonantBlends are clusters that read as a unit and resist splitting.
// Ordered longest first so that searches prefer the longer cluster.
var consonantBlends = []string{
	"scr", "spr", "str", "thr", "shr", "spl", "squ", "tch",
	"bl", "br", "cl", "cr", "dr", "fl", "fr", "gl", "gr", "pl", "pr",
	"sc", "sk", "sl", "sm", "sn", "sp", "st", "sw", "tr", "tw",
	"ch", "sh", "th", "ph", "wh", "gn", "kn", "wr", "qu", "ck", "dg", "gh", "ng",
}

// indivisibleUnits are spelling units that carry one pronunciation and must
// stay inside a single syllable. Ordered longest first.
var indivisibleUnits = []string{
	"cious", "tious", "gious",
	"tion", "sion", "ture", "cial", "tial",
	"ple", "ble", "dle", "gle", "kle", "fle", "zle", "que", "gue",
	"le", "ce", "ge", "se", "ze",
}

// commonPrefixes is the ranked prefix table; the first match wins, so longer
// prefixes come before their shorter variants.
var commonPrefixes = []string{
	"anti", "auto", "circum", "contra", "counter", "dis", "down", "extra",
	"hyper", "inter", "intra", "micro", "mid", "mis", "multi", "non", "over",
	"post", "pre", "pro", "pseudo", "retro", "semi", "sub", "super", "supra",
	"tele", "trans", "tri", "ultra", "under", "un",
	"co", "de", "di", "em", "en", "ex", "im", "in", "ir", "ob", "of", "on", "op", "re",
	"a", "e", "i", "o", "u",
}

// commonSuffixes is the ranked suffix table used by the consolidation stage.
var commonSuffixes = []string{
	"ation", "ition", "cious", "tious", "sious", "aceous", "alous", "ulous",
	"ative", "itive", "fully", "ously", "lessly", "iness", "ement", "wards",
	"ature", "tude", "logy", "graphy", "tomy", "metry", "scopy",
	"tion", "sion", "ment", "ness", "hood", "ship", "ible", "able",
	"ant", "ent", "ary", "ery", "ory", "ism", "ist", "ity", "ize", "ise",
	"ify", "ate", "ive", "ure", "ous", "ious",
	"al", "ic", "ly", "er", "or", "ee", "en", "ed", "ty", "fy", "ry", "cy", "is",
	"y", "s",
}

// terminalPatterns are endings that form a trailing syllable of their own.
// Ordered longest first, ties alphabetical, so detection is deterministic.
var terminalPatterns = []string{
	"cian", "sion", "sure", "tion", "ture",
	"ble", "cle", "dle", "fle", "gle", "kle", "ple", "zle",
	"le",
}

// findUnit returns the index of the first indivisible unit found inside s,
// preferring longer units, or -1.
func findUnit(s string) int {
	for _, u := range indivisibleUnits {
		if idx := strings.Index(s, u); idx >= 0 {
			return idx
		}
	}
	return -1
}

// findBlend returns the index of the first consonant blend found inside s,
// preferring longer blends, or -1.
func findBlend(s string) int {
	for _, b := range consonantBlends {
		if idx := strings.Index(s, b); idx >= 0 {
			return idx
		}
	}
	return -1
}

// startsWithUnit reports whether s begins with an indivisible unit.
func startsWithUnit(s string) bool {
	for _, u := range indivisibleUnits {
		if strings.HasPrefix(s, u) {
			return true
		}
	}
	return false
}

func startsWithPrefix(s string) bool {
	for _, p := range commonPrefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func endsWithSuffix(s string) bool {
	for _, suf := range commonSuffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}
