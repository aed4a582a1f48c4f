package readability

import "strings"

// Syllables estimates the syllable count of a single word with a vowel-group
// heuristic: count maximal runs of vowels (y included), subtract one for a
// trailing silent 'e' unless that would leave zero, and never report less
// than one syllable for a non-empty word.
func Syllables(word string) int {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return 0
	}

	count := 0
	inVowelRun := false
	for _, r := range word {
		if isVowel(r) {
			if !inVowelRun {
				count++
				inVowelRun = true
			}
		} else {
			inVowelRun = false
		}
	}

	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
