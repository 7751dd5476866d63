package model

import "strings"

// Lowercase only: "Apple" scores 2, not 3.
const vowels = "aeiouy"

// WordWithMostVowels returns the whitespace-separated word of title with the
// most vowel letters. A tie goes to the strictly longer word; equal-length
// ties keep the first word seen. An empty title yields "".
func WordWithMostVowels(title string) string {
	var best string
	bestCount := -1

	for _, word := range strings.Fields(title) {
		count := 0
		for _, r := range word {
			if strings.ContainsRune(vowels, r) {
				count++
			}
		}

		if count > bestCount || (count == bestCount && len(word) > len(best)) {
			best = word
			bestCount = count
		}
	}

	return best
}
