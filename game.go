package main

import "strings"

// checkGuess compares a guess to the secret word and returns per-letter
// results. Two passes: exact matches first, each consuming its secret
// letter, so a letter repeated in the guess is never credited more often
// than it occurs in the secret.
func checkGuess(guess, secret string) []GuessResult {
	result := make([]GuessResult, WordLength)
	secretCopy := []rune(secret)

	for i := 0; i < WordLength; i++ {
		if guess[i] == secret[i] {
			result[i] = GuessResult{Letter: string(guess[i]), Status: GuessStatusCorrect}
			secretCopy[i] = ' '
		}
	}

	for i := 0; i < WordLength; i++ {
		if result[i].Status == "" {
			result[i].Letter = string(guess[i])

			found := false
			for j := 0; j < WordLength; j++ {
				if secretCopy[j] == rune(guess[i]) {
					result[i].Status = GuessStatusPresent
					secretCopy[j] = ' '
					found = true
					break
				}
			}

			if !found {
				result[i].Status = GuessStatusAbsent
			}
		}
	}

	return result
}

// normalizeGuess lowercases and trims player input before validation.
func normalizeGuess(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// isAlphabetic reports whether the word is non-empty ASCII letters only.
// Input is expected to be lowercased already.
func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
