package main

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"github.com/samber/lo"
)

// ErrEmptyLexicon is returned when no word of the required length survives
// filtering.
var ErrEmptyLexicon = errors.New("no valid words in lexicon")

// loadLexicon reads the word file and keeps lowercase 5-letter alphabetic
// entries.
func loadLexicon(path string) ([]WordEntry, error) {
	logInfo("Loading words from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wl WordList
	if err := json.Unmarshal(data, &wl); err != nil {
		return nil, err
	}

	words := lo.FilterMap(wl.Words, func(entry WordEntry, _ int) (WordEntry, bool) {
		entry.Word = strings.ToLower(strings.TrimSpace(entry.Word))
		if len(entry.Word) != WordLength || !isAlphabetic(entry.Word) {
			logWarn("Skipping word %q: not %d letters", entry.Word, WordLength)
			return entry, false
		}
		return entry, true
	})

	if len(words) == 0 {
		return nil, ErrEmptyLexicon
	}
	logInfo("Successfully loaded %d words", len(words))
	return words, nil
}

// buildHintMap creates a map from word to hint text for fast lookup.
func buildHintMap(lexicon []WordEntry) map[string]string {
	return lo.Associate(lexicon, func(entry WordEntry) (string, string) {
		return entry.Word, entry.Hint
	})
}
