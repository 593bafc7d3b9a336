package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Test constants
const (
	TestWordApple = "apple"
	TestWordAlley = "alley"
	TestWordCrane = "crane"
	TestWordNacre = "nacre"
	TestWordZzzzz = "zzzzz"
	TestWordZebra = "zebra"

	StatusCorrect = "correct"
	StatusPresent = "present"
	StatusAbsent  = "absent"

	CommentAllCorrect = "All correct."
	CommentMixed      = "Mix of correct, present, absent."
	CommentAllAbsent  = "All absent."
	CommentOneExact   = "Repeated guess letter credited once."
	CommentAnagram    = "Anagram with one exact match."
)

// TestCheckGuess checks the guess evaluation algorithm
func TestCheckGuess(t *testing.T) {
	tests := []struct {
		secret  string
		guess   string
		want    []GuessResult
		comment string
	}{
		{
			secret: TestWordApple,
			guess:  TestWordApple,
			want: []GuessResult{
				{"a", StatusCorrect},
				{"p", StatusCorrect},
				{"p", StatusCorrect},
				{"l", StatusCorrect},
				{"e", StatusCorrect},
			},
			comment: CommentAllCorrect,
		},
		{
			secret: TestWordApple,
			guess:  TestWordAlley,
			want: []GuessResult{
				{"a", StatusCorrect},
				{"l", StatusPresent},
				{"l", StatusAbsent},
				{"e", StatusPresent},
				{"y", StatusAbsent},
			},
			comment: CommentMixed,
		},
		{
			secret: TestWordApple,
			guess:  TestWordZzzzz,
			want: []GuessResult{
				{"z", StatusAbsent},
				{"z", StatusAbsent},
				{"z", StatusAbsent},
				{"z", StatusAbsent},
				{"z", StatusAbsent},
			},
			comment: CommentAllAbsent,
		},
		{
			secret: TestWordApple,
			guess:  "eeeee",
			want: []GuessResult{
				{"e", StatusAbsent},
				{"e", StatusAbsent},
				{"e", StatusAbsent},
				{"e", StatusAbsent},
				{"e", StatusCorrect},
			},
			comment: CommentOneExact,
		},
		{
			secret: TestWordCrane,
			guess:  TestWordNacre,
			want: []GuessResult{
				{"n", StatusPresent},
				{"a", StatusPresent},
				{"c", StatusPresent},
				{"r", StatusPresent},
				{"e", StatusCorrect},
			},
			comment: CommentAnagram,
		},
	}

	for _, tt := range tests {
		got := checkGuess(tt.guess, tt.secret)
		for i := range got {
			if got[i].Letter != tt.want[i].Letter || got[i].Status != tt.want[i].Status {
				t.Errorf("%s: secret %s, guess %s, pos %d: got %+v, want %+v",
					tt.comment, tt.secret, tt.guess, i, got[i], tt.want[i])
			}
		}
	}
}

// TestCheckGuess_MarksNeverExceedOccurrences checks the duplicate-letter
// invariant: correct+present marks for a letter never exceed its count in
// the secret.
func TestCheckGuess_MarksNeverExceedOccurrences(t *testing.T) {
	pairs := []struct{ secret, guess string }{
		{TestWordApple, "paper"},
		{TestWordApple, "pppee"},
		{"geese", "eeeee"},
		{"llama", TestWordAlley},
	}
	for _, pair := range pairs {
		occurrences := map[string]int{}
		for _, ch := range pair.secret {
			occurrences[string(ch)]++
		}
		credited := map[string]int{}
		for _, r := range checkGuess(pair.guess, pair.secret) {
			if r.Status != StatusAbsent {
				credited[r.Letter]++
			}
		}
		for letter, n := range credited {
			if n > occurrences[letter] {
				t.Errorf("secret %s, guess %s: letter %q credited %d times, occurs %d times",
					pair.secret, pair.guess, letter, n, occurrences[letter])
			}
		}
	}
}

// TestNormalizeGuess checks guess normalization
func TestNormalizeGuess(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"APPLE", TestWordApple},
		{"  zebra ", TestWordZebra},
		{"CrAnE", TestWordCrane},
		{"", ""},
	}
	for _, tt := range tests {
		got := normalizeGuess(tt.input)
		if got != tt.want {
			t.Errorf("normalizeGuess(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// TestIsAlphabetic checks input character validation
func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{TestWordApple, true},
		{"ab1de", false},
		{"ab de", false},
		{"ab-de", false},
		{"", false},
	}
	for _, tt := range tests {
		got := isAlphabetic(tt.word)
		if got != tt.want {
			t.Errorf("isAlphabetic(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func writeWordFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write word file: %v", err)
	}
	return path
}

// TestLoadLexicon checks word loading and filtering
func TestLoadLexicon(t *testing.T) {
	path := writeWordFile(t, `{"words": [
		{"word": "apple", "hint": "A fruit"},
		{"word": " ZEBRA ", "hint": "Striped"},
		{"word": "toolong", "hint": "Skipped"},
		{"word": "ab1de", "hint": "Skipped"}
	]}`)

	lexicon, err := loadLexicon(path)
	if err != nil {
		t.Fatalf("loadLexicon failed: %v", err)
	}
	if len(lexicon) != 2 {
		t.Fatalf("loadLexicon returned %d words, want 2", len(lexicon))
	}
	if lexicon[0].Word != TestWordApple || lexicon[1].Word != TestWordZebra {
		t.Errorf("loadLexicon kept %q and %q, want %q and %q",
			lexicon[0].Word, lexicon[1].Word, TestWordApple, TestWordZebra)
	}
}

// TestLoadLexicon_Empty checks the empty lexicon error
func TestLoadLexicon_Empty(t *testing.T) {
	path := writeWordFile(t, `{"words": [{"word": "toolong", "hint": ""}]}`)
	if _, err := loadLexicon(path); err != ErrEmptyLexicon {
		t.Errorf("loadLexicon = %v, want ErrEmptyLexicon", err)
	}
}

// TestLoadLexicon_MissingFile checks missing file handling
func TestLoadLexicon_MissingFile(t *testing.T) {
	if _, err := loadLexicon(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("loadLexicon with missing file should fail")
	}
}

// TestLoadLexicon_CorruptFile checks malformed JSON handling
func TestLoadLexicon_CorruptFile(t *testing.T) {
	path := writeWordFile(t, `{not json`)
	if _, err := loadLexicon(path); err == nil {
		t.Error("loadLexicon with corrupt file should fail")
	}
}

// TestBuildHintMap checks hint lookup construction
func TestBuildHintMap(t *testing.T) {
	hints := buildHintMap([]WordEntry{
		{Word: TestWordApple, Hint: "A fruit"},
		{Word: TestWordZebra, Hint: "Striped"},
	})
	if hints[TestWordApple] != "A fruit" || hints[TestWordZebra] != "Striped" {
		t.Errorf("buildHintMap returned %v", hints)
	}
	if _, ok := hints[TestWordCrane]; ok {
		t.Error("buildHintMap contains entry for word not in lexicon")
	}
}
