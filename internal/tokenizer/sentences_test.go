package tokenizer

import (
	"reflect"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		opts     SentenceOptions
		expected []string
	}{
		{"empty string", "", SentenceOptions{}, nil},
		{"single sentence", "Hello world.", SentenceOptions{}, []string{"Hello world"}},
		{"two sentences", "Hello. World.", SentenceOptions{}, []string{"Hello", "World"}},
		{"mixed terminators", "One! Two? Three.", SentenceOptions{}, []string{"One", "Two", "Three"}},
		{"terminator run", "Wow!!! Ok?!", SentenceOptions{}, []string{"Wow", "Ok"}},
		{"no terminator", "still a sentence", SentenceOptions{}, []string{"still a sentence"}},
		{"trailing text after terminator", "Done. and more", SentenceOptions{}, []string{"Done", "and more"}},
		{"decimal point is not a boundary", "Pi is 3.14. Done.", SentenceOptions{}, []string{"Pi is 3.14", "Done"}},
		{"version numbers survive", "Use v1.2.3 now!", SentenceOptions{}, []string{"Use v1.2.3 now"}},
		{"decimal splitting enabled", "Pi is 3.14.", SentenceOptions{SplitDecimals: true}, []string{"Pi is 3", "14"}},
		{"terminators only", "?!.", SentenceOptions{}, nil},
		{"whitespace segments skipped", "One.   . Two.", SentenceOptions{}, []string{"One", "Two"}},
		{"newlines inside sentence", "First line\ncontinues. Next.", SentenceOptions{}, []string{"First line\ncontinues", "Next"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SentenceStrings(tt.text, tt.opts)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SentenceStrings(%q) = %v, want %v", tt.text, result, tt.expected)
			}
		})
	}
}

func TestSentenceOffsets(t *testing.T) {
	text := "Hi.  Bye now"
	want := []Token{
		{Text: "Hi", Start: 0, End: 2},
		{Text: "Bye now", Start: 5, End: 12},
	}

	var got []Token
	it := Sentences(text, SentenceOptions{})
	for {
		tok, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, tok)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sentences(%q) tokens = %+v, want %+v", text, got, want)
	}

	it.Reset()
	first, ok := it.Next()
	if !ok || first != want[0] {
		t.Errorf("Next() after Reset() = %+v, want %+v", first, want[0])
	}
}
