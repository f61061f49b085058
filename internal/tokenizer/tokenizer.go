package tokenizer

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r splits tokens: anything that is not a letter or digit.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}

// Tokenize converts a string into a slice of lowercase tokens.
// It splits on every run of characters that are neither letters nor digits,
// so "Mercator's cylinder-based projection" yields
// ["mercator", "s", "cylinder", "based", "projection"].
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	return append(make([]string, 0, len(fields)), fields...) // empty slice, not nil
}

// TermFrequencies tokenizes text and counts each token.
// The second return value is the total token count, used as the field length.
func TermFrequencies(text string) (map[string]int, int) {
	tokens := Tokenize(text)
	freqs := make(map[string]int, len(tokens))
	for _, token := range tokens {
		freqs[token]++
	}
	return freqs, len(tokens)
}

// UniqueTokens tokenizes text and drops repeats, keeping first-seen order.
func UniqueTokens(text string) []string {
	tokens := Tokenize(text)
	seen := make(map[string]struct{}, len(tokens))
	unique := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		unique = append(unique, token)
	}
	return unique
}
