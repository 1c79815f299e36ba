// Package words tokenizes text and normalizes the tokens so they can be
// looked up in a vocabulary.
//
// A word is a maximal run of Unicode letters and combining marks; digits,
// underscores, punctuation and whitespace separate words. Normalization
// strips diacritics, transliterates the remaining non-ASCII letters to
// ASCII and lowercases the result, so "Příjemný" and "PRIJEMNY" both
// become "prijemny".
package words
