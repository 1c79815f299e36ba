// Package vocab loads the word lists used to recognize target-language
// words and exposes them as immutable sets of normalized words.
//
// Two lists are involved: the target language (Czech by default) and the
// language the codebase is written in (English by default). Words present
// in both lists are ambiguous and are dropped from the known set unless the
// caller asks to keep them. Default lists are embedded in the binary.
package vocab
