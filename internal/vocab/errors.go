package vocab

import "errors"

// ErrEmptyWordList is returned when a word list yields no words at all.
var ErrEmptyWordList = errors.New("word list contains no words")
