// Package source reads the text of scanned files.
//
// Files are decoded with a fixed encoding (UTF-8 unless configured
// otherwise). Byte sequences that cannot be decoded become U+FFFD instead
// of failing the read. Optionally, HTML and XML files are reduced to their
// text and comments so that tag and attribute names are not tokenized.
package source
