// Package main provides the entry point for the czwords CLI.
//
// czwords scans a source tree and reports the words of a target-language
// vocabulary (Czech by default) found in it, file by file. It is meant for
// codebases that are being translated into another language.
//
// Usage:
//
//	czwords --project-root src
//	czwords --project-root src --name-filter "plugins/**" --output words.txt
//	czwords compare
//
// See --help for all available options.
package main

// main is the entry point for czwords.
func main() {
	Execute()
}
