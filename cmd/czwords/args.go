package main

import (
	"strings"

	"github.com/spf13/cobra"
)

// multiValueFlags are the flags that accept several space-separated values
// after a single occurrence, e.g. "--extensions .cpp .h".
var multiValueFlags = map[string]bool{
	"--extensions":  true,
	"--name-filter": true,
	"--exclude":     true,
}

// expandMultiValueFlags rewrites "--flag a b c" into "--flag a --flag b --flag c"
// for the flags in multiValueFlags, so that pflag sees one value per
// occurrence. Values end at the next argument starting with "-" or at a
// name listed in commands. Arguments after "--" are left untouched.
func expandMultiValueFlags(args []string, commands map[string]bool) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i:]...)
		}

		out = append(out, arg)
		if !multiValueFlags[arg] {
			continue
		}

		// The first value belongs to the flag itself.
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			out = append(out, args[i])
		}
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") && !commands[args[i+1]] {
			i++
			out = append(out, arg, args[i])
		}
	}

	return out
}

// commandNames returns the names and aliases of the subcommands of cmd,
// including the help command cobra adds at execution time.
func commandNames(cmd *cobra.Command) map[string]bool {
	names := map[string]bool{"help": true}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
		for _, alias := range sub.Aliases {
			names[alias] = true
		}
	}
	return names
}

// splitList splits comma-separated values, keeping commas inside glob
// braces ("{a,b}") intact. Empty items are dropped.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		depth := 0
		start := 0
		for i, r := range value {
			switch r {
			case '{':
				depth++
			case '}':
				if depth > 0 {
					depth--
				}
			case ',':
				if depth == 0 {
					out = appendNonEmpty(out, value[start:i])
					start = i + 1
				}
			}
		}
		out = appendNonEmpty(out, value[start:])
	}
	return out
}

func appendNonEmpty(list []string, item string) []string {
	if item = strings.TrimSpace(item); item != "" {
		return append(list, item)
	}
	return list
}
