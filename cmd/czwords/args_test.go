package main

import (
	"slices"
	"testing"
)

func TestExpandMultiValueFlags(t *testing.T) {
	t.Parallel()

	commands := commandNames(NewRootCmd())

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "single value",
			args: []string{"--extensions", ".cpp"},
			want: []string{"--extensions", ".cpp"},
		},
		{
			name: "several values",
			args: []string{"--extensions", ".cpp", ".h", "-v"},
			want: []string{"--extensions", ".cpp", "--extensions", ".h", "-v"},
		},
		{
			name: "values end at next flag",
			args: []string{"--exclude", "lang", "vendor", "--no-recursion"},
			want: []string{"--exclude", "lang", "--exclude", "vendor", "--no-recursion"},
		},
		{
			name: "other flags untouched",
			args: []string{"--output", "a.txt", "--json"},
			want: []string{"--output", "a.txt", "--json"},
		},
		{
			name: "flag without values",
			args: []string{"--name-filter"},
			want: []string{"--name-filter"},
		},
		{
			name: "subcommand ends values",
			args: []string{"--extensions", ".cpp", "version"},
			want: []string{"--extensions", ".cpp", "version"},
		},
		{
			name: "subcommand after several values",
			args: []string{"--exclude", "lang", "vendor", "compare", "--list"},
			want: []string{"--exclude", "lang", "--exclude", "vendor", "compare", "--list"},
		},
		{
			name: "double dash stops expansion",
			args: []string{"--", "--extensions", ".c", ".h"},
			want: []string{"--", "--extensions", ".c", ".h"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := expandMultiValueFlags(tt.args, commands); !slices.Equal(got, tt.want) {
				t.Errorf("expandMultiValueFlags(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestCommandNames(t *testing.T) {
	t.Parallel()

	names := commandNames(NewRootCmd())
	for _, want := range []string{"compare", "init", "version"} {
		if !names[want] {
			t.Errorf("expected %q in command names %v", want, names)
		}
	}
	if names["czwords"] {
		t.Error("root command must not be listed")
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{
			name:   "comma separated",
			values: []string{".c,.h"},
			want:   []string{".c", ".h"},
		},
		{
			name:   "braces kept together",
			values: []string{"*.{c,h},lang"},
			want:   []string{"*.{c,h}", "lang"},
		},
		{
			name:   "empty items dropped",
			values: []string{" .c , ,", ""},
			want:   []string{".c"},
		},
		{
			name:   "several values",
			values: []string{".c", ".rc,.rh"},
			want:   []string{".c", ".rc", ".rh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := splitList(tt.values); !slices.Equal(got, tt.want) {
				t.Errorf("splitList(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
