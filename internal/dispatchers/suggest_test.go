package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "identical strings", a: "help", b: "help", want: 0},
		{name: "one character difference", a: "exit", b: "exits", want: 1},
		{name: "typo - transposition", a: "quit", b: "qiut", want: 2},
		{name: "typo - swapped letters", a: "version", b: "verison", want: 2},
		{name: "completely different", a: "quit", b: "xyz123", want: 6},
		{name: "empty string a", a: "", b: "exit", want: 4},
		{name: "empty string b", a: "exit", b: "", want: 4},
		{name: "both empty", a: "", b: "", want: 0},
		{name: "case insensitive", a: "HELP", b: "help", want: 0},
		{name: "missing letter", a: "config", b: "confg", want: 1},
		{name: "extra letter", a: "config", b: "confiig", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

func TestFindSimilarCommands(t *testing.T) {
	names := []string{"quit", "exit", "help", "version"}

	tests := []struct {
		name       string
		input      string
		maxResults int
		want       []string
	}{
		{
			name:       "transposition suggests help",
			input:      "hlep",
			maxResults: 3,
			want:       []string{"help"},
		},
		{
			name:       "typo versoin suggests version",
			input:      "versoin",
			maxResults: 3,
			want:       []string{"version"},
		},
		{
			name:       "exact match is not suggested",
			input:      "quit",
			maxResults: 3,
			want:       []string{"exit"}, // within distance 2 of quit
		},
		{
			name:       "completely different returns nothing",
			input:      "xyz123456",
			maxResults: 3,
			want:       []string{},
		},
		{
			name:       "results are capped",
			input:      "quit",
			maxResults: 0,
			want:       []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindSimilarCommands(tt.input, names, tt.maxResults)

			if len(tt.want) == 0 {
				require.Empty(t, got)
			} else {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFindSimilarCommands_SortedByDistance(t *testing.T) {
	// trak -> track (distance 1), trak -> task (distance 2)
	got := FindSimilarCommands("trak", []string{"version", "task", "track"}, 3)

	require.Equal(t, []string{"track", "task"}, got)
}

func TestFindSimilarCommands_NoNames(t *testing.T) {
	require.Empty(t, FindSimilarCommands("help", nil, 3))
}
