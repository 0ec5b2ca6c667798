package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/consoleapp/internal/ui/style"
)

func TestParsedFlags_Has(t *testing.T) {
	pf := NewParsedFlags([]string{"--echo", "-v"})

	require.True(t, pf.Has("--echo"))
	require.True(t, pf.Has("--version", "-v"))
	require.False(t, pf.Has("--no-color"))
	require.False(t, pf.Has())
}

func TestParsedFlags_Lookup(t *testing.T) {
	tests := []struct {
		name     string
		flags    []string
		flagName string
		want     string
		wantOK   bool
	}{
		{
			name:     "equals format",
			flags:    []string{"--prompt=$ "},
			flagName: "--prompt",
			want:     "$ ",
			wantOK:   true,
		},
		{
			name:     "flag not present",
			flags:    []string{"--other=value"},
			flagName: "--prompt",
		},
		{
			name:     "flag with empty value",
			flags:    []string{"--prompt="},
			flagName: "--prompt",
			want:     "",
			wantOK:   true,
		},
		{
			name:     "value with equals sign",
			flags:    []string{"--prompt=a=b"},
			flagName: "--prompt",
			want:     "a=b",
			wantOK:   true,
		},
		{
			name:     "duplicate flags, first one wins",
			flags:    []string{"--prompt=first", "--prompt=second"},
			flagName: "--prompt",
			want:     "first",
			wantOK:   true,
		},
		{
			name:     "prefix of another flag does not match",
			flags:    []string{"--prompts=x"},
			flagName: "--prompt",
		},
		{
			name:     "boolean form has no value",
			flags:    []string{"--prompt"},
			flagName: "--prompt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := NewParsedFlags(tt.flags).Lookup(tt.flagName)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, v)
		})
	}
}

func TestParsedFlags_List(t *testing.T) {
	tests := []struct {
		name  string
		flags []string
		want  []string
	}{
		{"absent", nil, nil},
		{"single", []string{"--namespaces=tools"}, []string{"tools"}},
		{"ordered", []string{"--namespaces=tools, default"}, []string{"tools", "default"}},
		{"blank items dropped", []string{"--namespaces=a,,b,"}, []string{"a", "b"}},
		{"empty value", []string{"--namespaces="}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pf := NewParsedFlags(tt.flags)
			require.Equal(t, tt.want, pf.List("--namespaces"))
		})
	}
}

func TestParsedFlags_Unknown(t *testing.T) {
	pf := NewParsedFlags([]string{"--echo", "--prompt=x", "--bogus", "-z=1"})

	require.Equal(t, []string{"--bogus", "-z=1"}, pf.Unknown(RootFlags))
}

func TestExtractFlagsAndCommands(t *testing.T) {
	args := []string{"--echo", "config.get", "theme", "--no-color", "", "x y"}

	require.Equal(t, []string{"--echo", "--no-color"}, ExtractFlags(args))
	require.Equal(t, []string{"config.get", "theme", "x y"}, ExtractCommands(args))
	require.Nil(t, ExtractFlags(nil))
	require.Nil(t, ExtractCommands([]string{"-h"}))
}

func TestJoinCommandLine(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{"none", nil, ""},
		{"plain words", []string{"ping", "a", "b"}, "ping a b"},
		{"word with space is quoted", []string{"config.set", "read_prompt", "$ go"}, `config.set read_prompt "$ go"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, JoinCommandLine(tt.words))
		})
	}
}

func TestUsage(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	style.Init(false, nil)

	text := Usage("console")

	require.True(t, strings.HasPrefix(text, "USAGE\n   console [flags]"))
	for _, f := range RootFlags {
		require.Contains(t, text, f.Names[0])
		require.Contains(t, text, f.Description)
	}
	require.Contains(t, text, "--prompt=<text>")
}
