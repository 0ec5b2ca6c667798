package dispatchers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/consoleapp/internal/usage"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantNamespace string
		wantQualified bool
		wantName      string
		wantArgs      []string
	}{
		{
			name:          "namespace prefix",
			input:         "ns.cmd a b",
			wantNamespace: "ns",
			wantQualified: true,
			wantName:      "cmd",
			wantArgs:      []string{"a", "b"},
		},
		{
			name:     "dots in arguments are not namespaces",
			input:    `cmd a.b.c "x y"`,
			wantName: "cmd",
			wantArgs: []string{"a.b.c", "x y"},
		},
		{
			name:     "blank line has an empty name",
			input:    "  ",
			wantName: "",
			wantArgs: []string{"", ""},
		},
		{
			name:     "identifier is lowercased",
			input:    "QUIT Now",
			wantName: "quit",
			wantArgs: []string{"Now"},
		},
		{
			name:          "namespace is lowercased too",
			input:         "Config.Get Theme",
			wantNamespace: "config",
			wantQualified: true,
			wantName:      "get",
			wantArgs:      []string{"Theme"},
		},
		{
			name:     "no arguments",
			input:    "help",
			wantName: "help",
		},
		{
			name:          "empty namespace",
			input:         ".cmd",
			wantNamespace: "",
			wantQualified: true,
			wantName:      "cmd",
		},
		{
			name:     "all surrounding quotes stripped",
			input:    `cmd """x"""`,
			wantName: "cmd",
			wantArgs: []string{"x"},
		},
		{
			name:     "lone quote pair becomes empty",
			input:    `cmd ""`,
			wantName: "cmd",
			wantArgs: []string{""},
		},
		{
			name:     "odd quote count leaves one identifier",
			input:    `cmd "a b" c"`,
			wantName: `cmd "a b" c"`,
		},
		{
			name:     "closing quote only is kept",
			input:    `cmd x" y"`,
			wantName: "cmd",
			wantArgs: []string{`x" y"`},
		},
		{
			name:     "opening quote only is kept",
			input:    `cmd "x "y`,
			wantName: "cmd",
			wantArgs: []string{`"x "y`},
		},
		{
			name:     "interior quotes kept",
			input:    `cmd key="v w"`,
			wantName: "cmd",
			wantArgs: []string{`key="v w"`},
		},
		{
			name:     "first token keeps its quotes",
			input:    `"Cmd" a`,
			wantName: `"cmd"`,
			wantArgs: []string{"a"},
		},
		{
			name:     "empty tokens from repeated spaces",
			input:    "cmd  a",
			wantName: "cmd",
			wantArgs: []string{"", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantNamespace, cmd.Namespace())
			require.Equal(t, tt.wantQualified, cmd.Qualified())
			require.Equal(t, tt.wantName, cmd.Name())
			if len(tt.wantArgs) == 0 {
				require.Empty(t, cmd.Args())
			} else {
				require.Equal(t, tt.wantArgs, cmd.Args())
			}
		})
	}
}

func TestParse_TooManyNamespaceParts(t *testing.T) {
	_, err := Parse("a.b.c arg")

	require.Error(t, err)
	require.Equal(t, usage.ErrInvalidArgument, usage.KindOf(err))
	require.Contains(t, err.Error(), "a.b.c arg")
}

func TestCommand_ArgsIsCopy(t *testing.T) {
	cmd, err := Parse("cmd a b")
	require.NoError(t, err)

	args := cmd.Args()
	args[0] = "changed"

	require.Equal(t, []string{"a", "b"}, cmd.Args())
}

func TestNewCommand(t *testing.T) {
	in := []string{"x"}
	cmd := NewCommand("tools", "ping", in...)
	in[0] = "y"

	require.Equal(t, "tools.ping", cmd.String())
	require.True(t, cmd.Qualified())
	require.Equal(t, []string{"x"}, cmd.Args())

	require.Equal(t, "ping", NewCommand("", "ping").String())
}
