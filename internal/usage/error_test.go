package usage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnknownCommand_Message(t *testing.T) {
	err := UnknownCommand("frob")

	require.Equal(t, ErrUnknownCommand, err.Kind)
	require.Equal(t, "Invalid command \"frob\".\nType \"help\" for a list of commands.", err.Error())
}

func TestInvalidArgument_Message(t *testing.T) {
	err := InvalidArgument("a.b.c arg")

	require.Equal(t, ErrInvalidArgument, err.Kind)
	require.Contains(t, err.Error(), "a.b.c arg")
	require.Contains(t, err.Error(), "[namespace.]command [arguments]")
}

func TestHandlerFailure_UnwrapsOneLayer(t *testing.T) {
	cause := errors.New("disk on fire")
	err := HandlerFailure(cause)

	require.Equal(t, "disk on fire", err.Error())
	require.Same(t, cause, errors.Unwrap(err))
	require.ErrorIs(t, err, cause)
}

func TestHandlerFailure_NilCause(t *testing.T) {
	err := HandlerFailure(nil)
	require.Empty(t, err.Error())
	require.Nil(t, err.Unwrap())
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, ErrUnknown},
		{"plain", errors.New("x"), ErrUnknown},
		{"unknown command", UnknownCommand("x"), ErrUnknownCommand},
		{"wrapped", fmt.Errorf("ctx: %w", InvalidArgument("x")), ErrInvalidArgument},
		{"handler", HandlerFailure(errors.New("x")), ErrHandlerFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorKind_String(t *testing.T) {
	require.Equal(t, "unknown command", ErrUnknownCommand.String())
	require.Equal(t, "unknown", ErrorKind(99).String())
}
