package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s=%d\n", "a", 1)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)

	require.Equal(t, "a=1\ndone\n", buf.String())
}

func TestWriter_BufferIsNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	require.False(t, NewWriterTo(&buf).IsTerminal())
}
