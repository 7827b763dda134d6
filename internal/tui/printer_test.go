package tui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrinter_PlainOutputForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Step("Reading target info...")
	p.Item("ARMCC_PATH", "/opt/armcc/bin")
	p.Field("Project", "qr")
	p.Blank()
	p.Success("done")

	require.Equal(t, "Reading target info...\n  ARMCC_PATH = /opt/armcc/bin\n  Project: qr\n\ndone\n", buf.String())
}
