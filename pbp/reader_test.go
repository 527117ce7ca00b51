package pbp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadTranscriptPassesThroughUTF8(t *testing.T) {
	in := "J Smith grounds out to shortstop.\nR Cruz walks.\n"
	out, err := ReadTranscript(strings.NewReader(in))
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestReadTranscriptDecodesWindows1252(t *testing.T) {
	// 0x92 is the Windows-1252 right single quote, invalid as UTF-8.
	raw := []byte("J Smith reaches on fielder\x92s choice.")
	out, err := ReadTranscript(bytes.NewReader(raw))
	assert.NoError(t, err)
	assert.Equal(t, "J Smith reaches on fielder’s choice.", out)
}
