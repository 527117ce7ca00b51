package pbp

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/rs/zerolog/log"
)

// ReadTranscript slurps a transcript from r. Exports pasted through Windows
// spreadsheets sometimes arrive as Windows-1252 (curly apostrophes in
// "fielder's choice" are the usual giveaway); if the bytes aren't valid
// UTF-8 we transform them before returning.
func ReadTranscript(r io.Reader) (string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	log.Debug().Msg("transcript is not valid utf8; decoding as windows-1252")
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
