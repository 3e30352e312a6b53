package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oghanim/triviarena/internal/game"
)

// Format selects the serialization produced by Questions.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// entry is the exported shape of one question. Export is meant for
// re-use outside the server, so it carries no database identifiers.
type entry struct {
	Category string `json:"category"`
	Points   int    `json:"points"`
	Prompt   string `json:"prompt"`
	Answer   string `json:"answer"`
	Creator  string `json:"creator"`
}

// Questions serializes the approved question set in the requested
// format. The function is pure; writing the result anywhere is the
// caller's concern.
func Questions(questions []game.Question, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		entries := make([]entry, 0, len(questions))
		for _, q := range questions {
			entries = append(entries, entry{
				Category: q.Category,
				Points:   q.Points,
				Prompt:   q.Prompt,
				Answer:   q.Answer,
				Creator:  q.CreatorName,
			})
		}
		return json.MarshalIndent(entries, "", "  ")
	case FormatText:
		var b strings.Builder
		for _, q := range questions {
			fmt.Fprintf(&b, "Category: %s\nPoints: %d\nQuestion: %s\nAnswer: %s\n\n---\n\n", q.Category, q.Points, q.Prompt, q.Answer)
		}
		return []byte(b.String()), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename returns the suggested download name for the given format.
func Filename(format Format, date string) string {
	ext := "json"
	if format == FormatText {
		ext = "txt"
	}
	return fmt.Sprintf("trivia_questions_%s.%s", date, ext)
}
