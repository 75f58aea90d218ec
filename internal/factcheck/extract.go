package factcheck

import (
	"regexp"
	"strings"

	"github.com/rotisserie/eris"
)

// fencedJSON matches a markdown code fence (optionally tagged json) holding a
// JSON object. Non-greedy with newlines allowed, so the first complete fence
// wins even when commentary follows.
var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// ExtractJSON locates the JSON object embedded in free-form model output.
// Fenced blocks are preferred; otherwise the span from the first "{" to the
// last "}" is taken. The returned span is not guaranteed to be valid JSON —
// parsing it is the validator's job. Fails with ErrNoJSONFound when neither
// heuristic produces a candidate.
func ExtractJSON(raw string) (string, error) {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return m[1], nil
	}

	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start != -1 && end > start {
		return raw[start : end+1], nil
	}

	return "", eris.Wrap(ErrNoJSONFound, "extract")
}
