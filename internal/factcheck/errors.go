package factcheck

import "github.com/rotisserie/eris"

// Error kinds surfaced by the analysis pipeline. Callers match with
// errors.Is and map each kind to a transport-level failure; nothing is
// silently defaulted and no layer retries.
var (
	// ErrValidation marks malformed request input (empty content, bad
	// rating, length violations).
	ErrValidation = eris.New("validation failed")

	// ErrNoJSONFound marks model output with no candidate JSON object at
	// all, fenced or bare.
	ErrNoJSONFound = eris.New("no JSON found in response")

	// ErrSchemaInvalid marks a JSON span that either does not parse or
	// parses but fails structural validation (bad verdict, out-of-range
	// credibility score, malformed source URL).
	ErrSchemaInvalid = eris.New("response failed schema validation")

	// ErrUpstream marks a failed or unusable LLM provider call.
	ErrUpstream = eris.New("upstream model call failed")
)
