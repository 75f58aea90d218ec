// Package factcheck implements the analysis pipeline: classify the input,
// compose a prompt, call the model, extract the embedded JSON and validate it
// into a typed FactCheckResponse.
package factcheck

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/verilens/verilens/internal/model"
	"github.com/verilens/verilens/pkg/llm"
)

// Checker runs fact-check analyses. It holds no per-request state; every
// Analyze call is an independent transformation of its input plus the model
// call and the clock.
type Checker struct {
	client  llm.Client
	prompts *Composer
	now     func() time.Time
}

// NewChecker builds a Checker around an injected model client and composer.
func NewChecker(client llm.Client, prompts *Composer) *Checker {
	return &Checker{
		client:  client,
		prompts: prompts,
		now:     time.Now,
	}
}

// wireResponse mirrors the model's JSON document. Metadata's analyzed input
// and timestamp are deliberately absent: both are forced from ground truth
// after decoding, regardless of what the model produced there. Pointers
// distinguish an absent metadata block from a present-but-zero score, so a
// document that omits either is rejected rather than defaulted.
type wireResponse struct {
	Claims   []model.Claim `json:"claims"`
	Summary  string        `json:"summary"`
	Metadata *struct {
		CredibilityScore *int `json:"credibility_score"`
	} `json:"metadata"`
}

// Analyze fact-checks content (a URL or raw text) and returns the validated
// structured result. Failures carry one of the package error kinds.
func (c *Checker) Analyze(ctx context.Context, content string) (*model.FactCheckResponse, error) {
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	isURL := IsURL(content)
	prompt := c.prompts.Compose(content, isURL)

	zap.L().Info("analyzing content",
		zap.Bool("is_url", isURL),
		zap.Int("content_len", len(content)),
	)

	raw, err := c.client.Complete(ctx, prompt.System, prompt.User)
	if err != nil {
		return nil, eris.Wrap(ErrUpstream, err.Error())
	}

	span, err := ExtractJSON(raw)
	if err != nil {
		zap.L().Warn("no JSON in model output", zap.Int("output_len", len(raw)))
		return nil, err
	}

	var wire wireResponse
	if err := json.Unmarshal([]byte(span), &wire); err != nil {
		return nil, eris.Wrapf(ErrSchemaInvalid, "not valid JSON: %v", err)
	}
	if wire.Metadata == nil {
		return nil, eris.Wrap(ErrSchemaInvalid, "metadata is required")
	}
	if wire.Metadata.CredibilityScore == nil {
		return nil, eris.Wrap(ErrSchemaInvalid, "metadata.credibility_score is required")
	}

	resp := &model.FactCheckResponse{
		Claims:  wire.Claims,
		Summary: wire.Summary,
		Metadata: model.Metadata{
			AnalyzedURL:      content,
			AnalysisDate:     c.now().UTC(),
			CredibilityScore: *wire.Metadata.CredibilityScore,
		},
	}
	if err := resp.Validate(); err != nil {
		return nil, eris.Wrapf(ErrSchemaInvalid, "%v", err)
	}

	return resp, nil
}
