package factcheck

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/verilens/verilens/internal/model"
)

type mockLLM struct {
	mock.Mock
}

func (m *mockLLM) Complete(ctx context.Context, system, user string) (string, error) {
	args := m.Called(ctx, system, user)
	return args.String(0), args.Error(1)
}

const validModelOutput = "Here is my analysis:\n```json\n{" +
	`"claims": [{"claim": "The moon landing happened in 1969", "verdict": "True", "explanation": "Extensively documented.", "sources": [{"url": "https://nasa.gov/apollo11", "title": "Apollo 11", "publisher": "NASA", "date": "2019-07-20"}]}],` +
	`"summary": "Accurate overall.",` +
	`"metadata": {"analyzed_url": "whatever the model says", "analysis_date": "1999-01-01T00:00:00Z", "credibility_score": 85}` +
	"}\n```\nLet me know if you need more."

func newTestChecker(t *testing.T, client *mockLLM) *Checker {
	t.Helper()
	prompts, err := NewComposer(writePromptDir(t))
	require.NoError(t, err)
	return NewChecker(client, prompts)
}

func TestAnalyze_URLContent(t *testing.T) {
	ctx := context.Background()
	client := &mockLLM{}
	client.On("Complete", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(validModelOutput, nil).Once()

	checker := newTestChecker(t, client)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	checker.now = func() time.Time { return fixed }

	resp, err := checker.Analyze(ctx, "https://example.com/article")
	require.NoError(t, err)

	require.Len(t, resp.Claims, 1)
	assert.Equal(t, model.VerdictTrue, resp.Claims[0].Verdict)
	assert.Equal(t, "Accurate overall.", resp.Summary)
	assert.Equal(t, 85, resp.Metadata.CredibilityScore)

	// Metadata reflects ground truth, not whatever the model produced.
	assert.Equal(t, "https://example.com/article", resp.Metadata.AnalyzedURL)
	assert.Equal(t, fixed, resp.Metadata.AnalysisDate)

	// URL-mode prompt was selected.
	system := client.Calls[0].Arguments.String(1)
	assert.Contains(t, system, "URL mode.")
	client.AssertExpectations(t)
}

func TestAnalyze_TextContent(t *testing.T) {
	ctx := context.Background()
	client := &mockLLM{}
	client.On("Complete", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Return(validModelOutput, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "the moon landing happened in 1969")
	require.NoError(t, err)

	system := client.Calls[0].Arguments.String(1)
	user := client.Calls[0].Arguments.String(2)
	assert.Contains(t, system, "Text mode.")
	assert.Contains(t, user, "the moon landing happened in 1969")
	client.AssertExpectations(t)
}

func TestAnalyze_EmptyContent(t *testing.T) {
	client := &mockLLM{}
	checker := newTestChecker(t, client)

	_, err := checker.Analyze(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	client.AssertNotCalled(t, "Complete")
}

func TestAnalyze_UpstreamFailure(t *testing.T) {
	ctx := context.Background()
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).
		Return("", errors.New("503 model overloaded")).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstream))
	assert.Contains(t, err.Error(), "503 model overloaded")
}

func TestAnalyze_NoJSONInResponse(t *testing.T) {
	ctx := context.Background()
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).
		Return("I could not produce structured output, sorry.", nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJSONFound))
}

func TestAnalyze_MalformedJSON(t *testing.T) {
	ctx := context.Background()
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).
		Return(`{"claims": [unquoted garbage]}`, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestAnalyze_MissingMetadata(t *testing.T) {
	ctx := context.Background()
	out := `{"claims": [], "summary": "looks fine"}`
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).Return(out, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
	assert.Contains(t, err.Error(), "metadata is required")
}

func TestAnalyze_MissingCredibilityScore(t *testing.T) {
	ctx := context.Background()
	out := `{"claims": [], "summary": "s", "metadata": {}}`
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).Return(out, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
	assert.Contains(t, err.Error(), "credibility_score is required")
}

func TestAnalyze_CredibilityScoreOutOfRange(t *testing.T) {
	ctx := context.Background()
	out := `{"claims": [], "summary": "s", "metadata": {"credibility_score": 150}}`
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).Return(out, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
	assert.Contains(t, err.Error(), "credibility_score")
}

func TestAnalyze_BadVerdict(t *testing.T) {
	ctx := context.Background()
	out := `{"claims": [{"claim": "x", "verdict": "Probably", "explanation": "y", "sources": []}], "summary": "s", "metadata": {"credibility_score": 50}}`
	client := &mockLLM{}
	client.On("Complete", ctx, mock.Anything, mock.Anything).Return(out, nil).Once()

	checker := newTestChecker(t, client)

	_, err := checker.Analyze(ctx, "https://example.com")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaInvalid))
	assert.Contains(t, err.Error(), "verdict")
}
