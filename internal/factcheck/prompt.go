package factcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// Template file names inside the prompts directory.
const (
	urlPromptFile  = "fact_check_prompt.md"
	textPromptFile = "text_check_prompt.md"
)

// formatInstructions describes the exact JSON document the model must return.
// It replaces the {format_instructions} placeholder in both templates.
const formatInstructions = `Return a single JSON object with this exact structure:
{
  "claims": [
    {
      "claim": "<the assertion being checked>",
      "verdict": "<one of: True, False, Misleading, Unverified>",
      "explanation": "<why this verdict was reached>",
      "sources": [
        {
          "url": "<full source URL>",
          "title": "<source title>",
          "publisher": "<publishing organization>",
          "date": "<publication date>"
        }
      ]
    }
  ],
  "summary": "<overall assessment of the content>",
  "metadata": {
    "analyzed_url": "<the analyzed URL or text>",
    "analysis_date": "<ISO 8601 timestamp>",
    "credibility_score": <integer 0-100>
  }
}
The credibility_score must be an integer between 0 and 100. The verdict must be exactly one of the four listed values.`

// Prompt is a composed two-part instruction for the model.
type Prompt struct {
	System string
	User   string
}

// Composer selects and binds the URL-mode or text-mode prompt template.
// Templates are read once at construction; a missing or unreadable template
// is a fatal configuration error.
type Composer struct {
	urlTemplate  string
	textTemplate string
}

// NewComposer loads both prompt templates from dir.
func NewComposer(dir string) (*Composer, error) {
	urlTmpl, err := os.ReadFile(filepath.Join(dir, urlPromptFile))
	if err != nil {
		return nil, eris.Wrapf(err, "prompt: read %s", urlPromptFile)
	}
	textTmpl, err := os.ReadFile(filepath.Join(dir, textPromptFile))
	if err != nil {
		return nil, eris.Wrapf(err, "prompt: read %s", textPromptFile)
	}
	return &Composer{
		urlTemplate:  string(urlTmpl),
		textTemplate: string(textTmpl),
	}, nil
}

// Compose binds content into the template for its mode and substitutes the
// output-format instructions.
func (c *Composer) Compose(content string, isURL bool) Prompt {
	tmpl := c.textTemplate
	user := "Please analyze this text content and provide a response following the format above:\n\n" + content
	if isURL {
		tmpl = c.urlTemplate
		user = fmt.Sprintf("Please analyze the content at %s and provide a response following the format above.", content)
	}

	return Prompt{
		System: strings.ReplaceAll(tmpl, "{format_instructions}", formatInstructions),
		User:   user,
	}
}
