package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.3, 4.5},
		{4.2, 4.0},
		{4.25, 4.5}, // math.Round rounds halves away from zero
		{1.0, 1.0},
		{5.0, 5.0},
		{3.74, 3.5},
		{3.75, 4.0},
		{4.5, 4.5},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SnapRating(tt.in), 1e-9, "SnapRating(%v)", tt.in)
	}
}

func TestAverageRating(t *testing.T) {
	// mean 4.333... rounds to 4.5
	assert.InDelta(t, 4.5, AverageRating([]float64{4.5, 5.0, 3.5}), 1e-9)
	assert.InDelta(t, 4.0, AverageRating([]float64{4.0}), 1e-9)
	assert.InDelta(t, 3.0, AverageRating([]float64{2.5, 3.5}), 1e-9)
	// mean 2.833... rounds to 3.0
	assert.InDelta(t, 3.0, AverageRating([]float64{2.0, 3.0, 3.5}), 1e-9)
}

func TestAverageRating_Empty(t *testing.T) {
	assert.Equal(t, 0.0, AverageRating(nil))
	assert.Equal(t, 0.0, AverageRating([]float64{}))
}

func TestCommentCreate_Validate(t *testing.T) {
	valid := CommentCreate{
		CommenterName: "Jamie",
		Comment:       "Solid reporting overall.",
		Rating:        4.3,
		URL:           "https://news.example.com/story",
	}
	assert.NoError(t, valid.Validate())

	c := valid
	c.CommenterName = ""
	assert.Error(t, c.Validate())

	c = valid
	c.CommenterName = strings.Repeat("x", 101)
	assert.Error(t, c.Validate())

	c = valid
	c.Comment = ""
	assert.Error(t, c.Validate())

	c = valid
	c.Comment = strings.Repeat("y", 1001)
	assert.Error(t, c.Validate())

	// Limits count characters, not bytes: 100 CJK runes are 300 bytes.
	c = valid
	c.CommenterName = strings.Repeat("字", 100)
	assert.NoError(t, c.Validate())

	c = valid
	c.CommenterName = strings.Repeat("字", 101)
	assert.Error(t, c.Validate())

	c = valid
	c.Comment = strings.Repeat("語", 1000)
	assert.NoError(t, c.Validate())

	c = valid
	c.Rating = 0.5
	assert.Error(t, c.Validate())

	c = valid
	c.Rating = 5.5
	assert.Error(t, c.Validate())

	c = valid
	c.URL = "  "
	assert.Error(t, c.Validate())
}
