package model

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rotisserie/eris"
)

// Comment is one stored star-rating review for a website domain. URL carries
// the original un-normalized input for response shaping only; the store holds
// just the normalized domain.
type Comment struct {
	ID            int64     `json:"id"`
	Domain        string    `json:"domain"`
	CommenterName string    `json:"commenter_name"`
	Comment       string    `json:"comment"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	URL           string    `json:"url,omitempty"`
}

// CommentCreate is the inbound payload for posting a comment.
type CommentCreate struct {
	CommenterName string  `json:"commenter_name"`
	Comment       string  `json:"comment"`
	Rating        float64 `json:"rating"`
	URL           string  `json:"url"`
}

// Validate enforces the submission constraints. The rating bound is checked
// against the raw value; snapping to the 0.5 grid happens afterwards via
// SnapRating.
func (c CommentCreate) Validate() error {
	if n := utf8.RuneCountInString(c.CommenterName); n < 1 || n > 100 {
		return eris.New("commenter_name must be 1-100 characters")
	}
	if n := utf8.RuneCountInString(c.Comment); n < 1 || n > 1000 {
		return eris.New("comment must be 1-1000 characters")
	}
	if c.Rating < 1 || c.Rating > 5 {
		return eris.Errorf("rating %.2f outside [1,5]", c.Rating)
	}
	if strings.TrimSpace(c.URL) == "" {
		return eris.New("url is required")
	}
	return nil
}

// CommentsPage is the read-side response for a domain: all comments newest
// first plus the rounded average rating.
type CommentsPage struct {
	Comments      []Comment `json:"comments"`
	AverageRating float64   `json:"average_rating"`
}

// SnapRating rounds a rating to the nearest 0.5 increment. math.Round rounds
// halves away from zero, so 4.25 snaps to 4.5.
func SnapRating(r float64) float64 {
	return math.Round(r*2) / 2
}

// AverageRating returns the arithmetic mean of ratings rounded to the nearest
// 0.5, or 0.0 for an empty input. Uses the same rounding rule as SnapRating
// so the two-stage rounding stays reproducible.
func AverageRating(ratings []float64) float64 {
	if len(ratings) == 0 {
		return 0.0
	}
	var sum float64
	for _, r := range ratings {
		sum += r
	}
	return SnapRating(sum / float64(len(ratings)))
}
