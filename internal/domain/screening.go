package domain

import "context"

// ScreeningResult is the portfolio scaffold suggested by the language model
// from a resume's extracted text.
type ScreeningResult struct {
	Tagline string   `json:"tagline"`
	Summary string   `json:"summary"`
	About   string   `json:"about"`
	Skills  []string `json:"skills"`
}

// ScreeningUsecase forwards resume content to the completion service.
// Stateless; not part of the publication pipeline.
type ScreeningUsecase interface {
	Screen(ctx context.Context, resumePDF []byte, jobDescription string) (*ScreeningResult, error)
}
