package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/gemini"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/resume"
)

// Keep prompts bounded; resumes longer than this are truncated, not rejected.
const maxResumeChars = 15000

// Completer is the single-turn completion surface of the language-model
// client. Satisfied by *gemini.Client.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type screeningUsecase struct {
	llm Completer // nil when no API key is configured
	rec *metrics.Recorder
}

func NewScreeningUsecase(llm Completer, rec *metrics.Recorder) domain.ScreeningUsecase {
	return &screeningUsecase{llm: llm, rec: rec}
}

// Screen extracts the resume's plain text and forwards it to the completion
// service to scaffold portfolio content. Stateless; no local or remote
// artifacts are created.
func (u *screeningUsecase) Screen(ctx context.Context, resumePDF []byte, jobDescription string) (*domain.ScreeningResult, error) {
	if u.llm == nil {
		u.rec.Screening("unconfigured")
		return nil, apperror.New(http.StatusServiceUnavailable, "CV screening is not configured on this server", nil)
	}

	text, err := resume.ExtractText(resumePDF)
	if err != nil {
		u.rec.Screening("unreadable")
		return nil, apperror.BadRequest("Could not extract text from the uploaded PDF")
	}
	text = resume.Truncate(text, maxResumeChars)

	completion, err := u.llm.Complete(ctx, buildScreeningPrompt(text, jobDescription))
	if err != nil {
		u.rec.Screening("upstream_error")
		return nil, apperror.Upstream("The completion service is currently unavailable", err)
	}

	var result domain.ScreeningResult
	if err := json.Unmarshal([]byte(gemini.CleanJSON(completion)), &result); err != nil {
		u.rec.Screening("bad_completion")
		return nil, apperror.Upstream("The completion service returned an unexpected format", err)
	}

	u.rec.Screening("ok")
	return &result, nil
}

func buildScreeningPrompt(resumeText, jobDescription string) string {
	prompt := fmt.Sprintf(`You are helping build a personal portfolio website from a resume.
Read the resume below and respond with ONLY a JSON object in this shape:
{"tagline": string, "summary": string, "about": string, "skills": [string]}

- tagline: one punchy line, at most 12 words
- summary: 2-3 sentences, third person omitted ("I" voice)
- about: one short paragraph for an About Me section
- skills: up to 10 of the strongest skills, most relevant first

Resume:
%s`, resumeText)

	if jobDescription != "" {
		prompt += fmt.Sprintf("\n\nTailor the content toward this role:\n%s", jobDescription)
	}
	return prompt
}
