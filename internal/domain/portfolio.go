package domain

import "context"

// Project is one portfolio entry. It appears in the generated site only if
// both title and description are non-empty after sanitization.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
}

// UploadedFile is a temporary upload owned by the current request.
// The orchestrator deletes it unconditionally once processing ends.
type UploadedFile struct {
	Role string // "resume" or "headshot"
	Path string // ephemeral location on local disk
	MIME string
	Size int64
}

// PortfolioRequest carries one site-generation submission. Constructed per
// request, validated, consumed once, discarded after rendering.
type PortfolioRequest struct {
	Name          string `validate:"required,max=100"`
	Profession    string `validate:"required,max=100"`
	Tagline       string `validate:"max=200"`
	Summary       string `validate:"max=2000"`
	About         string `validate:"max=5000"`
	Email         string `validate:"required,valid_email"`
	LinkedIn      string `validate:"max=300"`
	Phone         string `validate:"omitempty,valid_phone"`
	Skills        []string
	Proficiencies []int
	Projects      []Project
	Template      string `validate:"required"`

	Resume   *UploadedFile
	Headshot *UploadedFile
}

// Artifact is one file to be committed to the remote repository.
type Artifact struct {
	Path    string
	Content []byte
}

// GeneratedSite is the fully substituted HTML document plus the binary
// artifacts that get committed. Exists only for the duration of one request.
type GeneratedSite struct {
	HTML      string
	Artifacts []Artifact
}

// PortfolioUsecase runs the publication pipeline and returns the site URL.
type PortfolioUsecase interface {
	Publish(ctx context.Context, req *PortfolioRequest) (string, error)
}

// SitePublisher is the remote publishing service: repository creation,
// static-hosting enablement and per-file commits, all under one configured
// publishing account.
type SitePublisher interface {
	// CreateRepository creates an auto-initialized repository so the
	// default branch is ready to receive commits.
	CreateRepository(ctx context.Context, name, homepage string) error
	// EnablePages turns on static hosting for the repository's default
	// branch root.
	EnablePages(ctx context.Context, name string) error
	// CommitFile issues one create-or-update contents call on the default
	// branch.
	CommitFile(ctx context.Context, name, path, message string, content []byte) error
	// DeleteRepository removes a partially created repository
	// (compensating action; best-effort).
	DeleteRepository(ctx context.Context, name string) error
	// PagesURL predicts the static-hosting URL for a repository name.
	PagesURL(name string) string
}
