package publisher

import (
	"context"
	"fmt"
	"strings"

	"go-portfolio-backend/internal/domain"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

const defaultBranch = "main"

// GitHubPublisher implements domain.SitePublisher against the GitHub API.
// All repositories are created under the configured owner account; the
// token and owner are injected at construction, never read from globals.
type GitHubPublisher struct {
	client *github.Client
	owner  string
}

// NewGitHubPublisher builds a publisher using a static-token OAuth2 client.
func NewGitHubPublisher(token, owner string) *GitHubPublisher {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &GitHubPublisher{
		client: github.NewClient(tc),
		owner:  owner,
	}
}

// CreateRepository creates an auto-initialized repository so the default
// branch exists and is ready to receive content commits.
func (p *GitHubPublisher) CreateRepository(ctx context.Context, name, homepage string) error {
	repo := &github.Repository{
		Name:        github.String(name),
		Description: github.String("Generated portfolio website"),
		Homepage:    github.String(homepage),
		AutoInit:    github.Bool(true),
	}
	// Empty org creates the repository under the authenticated account.
	_, _, err := p.client.Repositories.Create(ctx, "", repo)
	if err != nil {
		return fmt.Errorf("create repository %s: %w", name, err)
	}
	return nil
}

// EnablePages enables static hosting on the default branch root.
func (p *GitHubPublisher) EnablePages(ctx context.Context, name string) error {
	pages := &github.Pages{
		Source: &github.PagesSource{
			Branch: github.String(defaultBranch),
			Path:   github.String("/"),
		},
	}
	_, _, err := p.client.Repositories.EnablePages(ctx, p.owner, name, pages)
	if err != nil {
		return fmt.Errorf("enable pages on %s: %w", name, err)
	}
	return nil
}

// CommitFile issues a create-or-update contents call for one artifact.
// The client handles base64 encoding of content on the wire.
func (p *GitHubPublisher) CommitFile(ctx context.Context, name, path, message string, content []byte) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: content,
		Branch:  github.String(defaultBranch),
	}
	_, _, err := p.client.Repositories.CreateFile(ctx, p.owner, name, path, opts)
	if err != nil {
		return fmt.Errorf("commit %s to %s: %w", path, name, err)
	}
	return nil
}

// DeleteRepository removes a repository. Used only as a compensating action
// after a partial failure, and only when orphan cleanup is enabled.
func (p *GitHubPublisher) DeleteRepository(ctx context.Context, name string) error {
	_, err := p.client.Repositories.Delete(ctx, p.owner, name)
	if err != nil {
		return fmt.Errorf("delete repository %s: %w", name, err)
	}
	return nil
}

// PagesURL predicts the static-hosting URL for a repository name.
func (p *GitHubPublisher) PagesURL(name string) string {
	return fmt.Sprintf("https://%s.github.io/%s", strings.ToLower(p.owner), name)
}

var _ domain.SitePublisher = (*GitHubPublisher)(nil)
