package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/render"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/metrics"
	"go-portfolio-backend/pkg/sanitize"
	"go-portfolio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Pipeline stage labels for metrics.
const (
	stageValidate  = "validate"
	stageRender    = "render"
	stageProvision = "provision"
	stageHosting   = "hosting"
	stageStaging   = "staging"
	stageCommit    = "commit"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)

type portfolioUsecase struct {
	publisher domain.SitePublisher
	pubRepo   domain.PublicationRepository // nil disables the log and dedup
	validate  *validator.Validate
	rec       *metrics.Recorder

	// Compensating delete of the repository when the pipeline aborts after
	// provisioning. Off by default: the repository is left orphaned, which
	// keeps failures observable and retries cheap to reason about.
	deleteOrphans bool
}

func NewPortfolioUsecase(publisher domain.SitePublisher, pubRepo domain.PublicationRepository, validate *validator.Validate, rec *metrics.Recorder, deleteOrphans bool) domain.PortfolioUsecase {
	return &portfolioUsecase{
		publisher:     publisher,
		pubRepo:       pubRepo,
		validate:      validate,
		rec:           rec,
		deleteOrphans: deleteOrphans,
	}
}

// Publish runs the full pipeline: validation, sanitization, rendering,
// repository provisioning, hosting enablement, local staging, sequential
// remote commits. Local temporary artifacts are cleaned up on every exit
// path; remote state is only mutated after validation has passed.
func (u *portfolioUsecase) Publish(ctx context.Context, req *domain.PortfolioRequest) (string, error) {
	started := time.Now()

	var stagingDir string
	defer func() {
		u.cleanup(stagingDir, req)
	}()

	// Validating: no remote resources are touched before this passes.
	if err := u.validateRequest(req); err != nil {
		u.rec.StageFailure(stageValidate)
		u.rec.ObservePublish(time.Since(started), "invalid_input")
		return "", err
	}

	// Rendering: pure, operates on the sanitized copy of every field.
	sanitizeRequest(req)
	tpl, _ := domain.LookupTemplate(req.Template)
	html := render.Site(tpl, req)
	if html == "" {
		u.rec.StageFailure(stageRender)
		return "", apperror.BadRequest("Portfolio could not be rendered from the given input")
	}

	// Retried submissions with identical rendered content resolve to the
	// already-published site instead of provisioning a new repository.
	contentHash := hashContent(html)
	if u.pubRepo != nil {
		if existing, err := u.pubRepo.GetByContentHash(ctx, contentHash); err != nil {
			slog.Warn("publication log lookup failed", "error", err)
		} else if existing != nil {
			u.rec.DedupHit()
			u.rec.ObservePublish(time.Since(started), "deduplicated")
			return existing.URL, nil
		}
	}

	// RepoProvisioning: unique name from the sanitized display name plus
	// the current timestamp; auto-init gives us a commit-ready branch.
	repoName := buildRepoName(req.Name, time.Now())
	siteURL := u.publisher.PagesURL(repoName)

	if err := u.publisher.CreateRepository(ctx, repoName, siteURL); err != nil {
		u.rec.StageFailure(stageProvision)
		u.rec.ObservePublish(time.Since(started), "failed")
		return "", apperror.Publishing("Failed to create the site repository", err)
	}

	// HostingEnabling: a repository without hosting is not a useful result.
	if err := u.publisher.EnablePages(ctx, repoName); err != nil {
		u.rec.StageFailure(stageHosting)
		u.compensate(ctx, repoName)
		u.rec.ObservePublish(time.Since(started), "failed")
		return "", apperror.Publishing("Failed to enable static hosting for the site", err)
	}

	// LocalStaging: durability checkpoint before any content goes remote.
	site, dir, err := u.stage(html, req)
	stagingDir = dir
	if err != nil {
		u.rec.StageFailure(stageStaging)
		u.compensate(ctx, repoName)
		u.rec.ObservePublish(time.Since(started), "failed")
		return "", apperror.Publishing("Failed to stage the site locally", err)
	}

	// RemoteCommitting: one artifact at a time, in a fixed order, so a
	// partial failure leaves an inspectable prefix of the commit history.
	for _, artifact := range site.Artifacts {
		message := "Add " + artifact.Path
		if err := u.publisher.CommitFile(ctx, repoName, artifact.Path, message, artifact.Content); err != nil {
			u.rec.StageFailure(stageCommit)
			u.compensate(ctx, repoName)
			u.rec.ObservePublish(time.Since(started), "failed")
			return "", apperror.Publishing(fmt.Sprintf("Failed to publish %s", artifact.Path), err)
		}
		u.rec.FileCommitted()
	}

	// The remote side is done; a failed log write must not fail the request.
	if u.pubRepo != nil {
		record := &domain.Publication{
			RepoName:    repoName,
			URL:         siteURL,
			ContentHash: contentHash,
		}
		if err := u.pubRepo.Create(ctx, record); err != nil {
			slog.Warn("failed to record publication", "repo", repoName, "error", err)
		}
	}

	u.rec.ObservePublish(time.Since(started), "published")
	return siteURL, nil
}

func (u *portfolioUsecase) validateRequest(req *domain.PortfolioRequest) error {
	if err := u.validate.Struct(req); err != nil {
		msgs := validation.FormatValidationErrors(err)
		return apperror.BadRequest(strings.Join(msgs, "; "))
	}
	if len(req.Skills) != len(req.Proficiencies) {
		return apperror.BadRequest("Skills and proficiencies must have the same length")
	}
	if _, ok := domain.LookupTemplate(req.Template); !ok {
		return apperror.BadRequest(fmt.Sprintf("Unknown template %q; valid templates: %s",
			req.Template, strings.Join(domain.TemplateNames(), ", ")))
	}
	return nil
}

// sanitizeRequest strips markup from every free-text field in place.
func sanitizeRequest(req *domain.PortfolioRequest) {
	req.Name = sanitize.Text(req.Name)
	req.Profession = sanitize.Text(req.Profession)
	req.Tagline = sanitize.Text(req.Tagline)
	req.Summary = sanitize.Text(req.Summary)
	req.About = sanitize.Text(req.About)
	req.Email = sanitize.Text(req.Email)
	req.LinkedIn = sanitize.Text(req.LinkedIn)
	req.Phone = sanitize.Text(req.Phone)
	for i := range req.Skills {
		req.Skills[i] = sanitize.Text(req.Skills[i])
	}
	for i := range req.Projects {
		req.Projects[i].Title = sanitize.Text(req.Projects[i].Title)
		req.Projects[i].Description = sanitize.Text(req.Projects[i].Description)
		req.Projects[i].Link = sanitize.Text(req.Projects[i].Link)
		req.Projects[i].Category = sanitize.Text(req.Projects[i].Category)
	}
}

// stage writes the rendered document and any uploads into a fresh
// per-request directory and loads the artifact bytes for committing.
// Committed paths are fixed (index.html, resume.pdf, headshot.jpg) because
// the rendered document links to them by those relative names.
func (u *portfolioUsecase) stage(html string, req *domain.PortfolioRequest) (*domain.GeneratedSite, string, error) {
	dir, err := os.MkdirTemp("", "eportfolio-*")
	if err != nil {
		return nil, "", fmt.Errorf("create staging dir: %w", err)
	}

	htmlBytes := []byte(html)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), htmlBytes, 0o644); err != nil {
		return nil, dir, fmt.Errorf("stage index.html: %w", err)
	}

	site := &domain.GeneratedSite{
		HTML:      html,
		Artifacts: []domain.Artifact{{Path: "index.html", Content: htmlBytes}},
	}

	if req.Resume != nil {
		content, err := stageCopy(req.Resume.Path, filepath.Join(dir, "resume.pdf"))
		if err != nil {
			return nil, dir, fmt.Errorf("stage resume: %w", err)
		}
		site.Artifacts = append(site.Artifacts, domain.Artifact{Path: "resume.pdf", Content: content})
	}
	if req.Headshot != nil {
		content, err := stageCopy(req.Headshot.Path, filepath.Join(dir, "headshot.jpg"))
		if err != nil {
			return nil, dir, fmt.Errorf("stage headshot: %w", err)
		}
		site.Artifacts = append(site.Artifacts, domain.Artifact{Path: "headshot.jpg", Content: content})
	}

	return site, dir, nil
}

// stageCopy copies src into the staging directory and returns its bytes.
func stageCopy(src, dst string) ([]byte, error) {
	content, err := os.ReadFile(src)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, content, 0o644); err != nil {
		return nil, err
	}
	return content, nil
}

// cleanup removes every local temporary resource of the request. Failures
// are logged and swallowed: by the time cleanup runs the overall result has
// already been determined.
func (u *portfolioUsecase) cleanup(stagingDir string, req *domain.PortfolioRequest) {
	if stagingDir != "" {
		if err := os.RemoveAll(stagingDir); err != nil {
			slog.Warn("failed to remove staging dir", "dir", stagingDir, "error", err)
		}
	}
	for _, upload := range []*domain.UploadedFile{req.Resume, req.Headshot} {
		if upload == nil || upload.Path == "" {
			continue
		}
		if err := os.Remove(upload.Path); err != nil && !os.IsNotExist(err) {
			slog.Warn("failed to remove temp upload", "path", upload.Path, "error", err)
		}
	}
}

// compensate deletes a partially created repository after an abort.
// Only active when configured; the default leaves the orphan in place.
func (u *portfolioUsecase) compensate(ctx context.Context, repoName string) {
	if !u.deleteOrphans {
		return
	}
	if err := u.publisher.DeleteRepository(ctx, repoName); err != nil {
		slog.Warn("failed to delete orphaned repository", "repo", repoName, "error", err)
	}
}

// buildRepoName derives a unique repository name from the sanitized display
// name and a timestamp, e.g. "eportfolio-ada-lovelace-1719412345".
func buildRepoName(displayName string, now time.Time) string {
	slug := strings.ToLower(strings.TrimSpace(displayName))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "site"
	}
	return fmt.Sprintf("eportfolio-%s-%d", slug, now.Unix())
}

func hashContent(html string) string {
	sum := sha256.Sum256([]byte(html))
	return hex.EncodeToString(sum[:])
}
