package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/atelier/internal/platform/errors"
	"github.com/louisbranch/atelier/internal/platform/id"
)

// ErrEmptyTitle indicates a project without a title.
var ErrEmptyTitle = apperrors.New(apperrors.CodeInvalidArgument, "project title is required")

// ErrEmptyImageURL indicates a project image without a source URL.
var ErrEmptyImageURL = apperrors.New(apperrors.CodeInvalidArgument, "image url is required")

// ErrBadImageType indicates an image type outside the known set.
var ErrBadImageType = apperrors.New(apperrors.CodeInvalidArgument, "image type must be before, after, or gallery")

// errNotFound matches any domain error carrying the not-found code.
var errNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// Store is the persistence seam the service needs; the SQLite store
// satisfies it.
type Store interface {
	ListProjects(ctx context.Context) ([]Project, error)
	GetProject(ctx context.Context, projectID string) (Project, error)
	PutProject(ctx context.Context, project Project) error
	DeleteProject(ctx context.Context, projectID string) error

	ListProjectImages(ctx context.Context, projectID string) ([]ProjectImage, error)
	PutProjectImage(ctx context.Context, image ProjectImage) error
	DeleteProjectImage(ctx context.Context, imageID string) error
	UpdateProjectImageOrder(ctx context.Context, imageID string, sortOrder int) error

	GetSiteSettings(ctx context.Context) (SiteSettings, error)
	PutSiteSettings(ctx context.Context, settings SiteSettings) error
}

// Service owns gallery content lifecycle on top of a Store.
type Service struct {
	store       Store
	clock       func() time.Time
	idGenerator func() (string, error)
}

// NewService creates a Service with default clock and ID generation.
func NewService(store Store) *Service {
	return &Service{
		store:       store,
		clock:       time.Now,
		idGenerator: id.NewID,
	}
}

// NewServiceWithDeps creates a Service with injected dependencies for tests.
func NewServiceWithDeps(store Store, clock func() time.Time, idGenerator func() (string, error)) *Service {
	if clock == nil {
		clock = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return &Service{store: store, clock: clock, idGenerator: idGenerator}
}

// ProjectInput describes project fields supplied by the admin panel.
type ProjectInput struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Year          int    `json:"year"`
	CoverImageURL string `json:"coverImageUrl"`
	SortOrder     int    `json:"sortOrder"`
}

// ListProjects returns all projects, newest first.
func (s *Service) ListProjects(ctx context.Context) ([]Project, error) {
	return s.store.ListProjects(ctx)
}

// GetProject returns one project by ID.
func (s *Service) GetProject(ctx context.Context, projectID string) (Project, error) {
	return s.store.GetProject(ctx, projectID)
}

// CreateProject validates and persists a new project.
func (s *Service) CreateProject(ctx context.Context, input ProjectInput) (Project, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Project{}, ErrEmptyTitle
	}

	projectID, err := s.idGenerator()
	if err != nil {
		return Project{}, fmt.Errorf("generate project id: %w", err)
	}

	now := s.clock().UTC()
	project := Project{
		ID:            projectID,
		Title:         input.Title,
		Description:   strings.TrimSpace(input.Description),
		Category:      strings.TrimSpace(input.Category),
		Year:          input.Year,
		CoverImageURL: strings.TrimSpace(input.CoverImageURL),
		SortOrder:     input.SortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.PutProject(ctx, project); err != nil {
		return Project{}, fmt.Errorf("put project: %w", err)
	}
	return project, nil
}

// UpdateProject loads, patches, and persists an existing project.
func (s *Service) UpdateProject(ctx context.Context, projectID string, input ProjectInput) (Project, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return Project{}, err
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return Project{}, ErrEmptyTitle
	}
	project.Title = input.Title
	project.Description = strings.TrimSpace(input.Description)
	project.Category = strings.TrimSpace(input.Category)
	project.Year = input.Year
	project.CoverImageURL = strings.TrimSpace(input.CoverImageURL)
	project.SortOrder = input.SortOrder
	project.UpdatedAt = s.clock().UTC()

	if err := s.store.PutProject(ctx, project); err != nil {
		return Project{}, fmt.Errorf("put project: %w", err)
	}
	return project, nil
}

// DeleteProject removes a project and, through the store's cascade, its
// image rows.
func (s *Service) DeleteProject(ctx context.Context, projectID string) error {
	return s.store.DeleteProject(ctx, projectID)
}

// ListProjectImages returns a project's images in sort order.
func (s *Service) ListProjectImages(ctx context.Context, projectID string) ([]ProjectImage, error) {
	return s.store.ListProjectImages(ctx, projectID)
}

// ImageInput describes a project image attachment.
type ImageInput struct {
	ImageURL  string `json:"imageUrl"`
	ImageType string `json:"imageType"`
	SortOrder int    `json:"sortOrder"`
}

// AddProjectImage validates and persists a new image for the project.
func (s *Service) AddProjectImage(ctx context.Context, projectID string, input ImageInput) (ProjectImage, error) {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return ProjectImage{}, err
	}
	input.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.ImageURL == "" {
		return ProjectImage{}, ErrEmptyImageURL
	}
	imageType := strings.TrimSpace(input.ImageType)
	switch imageType {
	case "":
		imageType = ImageTypeGallery
	case ImageTypeBefore, ImageTypeAfter, ImageTypeGallery:
	default:
		return ProjectImage{}, ErrBadImageType
	}

	imageID, err := s.idGenerator()
	if err != nil {
		return ProjectImage{}, fmt.Errorf("generate image id: %w", err)
	}

	image := ProjectImage{
		ID:        imageID,
		ProjectID: projectID,
		ImageURL:  input.ImageURL,
		ImageType: imageType,
		SortOrder: input.SortOrder,
		CreatedAt: s.clock().UTC(),
	}
	if err := s.store.PutProjectImage(ctx, image); err != nil {
		return ProjectImage{}, fmt.Errorf("put project image: %w", err)
	}
	return image, nil
}

// DeleteProjectImage removes one image attachment.
func (s *Service) DeleteProjectImage(ctx context.Context, imageID string) error {
	return s.store.DeleteProjectImage(ctx, imageID)
}

// ReorderProjectImage updates an image's sort position.
func (s *Service) ReorderProjectImage(ctx context.Context, imageID string, sortOrder int) error {
	return s.store.UpdateProjectImageOrder(ctx, imageID, sortOrder)
}

// GetSiteSettings returns the settings singleton; a missing row yields the
// zero value rather than an error.
func (s *Service) GetSiteSettings(ctx context.Context) (SiteSettings, error) {
	settings, err := s.store.GetSiteSettings(ctx)
	if err != nil {
		if errors.Is(err, errNotFound) {
			return SiteSettings{}, nil
		}
		return SiteSettings{}, err
	}
	return settings, nil
}

// UpdateSiteSettings upserts the settings singleton.
func (s *Service) UpdateSiteSettings(ctx context.Context, settings SiteSettings) (SiteSettings, error) {
	settings.HeroImageURL = strings.TrimSpace(settings.HeroImageURL)
	settings.UpdatedAt = s.clock().UTC()
	if err := s.store.PutSiteSettings(ctx, settings); err != nil {
		return SiteSettings{}, fmt.Errorf("put site settings: %w", err)
	}
	return settings, nil
}
