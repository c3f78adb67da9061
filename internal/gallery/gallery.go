// Package gallery provides the portfolio content model: projects, their
// images, and the site settings singleton.
package gallery

import "time"

// Project is a portfolio entry shown in the public gallery.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Category      string    `json:"category,omitempty"`
	Year          int       `json:"year,omitempty"`
	CoverImageURL string    `json:"coverImageUrl,omitempty"`
	SortOrder     int       `json:"sortOrder"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Image types group a project's attachments into the sections the
// gallery renders.
const (
	ImageTypeBefore  = "before"
	ImageTypeAfter   = "after"
	ImageTypeGallery = "gallery"
)

// ProjectImage is one ordered media attachment of a project.
type ProjectImage struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"projectId"`
	ImageURL  string    `json:"imageUrl"`
	ImageType string    `json:"imageType"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
}

// SiteSettings is the single row of site-wide presentation settings.
type SiteSettings struct {
	HeroImageURL string    `json:"heroImageUrl,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
