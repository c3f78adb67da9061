package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/atelier/internal/gallery"
	"github.com/louisbranch/atelier/internal/storage"
)

// ListProjects returns all projects, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]gallery.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, title, description, category, year, cover_image_url, sort_order, created_at, updated_at
		   FROM projects
		  ORDER BY created_at DESC, id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []gallery.Project
	for rows.Next() {
		var project gallery.Project
		var createdAt int64
		var updatedAt int64
		if err := rows.Scan(
			&project.ID,
			&project.Title,
			&project.Description,
			&project.Category,
			&project.Year,
			&project.CoverImageURL,
			&project.SortOrder,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		project.CreatedAt = fromMillis(createdAt)
		project.UpdatedAt = fromMillis(updatedAt)
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns one project by ID.
func (s *Store) GetProject(ctx context.Context, projectID string) (gallery.Project, error) {
	if err := ctx.Err(); err != nil {
		return gallery.Project{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gallery.Project{}, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return gallery.Project{}, fmt.Errorf("project id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, title, description, category, year, cover_image_url, sort_order, created_at, updated_at
		   FROM projects
		  WHERE id = ?`,
		projectID,
	)
	var project gallery.Project
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.Category,
		&project.Year,
		&project.CoverImageURL,
		&project.SortOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gallery.Project{}, storage.ErrNotFound
		}
		return gallery.Project{}, fmt.Errorf("get project: %w", err)
	}
	project.CreatedAt = fromMillis(createdAt)
	project.UpdatedAt = fromMillis(updatedAt)
	return project, nil
}

// PutProject upserts one project record.
func (s *Store) PutProject(ctx context.Context, project gallery.Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(project.ID) == "" {
		return fmt.Errorf("project id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO projects (id, title, description, category, year, cover_image_url, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   category = excluded.category,
		   year = excluded.year,
		   cover_image_url = excluded.cover_image_url,
		   sort_order = excluded.sort_order,
		   updated_at = excluded.updated_at`,
		project.ID,
		project.Title,
		project.Description,
		project.Category,
		project.Year,
		project.CoverImageURL,
		project.SortOrder,
		toMillis(project.CreatedAt),
		toMillis(project.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put project: %w", err)
	}
	return nil
}

// DeleteProject removes one project; its image rows go with it through the
// foreign-key cascade.
func (s *Store) DeleteProject(ctx context.Context, projectID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// ListProjectImages returns a project's images ordered by sort position.
func (s *Store) ListProjectImages(ctx context.Context, projectID string) ([]gallery.ProjectImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, fmt.Errorf("project id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, project_id, image_url, image_type, sort_order, created_at
		   FROM project_images
		  WHERE project_id = ?
		  ORDER BY sort_order ASC, created_at ASC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	defer rows.Close()

	var images []gallery.ProjectImage
	for rows.Next() {
		var image gallery.ProjectImage
		var createdAt int64
		if err := rows.Scan(
			&image.ID,
			&image.ProjectID,
			&image.ImageURL,
			&image.ImageType,
			&image.SortOrder,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("list project images: %w", err)
		}
		image.CreatedAt = fromMillis(createdAt)
		images = append(images, image)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list project images: %w", err)
	}
	return images, nil
}

// PutProjectImage upserts one project image record.
func (s *Store) PutProjectImage(ctx context.Context, image gallery.ProjectImage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(image.ID) == "" {
		return fmt.Errorf("image id is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO project_images (id, project_id, image_url, image_type, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   image_url = excluded.image_url,
		   image_type = excluded.image_type,
		   sort_order = excluded.sort_order`,
		image.ID,
		image.ProjectID,
		image.ImageURL,
		image.ImageType,
		image.SortOrder,
		toMillis(image.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put project image: %w", err)
	}
	return nil
}

// DeleteProjectImage removes one project image.
func (s *Store) DeleteProjectImage(ctx context.Context, imageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return nil
	}

	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM project_images WHERE id = ?`, imageID); err != nil {
		return fmt.Errorf("delete project image: %w", err)
	}
	return nil
}

// UpdateProjectImageOrder moves one image to a new sort position.
func (s *Store) UpdateProjectImageOrder(ctx context.Context, imageID string, sortOrder int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return fmt.Errorf("image id is required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE project_images SET sort_order = ? WHERE id = ?`,
		sortOrder,
		imageID,
	)
	if err != nil {
		return fmt.Errorf("update project image order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project image order: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetSiteSettings returns the settings singleton row.
func (s *Store) GetSiteSettings(ctx context.Context) (gallery.SiteSettings, error) {
	if err := ctx.Err(); err != nil {
		return gallery.SiteSettings{}, err
	}
	if s == nil || s.sqlDB == nil {
		return gallery.SiteSettings{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT hero_image_url, updated_at FROM site_settings WHERE id = 1`,
	)
	var settings gallery.SiteSettings
	var updatedAt int64
	err := row.Scan(&settings.HeroImageURL, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return gallery.SiteSettings{}, storage.ErrNotFound
		}
		return gallery.SiteSettings{}, fmt.Errorf("get site settings: %w", err)
	}
	settings.UpdatedAt = fromMillis(updatedAt)
	return settings, nil
}

// PutSiteSettings upserts the settings singleton row.
func (s *Store) PutSiteSettings(ctx context.Context, settings gallery.SiteSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO site_settings (id, hero_image_url, updated_at)
		 VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   hero_image_url = excluded.hero_image_url,
		   updated_at = excluded.updated_at`,
		settings.HeroImageURL,
		toMillis(settings.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put site settings: %w", err)
	}
	return nil
}
