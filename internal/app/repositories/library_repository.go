package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bmefuto/portal/internal/app/models"
	"github.com/bmefuto/portal/internal/pkg/apperrors"
	"github.com/bmefuto/portal/internal/pkg/logger"
)

// LibraryFilter holds the optional filters for listing library resources.
type LibraryFilter struct {
	Category string
	Level    string
}

// LibraryRepository handles library resource database operations
type LibraryRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLibraryRepository creates a new LibraryRepository
func NewLibraryRepository(db *pgxpool.Pool) *LibraryRepository {
	return &LibraryRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var libraryColumns = []string{
	"id", "title", "author", "category", "description", "link",
	"cover_image_url", "level", "uploaded_by", "created_at", "updated_at",
}

func scanLibraryResource(row pgx.Row) (*models.LibraryResource, error) {
	var res models.LibraryResource
	err := row.Scan(
		&res.ID, &res.Title, &res.Author, &res.Category, &res.Description, &res.Link,
		&res.CoverImageURL, &res.Level, &res.UploadedBy, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *LibraryRepository) applyFilter(builder squirrel.SelectBuilder, filter LibraryFilter) squirrel.SelectBuilder {
	if filter.Category != "" {
		builder = builder.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Level != "" {
		builder = builder.Where(squirrel.Eq{"level": filter.Level})
	}
	return builder
}

// GetAll lists library resources matching the filter, newest first.
func (r *LibraryRepository) GetAll(ctx context.Context, filter LibraryFilter, offset, limit int) ([]models.LibraryResource, error) {
	builder := r.applyFilter(r.sb.Select(libraryColumns...).From("library_resources"), filter).
		OrderBy("created_at DESC").
		Offset(uint64(offset))
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list library resources query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query library resources: %w", err)
	}
	defer rows.Close()

	var resources []models.LibraryResource
	for rows.Next() {
		res, err := scanLibraryResource(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan library resource row: %w", err)
		}
		resources = append(resources, *res)
	}
	return resources, rows.Err()
}

// Count returns the number of library resources matching the filter
func (r *LibraryRepository) Count(ctx context.Context, filter LibraryFilter) (int64, error) {
	sql, args, err := r.applyFilter(r.sb.Select("COUNT(*)").From("library_resources"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count library resources query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count library resources: %w", err)
	}
	return count, nil
}

// GetByID retrieves one library resource
func (r *LibraryRepository) GetByID(ctx context.Context, id int64) (*models.LibraryResource, error) {
	sql, args, err := r.sb.Select(libraryColumns...).
		From("library_resources").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get library resource query: %w", err)
	}

	res, err := scanLibraryResource(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceItemNotFound
		}
		return nil, fmt.Errorf("error querying library resource ID=%d: %w", id, err)
	}
	return res, nil
}

// Create inserts a new library resource
func (r *LibraryRepository) Create(ctx context.Context, res *models.LibraryResource) (int64, error) {
	sql, args, err := r.sb.Insert("library_resources").
		Columns("title", "author", "category", "description", "link", "cover_image_url", "level", "uploaded_by").
		Values(res.Title, res.Author, res.Category, res.Description, res.Link, res.CoverImageURL, res.Level, res.UploadedBy).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create library resource query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error inserting library resource: %w", err)
	}
	logger.Info().Int64("resourceID", id).Str("title", res.Title).Msg("Library resource created")
	return id, nil
}

// Update updates an existing library resource
func (r *LibraryRepository) Update(ctx context.Context, res *models.LibraryResource) error {
	sql, args, err := r.sb.Update("library_resources").
		SetMap(map[string]interface{}{
			"title":           res.Title,
			"author":          res.Author,
			"category":        res.Category,
			"description":     res.Description,
			"link":            res.Link,
			"cover_image_url": res.CoverImageURL,
			"level":           res.Level,
			"updated_at":      squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update library resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating library resource ID=%d: %w", res.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceItemNotFound
	}
	return nil
}

// Delete removes a library resource
func (r *LibraryRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("library_resources").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete library resource query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error deleting library resource ID=%d: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrResourceItemNotFound
	}
	return nil
}
