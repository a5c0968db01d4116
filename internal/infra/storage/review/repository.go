package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/roomsonrent/rental-service/internal/domain"
	"github.com/roomsonrent/rental-service/pkg/dbmetrics"
	"github.com/roomsonrent/rental-service/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var reviewColumns = []string{
	"id",
	"listing_id",
	"user_id",
	"title",
	"text",
	"rating",
	"created_at",
}

// Repository persistence for reviews
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a review repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a review. One review per (listing, user).
func (r *Repository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reviews").
		Columns("listing_id", "user_id", "title", "text", "rating").
		Values(review.ListingID, review.UserID, review.Title, review.Text, review.Rating).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateReview
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return review, nil
}

// GetByID fetches a review by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var review domain.Review
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&review.ID, &review.ListingID, &review.UserID, &review.Title, &review.Text, &review.Rating, &review.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan review: %v", ErrScanRow, err)
	}

	return &review, nil
}

// GetByListing returns all reviews for a listing, newest first
func (r *Repository) GetByListing(ctx context.Context, listingID int64) ([]*domain.Review, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reviewColumns...).
		From("reviews").
		Where(squirrel.Eq{"listing_id": listingID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByListing - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByListing - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.ListingID, &review.UserID, &review.Title, &review.Text, &review.Rating, &review.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByListing - scan row: %v", ErrScanRow, err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByListing - rows error: %v", ErrScanRow, err)
	}

	return reviews, nil
}

// AggregateForListing recomputes the listing's average rating and review
// count from the reviews table.
func (r *Repository) AggregateForListing(ctx context.Context, listingID int64) (domain.RatingSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(rating), 0)", "COUNT(*)").
		From("reviews").
		Where(squirrel.Eq{"listing_id": listingID}).
		ToSql()

	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: AggregateForListing - build select query: %v", ErrBuildQuery, err)
	}

	var summary domain.RatingSummary
	err = executor.QueryRowContext(ctx, query, args...).Scan(&summary.Average, &summary.NumReviews)
	if err != nil {
		return domain.RatingSummary{}, fmt.Errorf("%w: AggregateForListing - scan summary: %v", ErrScanRow, err)
	}

	return summary, nil
}

// Delete removes a review
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
