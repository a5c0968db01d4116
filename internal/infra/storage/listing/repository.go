package listing

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

var listingColumns = []string{
	"id",
	"title",
	"slug",
	"description",
	"address",
	"location_id",
	"price",
	"discounted_price",
	"property_type",
	"furnishing_status",
	"bedrooms",
	"bathrooms",
	"amenities",
	"rules",
	"featured",
	"verified",
	"active",
	"owner_id",
	"rating",
	"num_reviews",
	"created_at",
	"updated_at",
}

// Repository persistence for listings
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a listing repository
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new listing
func (r *Repository) Create(ctx context.Context, listing *domain.Listing) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("listings").
		Columns(
			"title",
			"slug",
			"description",
			"address",
			"location_id",
			"price",
			"discounted_price",
			"property_type",
			"furnishing_status",
			"bedrooms",
			"bathrooms",
			"amenities",
			"rules",
			"featured",
			"verified",
			"active",
			"owner_id",
		).
		Values(
			listing.Title,
			listing.Slug,
			listing.Description,
			listing.Address,
			listing.LocationID,
			listing.Price,
			listing.DiscountedPrice,
			listing.PropertyType,
			listing.FurnishingStatus,
			listing.Bedrooms,
			listing.Bathrooms,
			pq.Array(listing.Amenities),
			pq.Array(listing.Rules),
			listing.Featured,
			listing.Verified,
			listing.Active,
			listing.OwnerID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&listing.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	listing.CreatedAt = createdAt.Time
	listing.UpdatedAt = updatedAt.Time

	return listing, nil
}

// GetByID fetches a listing by ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(listingColumns...).
		From("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	listing, err := r.scanListing(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrListingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan listing: %v", ErrScanRow, err)
	}

	return listing, nil
}

// List returns listings matching a typed filter, newest first. Every
// comparison is an explicit optional struct field; callers cannot inject
// operators.
func (r *Repository) List(ctx context.Context, filter domain.ListingFilter) ([]*domain.Listing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(listingColumns...).
		From("listings").
		OrderBy("created_at DESC")

	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.PropertyType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"property_type": *filter.PropertyType})
	}
	if filter.MinPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.MinBedrooms != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"bedrooms": *filter.MinBedrooms})
	}
	if filter.Featured != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"featured": *filter.Featured})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"owner_id": *filter.OwnerID})
	}
	if filter.ActiveOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanListings(rows)
}

// Update rewrites a listing's editable fields
func (r *Repository) Update(ctx context.Context, listing *domain.Listing) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("listings").
		Set("title", listing.Title).
		Set("slug", listing.Slug).
		Set("description", listing.Description).
		Set("address", listing.Address).
		Set("location_id", listing.LocationID).
		Set("price", listing.Price).
		Set("discounted_price", listing.DiscountedPrice).
		Set("property_type", listing.PropertyType).
		Set("furnishing_status", listing.FurnishingStatus).
		Set("bedrooms", listing.Bedrooms).
		Set("bathrooms", listing.Bathrooms).
		Set("amenities", pq.Array(listing.Amenities)).
		Set("rules", pq.Array(listing.Rules)).
		Set("featured", listing.Featured).
		Set("verified", listing.Verified).
		Set("active", listing.Active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": listing.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "Update")
}

// UpdateRating writes the re-aggregated review summary onto a listing
func (r *Repository) UpdateRating(ctx context.Context, id int64, summary domain.RatingSummary) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	ratingSet := interface{}(summary.Average)
	if summary.NumReviews == 0 {
		ratingSet = nil
	}

	query, args, err := psqlbuilder.Update("listings").
		Set("rating", ratingSet).
		Set("num_reviews", summary.NumReviews).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRating - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRating - execute update: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "UpdateRating")
}

// Delete removes a listing. Reviews cascade at the schema level.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("listings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return r.requireRow(result, "Delete")
}

func (r *Repository) requireRow(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrListingNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanListing(row rowScanner) (*domain.Listing, error) {
	var listing domain.Listing
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&listing.ID,
		&listing.Title,
		&listing.Slug,
		&listing.Description,
		&listing.Address,
		&listing.LocationID,
		&listing.Price,
		&listing.DiscountedPrice,
		&listing.PropertyType,
		&listing.FurnishingStatus,
		&listing.Bedrooms,
		&listing.Bathrooms,
		pq.Array(&listing.Amenities),
		pq.Array(&listing.Rules),
		&listing.Featured,
		&listing.Verified,
		&listing.Active,
		&listing.OwnerID,
		&listing.Rating,
		&listing.NumReviews,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	listing.CreatedAt = createdAt.Time
	listing.UpdatedAt = updatedAt.Time

	return &listing, nil
}

func (r *Repository) scanListings(rows *sql.Rows) ([]*domain.Listing, error) {
	listings := make([]*domain.Listing, 0)

	for rows.Next() {
		listing, err := r.scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanListings - scan row: %v", ErrScanRow, err)
		}
		listings = append(listings, listing)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanListings - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}
