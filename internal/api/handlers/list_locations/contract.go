package list_locations

import (
	"context"

	"github.com/roomsonrent/rental-service/internal/service/locations/models"
)

type LocationService interface {
	List(ctx context.Context) (*models.LocationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
