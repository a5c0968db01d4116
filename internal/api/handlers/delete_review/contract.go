package delete_review

import (
	"context"
)

type ReviewService interface {
	Delete(ctx context.Context, reviewID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
