package adapter

import (
	"context"

	"go.temporal.io/sdk/activity"
)

// Activity defines an interface for activity operations
//
//go:generate mockgen -source=temporal.go -destination=../mocks/temporal.go -package=mocks -mock_names=Activity=MockActivity
type Activity interface {
	// RecordHeartbeat reports progress so long batches are not timed out
	RecordHeartbeat(ctx context.Context, details ...interface{})
	// IsActivity reports whether ctx belongs to a running activity
	IsActivity(ctx context.Context) bool
}

// RealActivity implements Activity using the standard activity package
type RealActivity struct{}

// NewActivity creates a new real activity implementation
func NewActivity() Activity {
	return &RealActivity{}
}

func (a *RealActivity) RecordHeartbeat(ctx context.Context, details ...interface{}) {
	if !activity.IsActivity(ctx) {
		return
	}
	activity.RecordHeartbeat(ctx, details...)
}

func (a *RealActivity) IsActivity(ctx context.Context) bool {
	return activity.IsActivity(ctx)
}
