package service

import (
	"context"
)

// LikeEvent is the payload delivered to a shop owner when a customer likes
// one of their products.
type LikeEvent struct {
	ProductName string
	ActorName   string
}

// Notifier delivers events through an external notification service.
// Delivery is best effort; callers must not treat a failure as fatal.
type Notifier interface {
	NotifyProductLiked(ctx context.Context, recipientUserID string, event LikeEvent) error
}
