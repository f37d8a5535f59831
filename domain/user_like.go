package domain

import (
	"context"
	"time"
)

type LikeTarget string

const (
	LikeTargetPost    LikeTarget = "post"
	LikeTargetComment LikeTarget = "comment"
)

// UserLike is representing a like record
type UserLike struct {
	TargetType LikeTarget
	TargetID   string
	UserID     string
	CreatedAt  time.Time
}

type LikeStateChanges struct {
	ToAdd    []UserLike
	ToRemove []UserLike
}

// LikeLedger persists who liked what
type LikeLedger interface {
	ApplyLikeChanges(ctx context.Context, changes LikeStateChanges) error
}
