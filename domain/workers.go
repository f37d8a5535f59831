package domain

import "context"

type LikeAction int8

const (
	Like   LikeAction = 1
	Unlike LikeAction = -1
)

func (l LikeAction) String() string {
	switch l {
	case Like:
		return "ADD"
	case Unlike:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// LikeRecorder is the part of the like worker the services see
type LikeRecorder interface {
	// Send adds a like record if action == Like, and removes a like record if action == Unlike
	Send(likeRecord UserLike, action LikeAction)
}

type SyncLikesWorker interface {
	LikeRecorder
	Start(ctx context.Context)
}
