package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/metrics"
)

const (
	batchSize     = 100
	flushInterval = 1 * time.Second
)

type LikeTask struct {
	TargetType domain.LikeTarget
	TargetID   string
	UserID     string
	Action     domain.LikeAction
	CreatedAt  time.Time
}

type syncLikesWorker struct {
	ledger domain.LikeLedger
	ch     chan LikeTask
}

var _ domain.SyncLikesWorker = (*syncLikesWorker)(nil)

func NewSyncLikesWorker(ledger domain.LikeLedger) *syncLikesWorker {
	return &syncLikesWorker{
		ledger: ledger,
		ch:     make(chan LikeTask, 1024),
	}
}

// Send adds a like record if action == Like, and removes a like record if action == Unlike.
// It never blocks; tasks are dropped when the queue is full.
func (s *syncLikesWorker) Send(likeRecord domain.UserLike, action domain.LikeAction) {
	task := LikeTask{
		TargetType: likeRecord.TargetType,
		TargetID:   likeRecord.TargetID,
		UserID:     likeRecord.UserID,
		Action:     action,
		CreatedAt:  likeRecord.CreatedAt,
	}
	select {
	case s.ch <- task:
	default:
		metrics.LikeTasksDropped.Inc()
		logrus.Warnf("SyncLikesWorker's channel is full, %s task for %s %s dropped", action, task.TargetType, task.TargetID)
	}
}

// Start blocks until ctx is done, then flushes whatever is still queued
func (s *syncLikesWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]LikeTask, 0, batchSize)
	for {
		select {
		case task := <-s.ch:
			batch = append(batch, task)
			if len(batch) == batchSize {
				s.flush(ctx, batch)
				batch = make([]LikeTask, 0, batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]LikeTask, 0, batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down SyncLikesWorker, flushing remain tasks...")
			for {
				select {
				case task := <-s.ch:
					batch = append(batch, task)
				default:
					s.flush(context.WithoutCancel(ctx), batch)
					return
				}
			}
		}
	}
}

type taskKey struct {
	target domain.LikeTarget
	tid    string
	uid    string
}

// flush 同一用户对同一目标的多次操作只保留最后一次
func (s *syncLikesWorker) flush(ctx context.Context, batch []LikeTask) {
	if len(batch) == 0 {
		return
	}

	tasks := make(map[taskKey]LikeTask, len(batch))
	for _, task := range batch {
		tasks[taskKey{task.TargetType, task.TargetID, task.UserID}] = task
	}

	var changes domain.LikeStateChanges
	for key, task := range tasks {
		like := domain.UserLike{
			TargetType: key.target,
			TargetID:   key.tid,
			UserID:     key.uid,
			CreatedAt:  task.CreatedAt,
		}
		switch task.Action {
		case domain.Like:
			changes.ToAdd = append(changes.ToAdd, like)
		case domain.Unlike:
			changes.ToRemove = append(changes.ToRemove, like)
		default:
			logrus.Errorf("Unsupported action: %v", task.Action)
		}
	}
	if err := s.ledger.ApplyLikeChanges(ctx, changes); err != nil {
		metrics.LikeFlushes.WithLabelValues("failure").Inc()
		logrus.Errorf("failed to sync %d like changes: %v", len(tasks), err)
		return
	}
	metrics.LikeFlushes.WithLabelValues("success").Inc()
}
