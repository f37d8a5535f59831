package mysql

import (
	"context"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/social-feed/domain"
	"github.com/Guyuepp/social-feed/internal/repository/mysql/model"
)

type likeLedger struct {
	DB *gorm.DB
}

var _ domain.LikeLedger = (*likeLedger)(nil)

func NewLikeLedger(db *gorm.DB) *likeLedger {
	return &likeLedger{DB: db}
}

// ApplyLikeChanges removes and inserts like records in one transaction.
// Inserting a like that is already recorded is a no-op.
func (l *likeLedger) ApplyLikeChanges(ctx context.Context, changes domain.LikeStateChanges) error {
	if len(changes.ToAdd) == 0 && len(changes.ToRemove) == 0 {
		return nil
	}

	return l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, row := range changes.ToRemove {
			if err := tx.Where("target_type = ? AND target_id = ? AND user_id = ?",
				string(row.TargetType), row.TargetID, row.UserID).
				Delete(&model.UserLike{}).Error; err != nil {
				return err
			}
		}

		toAdd := make([]model.UserLike, 0, len(changes.ToAdd))
		for _, row := range changes.ToAdd {
			if row.TargetID == "" || row.UserID == "" {
				logrus.Warnf("Dropped like with missing ids: %s %q by %q", row.TargetType, row.TargetID, row.UserID)
				continue
			}
			toAdd = append(toAdd, model.NewUserLikeFromDomain(row))
		}
		if len(toAdd) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				DoNothing: true,
			}).Create(&toAdd).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
