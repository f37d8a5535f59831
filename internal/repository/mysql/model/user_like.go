package model

import (
	"time"

	"github.com/Guyuepp/social-feed/domain"
)

type UserLike struct {
	TargetType string    `gorm:"column:target_type;type:varchar(16);primaryKey"`
	TargetID   string    `gorm:"column:target_id;type:varchar(64);primaryKey"`
	UserID     string    `gorm:"column:user_id;type:varchar(64);primaryKey"`
	CreatedAt  time.Time `gorm:"type:datetime"`
}

func (UserLike) TableName() string {
	return "user_likes"
}

func NewUserLikeFromDomain(ul domain.UserLike) UserLike {
	return UserLike{
		TargetType: string(ul.TargetType),
		TargetID:   ul.TargetID,
		UserID:     ul.UserID,
		CreatedAt:  ul.CreatedAt,
	}
}
