package model

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Text         string     `gorm:"type:text;not null"`
	Sentiment    string     `gorm:"type:varchar(4);not null;default:'UNKN';index"`
	CustomerName *string    `gorm:"type:varchar(100)"`
	FeedbackDate *time.Time `gorm:"type:date"`
	ProductArea  *string    `gorm:"type:varchar(100);index"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index"`

	Session AnalysisSession `gorm:"foreignKey:SessionId"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
