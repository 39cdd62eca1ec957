package model

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisSession struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionNumber  int       `gorm:"uniqueIndex;not null"`
	SourceFilename *string   `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`

	// Cascade is enforced at the database level; the service still deletes
	// feedbacks inside the same transaction for clarity.
	Feedbacks []Feedback `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (AnalysisSession) TableName() string {
	return "analysis_sessions"
}
