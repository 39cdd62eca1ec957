package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sentia-be/internal/entity"
)

// BySessionID filters feedbacks belonging to one analysis session.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedbacks.session_id = ?", s.SessionID)
}

// BySentiment is an exact match on the stored sentiment code.
type BySentiment struct {
	Sentiment entity.Sentiment
}

func (s BySentiment) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedbacks.sentiment = ?", string(s.Sentiment))
}

// ProductAreaContains is a case-insensitive substring match. The term is
// matched literally: LIKE metacharacters in user input are escaped so "100%"
// never acts as a wildcard.
type ProductAreaContains struct {
	Term string
}

func (s ProductAreaContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedbacks.product_area ILIKE ?", "%"+escapeLike(s.Term)+"%")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
