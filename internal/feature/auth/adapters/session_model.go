package adapters

import (
	"time"

	"receitas_backend/internal/feature/auth/domain/entity"
)

// SessionModel is the GORM model for the sessoes table.
type SessionModel struct {
	Token     string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"column:id_usuario;index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "sessoes"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.Session {
	return &entity.Session{
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.Session) *SessionModel {
	return &SessionModel{
		Token:     s.Token,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
}
