package sqlite

import (
	"context"

	"github.com/personachat/backend/internal/models"
	"gorm.io/gorm"
)

// TurnRepository is the append-only conversation store. There is no update
// or delete: turns are immutable once written.
type TurnRepository interface {
	Insert(ctx context.Context, turn *models.ConversationTurn) error
	ListBySession(ctx context.Context, sessionID string) ([]models.ConversationTurn, error)
}

type turnRepo struct {
	db *gorm.DB
}

func NewTurnRepo(db *gorm.DB) TurnRepository {
	return &turnRepo{db: db}
}

func (r *turnRepo) Insert(ctx context.Context, turn *models.ConversationTurn) error {
	return r.db.WithContext(ctx).Create(turn).Error
}

// ListBySession returns every turn of the session in insertion order.
// History reconstruction depends on ascending id, so no limit is applied.
func (r *turnRepo) ListBySession(ctx context.Context, sessionID string) ([]models.ConversationTurn, error) {
	var rows []models.ConversationTurn
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}
