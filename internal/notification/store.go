package notification

import (
	"context"

	"gorm.io/gorm"

	"github.com/agendaplus/salon-scheduler/internal/models"
)

// Store persiste notificações. A entrega externa (e-mail, SMS) fica fora;
// aqui elas só ficam disponíveis para o endpoint de listagem.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, userID, typ, message string) error {
	n := models.Notification{
		UserID:  userID,
		Type:    typ,
		Message: message,
	}
	return s.db.WithContext(ctx).Create(&n).Error
}

func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var list []models.Notification
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Store) MarkRead(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true).Error
}
