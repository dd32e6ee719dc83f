package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdg-garage/hotel-web/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore keeps one row per session key.
type SQLStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewSQLStore(db *gorm.DB, ttl time.Duration) *SQLStore {
	return &SQLStore{db: db, ttl: ttl, now: time.Now}
}

func (s *SQLStore) Get(ctx context.Context, sid, key string, dst any) (bool, error) {
	var entry models.SessionEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND entry_key = ? AND expires_at > ?", sid, key, s.now()).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load session %s/%s: %w", sid, key, err)
	}
	return true, decode(entry.Payload, dst)
}

func (s *SQLStore) Set(ctx context.Context, sid, key string, value any) error {
	payload, err := encode(value)
	if err != nil {
		return err
	}

	entry := models.SessionEntry{
		SessionID: sid,
		Key:       key,
		Payload:   payload,
		ExpiresAt: s.now().Add(s.ttl),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "entry_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "expires_at", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("save session %s/%s: %w", sid, key, err)
	}
	return nil
}

// PurgeExpired deletes rows past their expiry and returns how many went.
func (s *SQLStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&models.SessionEntry{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge expired sessions: %w", res.Error)
	}
	return res.RowsAffected, nil
}
