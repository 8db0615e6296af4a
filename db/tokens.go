package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"SlackSandbox/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TokenStore keeps the installation record in a single database row.
type TokenStore struct {
	DB *gorm.DB
}

func NewTokenStore(conn *gorm.DB) *TokenStore {
	return &TokenStore{DB: conn}
}

func (s *TokenStore) Save(ctx context.Context, record store.TokenRecord) error {
	row, err := toRow(record)
	if err != nil {
		return err
	}
	row.UpdatedAt = time.Now().UTC()

	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"bot_token", "team", "authed_user", "updated_at"}),
	}).Create(&row).Error
}

func (s *TokenStore) Load(ctx context.Context) store.LoadResult {
	var row TokenRow
	if err := s.DB.WithContext(ctx).Where("id = ?", installationID).First(&row).Error; err != nil {
		return store.LoadResult{Err: err}
	}
	record, err := fromRow(row)
	if err != nil {
		return store.LoadResult{Err: err}
	}
	return store.LoadResult{Record: record}
}

func toRow(record store.TokenRecord) (TokenRow, error) {
	team, err := encodeObject(record.Team)
	if err != nil {
		return TokenRow{}, fmt.Errorf("encode team: %w", err)
	}
	user, err := json.Marshal(record.AuthedUser)
	if err != nil {
		return TokenRow{}, fmt.Errorf("encode authed_user: %w", err)
	}
	return TokenRow{ID: installationID, BotToken: record.BotToken, Team: team, AuthedUser: user}, nil
}

func fromRow(row TokenRow) (store.TokenRecord, error) {
	record := store.TokenRecord{BotToken: row.BotToken}
	if len(row.Team) > 0 {
		if err := json.Unmarshal(row.Team, &record.Team); err != nil {
			return store.TokenRecord{}, fmt.Errorf("decode team: %w", err)
		}
	}
	if len(row.AuthedUser) > 0 {
		if err := json.Unmarshal(row.AuthedUser, &record.AuthedUser); err != nil {
			return store.TokenRecord{}, fmt.Errorf("decode authed_user: %w", err)
		}
	}
	return record, nil
}

// encodeObject returns nil for an absent object so the column stays NULL.
func encodeObject(obj map[string]any) ([]byte, error) {
	if obj == nil {
		return nil, nil
	}
	return json.Marshal(obj)
}
