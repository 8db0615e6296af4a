package db

import "time"

// installationID is the primary key of the only row the table ever holds.
const installationID = 1

type TokenRow struct {
	ID         uint    `gorm:"primaryKey"`
	BotToken   *string
	Team       []byte `gorm:"type:jsonb"`
	AuthedUser []byte `gorm:"type:jsonb"`
	UpdatedAt  time.Time
}

func (TokenRow) TableName() string {
	return "token_records"
}
