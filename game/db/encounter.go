package db

import (
	"context"
	"strconv"

	"gorm.io/gorm"
)

// Encounter is the record of one battle of a session
type Encounter struct {
	gorm.Model
	SessionID        string `gorm:"index"`
	EncounterID      string `gorm:"uniqueIndex"`
	Monster          string
	Outcome          string
	Rounds           int
	PlayerHealth     int
	ExperienceGained int
	Level            int
}

func (e Encounter) String() string {
	return e.Monster + " - " + e.Outcome +
		" in " + strconv.Itoa(e.Rounds) + " rounds, " +
		strconv.Itoa(e.PlayerHealth) + " HP left, +" +
		strconv.Itoa(e.ExperienceGained) + " XP (level " + strconv.Itoa(e.Level) + ")"
}

func (db *DB) RecordEncounter(ctx context.Context, e Encounter) error {
	return db.WithContext(ctx).Create(&e).Error
}

// FetchEncounters returns the encounters of a session in the order they were fought
func (db *DB) FetchEncounters(ctx context.Context, sessionID string) (es []Encounter, e error) {
	e = db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id").
		Find(&es).Error
	return
}
