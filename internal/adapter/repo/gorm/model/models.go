package model

import "time"

type Character struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	CharacterID   string     `gorm:"column:character_id;uniqueIndex"`
	Name          string     `gorm:"column:name"`
	Level         int32      `gorm:"column:level"`
	Xp            int64      `gorm:"column:xp"`
	XpNeeded      int64      `gorm:"column:xp_needed"`
	Energy        int32      `gorm:"column:energy"`
	MaxEnergy     int32      `gorm:"column:max_energy"`
	Health        int32      `gorm:"column:health"`
	MaxHealth     int32      `gorm:"column:max_health"`
	Reputation    int32      `gorm:"column:reputation"`
	Cash          int64      `gorm:"column:cash"`
	DirtyCash     int64      `gorm:"column:dirty_cash"`
	City          string     `gorm:"column:city"`
	Jailed        bool       `gorm:"column:jailed"`
	JailReleaseAt *time.Time `gorm:"column:jail_release_at"`
	Version       int64      `gorm:"column:version"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Character) TableName() string { return "characters" }

type CrimeHistory struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	CharacterID    string    `gorm:"column:character_id;index;uniqueIndex:idx_crime_history_idem,priority:1"`
	IdempotencyKey string    `gorm:"column:idempotency_key;uniqueIndex:idx_crime_history_idem,priority:2"`
	CrimeID        string    `gorm:"column:crime_id"`
	Success        bool      `gorm:"column:success"`
	Reward         int64     `gorm:"column:reward"`
	JailMinutes    int32     `gorm:"column:jail_minutes"`
	XpGained       int32     `gorm:"column:xp_gained"`
	LeveledUp      bool      `gorm:"column:leveled_up"`
	OccurredAt     time.Time `gorm:"column:occurred_at"`
	AppliedAt      time.Time `gorm:"column:applied_at"`
}

func (CrimeHistory) TableName() string { return "crime_history" }

type GameEvent struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventID    string    `gorm:"column:event_id;uniqueIndex"`
	Type       string    `gorm:"column:type"`
	Message    string    `gorm:"column:message"`
	ActorID    string    `gorm:"column:actor_id;index"`
	OccurredAt time.Time `gorm:"column:occurred_at;index"`
	Payload    []byte    `gorm:"column:payload"`
}

func (GameEvent) TableName() string { return "game_events" }
