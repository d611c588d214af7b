package gormrepo

import (
	"context"
	"errors"

	"undercity/internal/adapter/repo/gorm/model"
	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CrimeHistoryRepo struct {
	db *gorm.DB
}

func NewCrimeHistoryRepo(db *gorm.DB) CrimeHistoryRepo {
	return CrimeHistoryRepo{db: db}
}

func (r CrimeHistoryRepo) GetByIdempotencyKey(ctx context.Context, characterID, key string) (*ports.CrimeHistoryRecord, error) {
	var m model.CrimeHistory
	err := getDBFromCtx(ctx, r.db).
		Where(&model.CrimeHistory{CharacterID: characterID, IdempotencyKey: key}).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	record := recordFromModel(m)
	return &record, nil
}

func (r CrimeHistoryRepo) Append(ctx context.Context, record ports.CrimeHistoryRecord) error {
	m := model.CrimeHistory{
		CharacterID:    record.CharacterID,
		IdempotencyKey: record.IdempotencyKey,
		CrimeID:        record.Outcome.CrimeID,
		Success:        record.Outcome.Success,
		Reward:         record.Outcome.Reward,
		JailMinutes:    int32(record.Outcome.JailMinutes),
		XpGained:       int32(record.Outcome.XPGained),
		LeveledUp:      record.Outcome.LeveledUp,
		OccurredAt:     record.Outcome.OccurredAt,
		AppliedAt:      record.AppliedAt,
	}
	return getDBFromCtx(ctx, r.db).Create(&m).Error
}

func (r CrimeHistoryRepo) ListByCharacterID(ctx context.Context, characterID string, limit int) ([]ports.CrimeHistoryRecord, error) {
	rows := []model.CrimeHistory{}
	query := getDBFromCtx(ctx, r.db).
		Where(&model.CrimeHistory{CharacterID: characterID}).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "applied_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.CrimeHistoryRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, recordFromModel(row))
	}
	return out, nil
}

func recordFromModel(m model.CrimeHistory) ports.CrimeHistoryRecord {
	return ports.CrimeHistoryRecord{
		CharacterID:    m.CharacterID,
		IdempotencyKey: m.IdempotencyKey,
		Outcome: crime.ResolutionOutcome{
			CrimeID:     m.CrimeID,
			Success:     m.Success,
			Reward:      m.Reward,
			JailMinutes: int(m.JailMinutes),
			XPGained:    int(m.XpGained),
			LeveledUp:   m.LeveledUp,
			OccurredAt:  m.OccurredAt,
		},
		AppliedAt: m.AppliedAt,
	}
}
