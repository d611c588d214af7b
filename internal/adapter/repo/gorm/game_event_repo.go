package gormrepo

import (
	"context"
	"encoding/json"

	"undercity/internal/adapter/repo/gorm/model"
	"undercity/internal/domain/crime"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GameEventRepo struct {
	db *gorm.DB
}

func NewGameEventRepo(db *gorm.DB) GameEventRepo {
	return GameEventRepo{db: db}
}

func (r GameEventRepo) Publish(ctx context.Context, events []crime.GameEvent) error {
	if len(events) == 0 {
		return nil
	}
	rows := make([]model.GameEvent, 0, len(events))
	for _, e := range events {
		b, _ := json.Marshal(e.Payload)
		rows = append(rows, model.GameEvent{
			EventID:    e.ID,
			Type:       e.Type,
			Message:    e.Message,
			ActorID:    e.ActorID,
			OccurredAt: e.OccurredAt,
			Payload:    b,
		})
	}
	return getDBFromCtx(ctx, r.db).Create(&rows).Error
}

func (r GameEventRepo) ListRecent(ctx context.Context, limit int) ([]crime.GameEvent, error) {
	rows := []model.GameEvent{}
	query := getDBFromCtx(ctx, r.db).
		Clauses(clause.OrderBy{
			Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "occurred_at"}, Desc: true}},
		})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]crime.GameEvent, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if len(row.Payload) > 0 {
			_ = json.Unmarshal(row.Payload, &payload)
		}
		out = append(out, crime.GameEvent{
			ID:         row.EventID,
			Type:       row.Type,
			Message:    row.Message,
			ActorID:    row.ActorID,
			OccurredAt: row.OccurredAt,
			Payload:    payload,
		})
	}
	return out, nil
}
