package gormrepo

import (
	"context"
	"errors"
	"time"

	"undercity/internal/adapter/repo/gorm/model"
	"undercity/internal/app/ports"
	"undercity/internal/domain/crime"

	"gorm.io/gorm"
)

type CharacterRepo struct {
	db *gorm.DB
}

func NewCharacterRepo(db *gorm.DB) CharacterRepo {
	return CharacterRepo{db: db}
}

func (r CharacterRepo) GetByID(ctx context.Context, characterID string) (crime.CharacterState, error) {
	var m model.Character
	if err := getDBFromCtx(ctx, r.db).Where("character_id = ?", characterID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return crime.CharacterState{}, ports.ErrNotFound
		}
		return crime.CharacterState{}, err
	}
	return toDomain(m), nil
}

func (r CharacterRepo) SaveWithVersion(ctx context.Context, state crime.CharacterState, expectedVersion int64) error {
	db := getDBFromCtx(ctx, r.db)
	if expectedVersion == 0 {
		m := toModel(state)
		if err := db.Create(&m).Error; err != nil {
			return err
		}
		return nil
	}

	updates := map[string]any{
		"name":            state.Name,
		"level":           int32(state.Level),
		"xp":              state.XP,
		"xp_needed":       state.XPNeeded,
		"energy":          int32(state.Energy),
		"max_energy":      int32(state.MaxEnergy),
		"health":          int32(state.Health),
		"max_health":      int32(state.MaxHealth),
		"reputation":      int32(state.Reputation),
		"cash":            state.Cash,
		"dirty_cash":      state.DirtyCash,
		"city":            state.City,
		"jailed":          state.Jailed,
		"jail_release_at": jailReleasePtr(state),
		"version":         state.Version,
		"updated_at":      state.UpdatedAt,
	}

	res := db.Model(&model.Character{}).
		Where("character_id = ? AND version = ?", state.CharacterID, expectedVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrConflict
	}
	return nil
}

func (r CharacterRepo) RegenerateEnergy(ctx context.Context, amount int) (int64, error) {
	res := getDBFromCtx(ctx, r.db).Model(&model.Character{}).
		Where("energy < max_energy").
		Updates(map[string]any{
			"energy":     gorm.Expr("LEAST(energy + ?, max_energy)", amount),
			"version":    gorm.Expr("version + 1"),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func toDomain(m model.Character) crime.CharacterState {
	state := crime.CharacterState{
		CharacterID: m.CharacterID,
		Name:        m.Name,
		Level:       int(m.Level),
		XP:          m.Xp,
		XPNeeded:    m.XpNeeded,
		Energy:      int(m.Energy),
		MaxEnergy:   int(m.MaxEnergy),
		Health:      int(m.Health),
		MaxHealth:   int(m.MaxHealth),
		Reputation:  int(m.Reputation),
		Cash:        m.Cash,
		DirtyCash:   m.DirtyCash,
		City:        m.City,
		Jailed:      m.Jailed,
		Version:     m.Version,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.JailReleaseAt != nil {
		state.JailReleaseAt = *m.JailReleaseAt
	}
	return state
}

func toModel(state crime.CharacterState) model.Character {
	return model.Character{
		CharacterID:   state.CharacterID,
		Name:          state.Name,
		Level:         int32(state.Level),
		Xp:            state.XP,
		XpNeeded:      state.XPNeeded,
		Energy:        int32(state.Energy),
		MaxEnergy:     int32(state.MaxEnergy),
		Health:        int32(state.Health),
		MaxHealth:     int32(state.MaxHealth),
		Reputation:    int32(state.Reputation),
		Cash:          state.Cash,
		DirtyCash:     state.DirtyCash,
		City:          state.City,
		Jailed:        state.Jailed,
		JailReleaseAt: jailReleasePtr(state),
		Version:       state.Version,
		UpdatedAt:     state.UpdatedAt,
	}
}

func jailReleasePtr(state crime.CharacterState) *time.Time {
	if state.JailReleaseAt.IsZero() {
		return nil
	}
	t := state.JailReleaseAt
	return &t
}
