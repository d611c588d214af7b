// Package regen runs the out-of-engine energy regeneration schedule.
// The resolution engine itself stays request/response; this ticker is
// the only background worker in the process.
package regen

import (
	"context"
	"log"
	"time"

	"undercity/internal/app/ports"

	"github.com/robfig/cron/v3"
)

const jobTimeout = 30 * time.Second

type Ticker struct {
	cron       *cron.Cron
	characters ports.CharacterRepository
	amount     int
}

// New schedules the regeneration job. The bulk update bumps each
// character's version, so an in-flight resolution against a freshly
// regenerated character loses its conditional write and retries.
func New(spec string, amount int, characters ports.CharacterRepository) (*Ticker, error) {
	t := &Ticker{
		cron:       cron.New(),
		characters: characters,
		amount:     amount,
	}
	if _, err := t.cron.AddFunc(spec, t.run); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Ticker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	changed, err := t.characters.RegenerateEnergy(ctx, t.amount)
	if err != nil {
		log.Printf("energy regen failed: %v", err)
		return
	}
	if changed > 0 {
		log.Printf("energy regen topped up %d characters", changed)
	}
}

func (t *Ticker) Start() {
	t.cron.Start()
}

func (t *Ticker) Stop() {
	t.cron.Stop()
}
