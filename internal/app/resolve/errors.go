package resolve

import (
	"errors"
	"time"
)

var (
	ErrInvalidRequest     = errors.New("invalid resolve request")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrCurrentlyJailed    = errors.New("currently jailed")
)

type InsufficientEnergyError struct {
	Required  int
	Available int
}

func (e *InsufficientEnergyError) Error() string {
	return ErrInsufficientEnergy.Error()
}

func (e *InsufficientEnergyError) Unwrap() error {
	return ErrInsufficientEnergy
}

type CurrentlyJailedError struct {
	ReleaseAt time.Time
}

func (e *CurrentlyJailedError) Error() string {
	return ErrCurrentlyJailed.Error()
}

func (e *CurrentlyJailedError) Unwrap() error {
	return ErrCurrentlyJailed
}
