package tournaments

import (
	"context"
	"errors"

	"golang.org/x/xerrors"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

const collection = "tournaments"

var (
	ErrNotFound      = errors.New("tournament not found")
	ErrAlreadyExists = errors.New("tournament already exists")
)

// Store persists whole tournament documents. Saves overwrite the stored
// document unconditionally, so concurrent editors resolve as last write wins.
type Store interface {
	Create(ctx context.Context, t *league.Tournament) error
	Get(ctx context.Context, id string) (*league.Tournament, error)
	Save(ctx context.Context, t *league.Tournament) error
	Delete(ctx context.Context, id string) error
	// ListByOwner pages through an owner's tournaments, most recently
	// updated first. A negative offset or non-positive limit yields an
	// empty page.
	ListByOwner(ctx context.Context, owner string, offset, limit int) ([]*league.Tournament, error)
	CountByOwner(ctx context.Context, owner string) (int, error)
}

// GetOwned loads a tournament and hides it from anyone but its owner.
func GetOwned(ctx context.Context, store Store, id, owner string) (*league.Tournament, error) {
	t, err := store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.Owner != owner {
		return nil, ErrNotFound
	}
	return t, nil
}

// Mutate loads the owner's tournament, applies fn and stores the result.
// Nothing is written when fn fails. fn reports whether it changed anything.
func Mutate(ctx context.Context, store Store, id, owner string, fn func(t *league.Tournament) (bool, error)) (*league.Tournament, error) {
	t, err := GetOwned(ctx, store, id, owner)
	if err != nil {
		return nil, err
	}
	changed, err := fn(t)
	if err != nil {
		return nil, err
	}
	if !changed {
		return t, nil
	}
	if err := store.Save(ctx, t); err != nil {
		return nil, xerrors.Errorf("save tournament %s: %w", id, err)
	}
	return t, nil
}
