package tournaments

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"

	access "github.com/nvbf/tournament-tracker/pkg/accessCode"
	"github.com/nvbf/tournament-tracker/pkg/league"
	"github.com/nvbf/tournament-tracker/pkg/sanitize"
	store "github.com/nvbf/tournament-tracker/repos/tournaments"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 20
	// MaxPage bounds the requested page so the offset cannot overflow. No
	// owner can fill more pages than the tournament ceiling.
	MaxPage = league.MaxTournaments
)

type TournamentService struct {
	store  store.Store
	engine *league.Engine
	logger *logrus.Logger
}

func NewTournamentService(s store.Store, engine *league.Engine, logger *logrus.Logger) *TournamentService {
	return &TournamentService{
		store:  s,
		engine: engine,
		logger: logger,
	}
}

func (s *TournamentService) Create(ctx context.Context, owner string, request CreateRequest) (*league.Tournament, error) {
	count, err := s.store.CountByOwner(ctx, owner)
	if err != nil {
		return nil, xerrors.Errorf("count tournaments for %s: %w", owner, err)
	}
	if count >= league.MaxTournaments {
		return nil, &league.ValidationError{Reason: "tournament limit reached"}
	}

	sport := strings.ToLower(strings.TrimSpace(request.Sport))
	if !league.ValidSport(sport) {
		sport = league.Sports[0]
	}

	t, err := s.engine.NewTournament(sanitize.Text(request.Name, league.MaxNameLength), sport, owner)
	if err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, xerrors.Errorf("create tournament: %w", err)
	}
	s.logger.WithFields(logrus.Fields{"id": t.ID, "owner": owner}).Info("tournament created")
	return t, nil
}

// List returns one page of the owner's tournaments, most recently updated
// first.
func (s *TournamentService) List(ctx context.Context, owner string, page, limit int) (*ListResponse, error) {
	page = clamp(page, 1, MaxPage)
	limit = clamp(limit, 1, MaxPageSize)

	var (
		list  []*league.Tournament
		total int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		list, err = s.store.ListByOwner(gctx, owner, (page-1)*limit, limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.CountByOwner(gctx, owner)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, xerrors.Errorf("list tournaments for %s: %w", owner, err)
	}

	summaries := make([]Summary, 0, len(list))
	for _, t := range list {
		summaries = append(summaries, toSummary(t))
	}
	return &ListResponse{
		Tournaments: summaries,
		Total:       total,
		Page:        page,
		Pages:       (total + limit - 1) / limit,
	}, nil
}

func (s *TournamentService) Get(ctx context.Context, id, owner string) (*league.Tournament, error) {
	return store.GetOwned(ctx, s.store, id, owner)
}

func (s *TournamentService) Delete(ctx context.Context, id, owner string) error {
	if _, err := store.GetOwned(ctx, s.store, id, owner); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"id": id, "owner": owner}).Info("tournament deleted")
	return nil
}

// ToggleShare flips public access. Turning it on hands out a share code,
// reusing the tournament's secret if it was shared before.
func (s *TournamentService) ToggleShare(ctx context.Context, id, owner string) (*ShareResponse, error) {
	t, err := store.Mutate(ctx, s.store, id, owner, func(t *league.Tournament) (bool, error) {
		if s.engine.TogglePublicShare(t) && t.ShareSecret == "" {
			t.ShareSecret = access.NewSecret()
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	response := &ShareResponse{PublicShare: t.PublicShare}
	if t.PublicShare {
		response.ShareCode = access.GenerateCode(t.ID, t.ShareSecret)
	}
	return response, nil
}

// Public resolves a share code to a tournament that is currently shared.
func (s *TournamentService) Public(ctx context.Context, code string) (*league.Tournament, error) {
	id, secret, err := access.Decode(code)
	if err != nil {
		return nil, store.ErrNotFound
	}
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.PublicShare || t.ShareSecret != secret {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
