package tournaments

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

type FirestoreStore struct {
	firestoreClient *firestore.Client
	logger          *logrus.Logger
}

func NewFirestoreStore(firestoreClient *firestore.Client, logger *logrus.Logger) *FirestoreStore {
	return &FirestoreStore{
		firestoreClient: firestoreClient,
		logger:          logger,
	}
}

func (s *FirestoreStore) doc(id string) *firestore.DocumentRef {
	return s.firestoreClient.Collection(collection).Doc(id)
}

func (s *FirestoreStore) Create(ctx context.Context, t *league.Tournament) error {
	_, err := s.doc(t.ID).Create(ctx, t)
	if status.Code(err) == codes.AlreadyExists {
		return ErrAlreadyExists
	}
	if err != nil {
		return xerrors.Errorf("failed to create tournament %s: %w", t.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (*league.Tournament, error) {
	doc, err := s.doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to get tournament %s: %w", id, err)
	}
	return docToTournament(doc)
}

// Save overwrites every mutable field. Update fails on missing documents, so
// a tournament deleted in the meantime is not brought back.
func (s *FirestoreStore) Save(ctx context.Context, t *league.Tournament) error {
	_, err := s.doc(t.ID).Update(ctx, tournamentUpdates(t))
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return xerrors.Errorf("failed to save tournament %s: %w", t.ID, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	_, err := s.doc(id).Delete(ctx, firestore.Exists)
	if status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	if err != nil {
		return xerrors.Errorf("failed to delete tournament %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) ownerQuery(owner string) firestore.Query {
	return s.firestoreClient.Collection(collection).Where("owner", "==", owner)
}

func (s *FirestoreStore) ListByOwner(ctx context.Context, owner string, offset, limit int) ([]*league.Tournament, error) {
	if offset < 0 || limit < 1 {
		return []*league.Tournament{}, nil
	}
	iter := s.ownerQuery(owner).
		OrderBy("updatedAt", firestore.Desc).
		Offset(offset).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	list := make([]*league.Tournament, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, xerrors.Errorf("failed to list tournaments: %w", err)
		}
		t, err := docToTournament(doc)
		if err != nil {
			s.logger.WithError(err).WithField("id", doc.Ref.ID).Warn("skipping unreadable tournament")
			continue
		}
		list = append(list, t)
	}
	return list, nil
}

func (s *FirestoreStore) CountByOwner(ctx context.Context, owner string) (int, error) {
	q := s.ownerQuery(owner)
	res, err := q.NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, xerrors.Errorf("failed to count tournaments: %w", err)
	}
	count, ok := res["all"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("consistency error: unexpected count type %T", res["all"])
	}
	return int(count.GetIntegerValue()), nil
}

func tournamentUpdates(t *league.Tournament) []firestore.Update {
	return []firestore.Update{
		{Path: "name", Value: t.Name},
		{Path: "sport", Value: t.Sport},
		{Path: "owner", Value: t.Owner},
		{Path: "publicShare", Value: t.PublicShare},
		{Path: "shareSecret", Value: t.ShareSecret},
		{Path: "teams", Value: t.Teams},
		{Path: "matches", Value: t.Matches},
		{Path: "playoff", Value: t.Playoff},
		{Path: "activity", Value: t.Activity},
		{Path: "updatedAt", Value: t.UpdatedAt},
	}
}

func docToTournament(doc *firestore.DocumentSnapshot) (*league.Tournament, error) {
	var t league.Tournament
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("consistency error: could not convert tournament document: %w", err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}
