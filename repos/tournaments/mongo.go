package tournaments

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/xerrors"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

type MongoStore struct {
	coll   *mongo.Collection
	logger *logrus.Logger
}

func NewMongoStore(db *mongo.Database, logger *logrus.Logger) *MongoStore {
	return &MongoStore{
		coll:   db.Collection(collection),
		logger: logger,
	}
}

func (s *MongoStore) Create(ctx context.Context, t *league.Tournament) error {
	_, err := s.coll.InsertOne(ctx, t)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	if err != nil {
		return xerrors.Errorf("failed to insert tournament %s: %w", t.ID, err)
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, id string) (*league.Tournament, error) {
	var t league.Tournament
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to get tournament %s: %w", id, err)
	}
	return &t, nil
}

func (s *MongoStore) Save(ctx context.Context, t *league.Tournament) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": t.ID}, t)
	if err != nil {
		return xerrors.Errorf("failed to save tournament %s: %w", t.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return xerrors.Errorf("failed to delete tournament %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) ListByOwner(ctx context.Context, owner string, offset, limit int) ([]*league.Tournament, error) {
	if offset < 0 || limit < 1 {
		return []*league.Tournament{}, nil
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "updatedAt", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))

	cursor, err := s.coll.Find(ctx, bson.M{"owner": owner}, opts)
	if err != nil {
		return nil, xerrors.Errorf("failed to list tournaments: %w", err)
	}
	defer cursor.Close(ctx)

	list := make([]*league.Tournament, 0, limit)
	for cursor.Next(ctx) {
		var t league.Tournament
		if err := cursor.Decode(&t); err != nil {
			s.logger.WithError(err).Warn("skipping unreadable tournament")
			continue
		}
		list = append(list, &t)
	}
	if err := cursor.Err(); err != nil {
		return nil, xerrors.Errorf("failed to iterate tournaments: %w", err)
	}
	return list, nil
}

func (s *MongoStore) CountByOwner(ctx context.Context, owner string) (int, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"owner": owner})
	if err != nil {
		return 0, xerrors.Errorf("failed to count tournaments: %w", err)
	}
	return int(n), nil
}
