package tournaments

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"golang.org/x/xerrors"

	"github.com/nvbf/tournament-tracker/pkg/league"
)

// MemoryStore keeps tournaments in process. Documents are stored serialized
// so callers never share memory with the store.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

type memoryDoc struct {
	*league.Tournament
	Owner       string `json:"owner"`
	ShareSecret string `json:"shareSecret"`
}

func encode(t *league.Tournament) ([]byte, error) {
	data, err := json.Marshal(memoryDoc{Tournament: t, Owner: t.Owner, ShareSecret: t.ShareSecret})
	if err != nil {
		return nil, xerrors.Errorf("encode tournament %s: %w", t.ID, err)
	}
	return data, nil
}

func decode(data []byte) (*league.Tournament, error) {
	doc := memoryDoc{Tournament: &league.Tournament{}}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, xerrors.Errorf("consistency error decoding tournament: %w", err)
	}
	doc.Tournament.Owner = doc.Owner
	doc.Tournament.ShareSecret = doc.ShareSecret
	return doc.Tournament, nil
}

func (s *MemoryStore) Create(_ context.Context, t *league.Tournament) error {
	data, err := encode(t)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[t.ID]; ok {
		return ErrAlreadyExists
	}
	s.docs[t.ID] = data
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*league.Tournament, error) {
	s.mu.RLock()
	data, ok := s.docs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return decode(data)
}

func (s *MemoryStore) Save(_ context.Context, t *league.Tournament) error {
	data, err := encode(t)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[t.ID]; !ok {
		return ErrNotFound
	}
	s.docs[t.ID] = data
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

func (s *MemoryStore) owned(owner string) ([]*league.Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*league.Tournament
	for _, data := range s.docs {
		t, err := decode(data)
		if err != nil {
			return nil, err
		}
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, owner string, offset, limit int) ([]*league.Tournament, error) {
	list, err := s.owned(owner)
	if err != nil {
		return nil, err
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].UpdatedAt.Equal(list[j].UpdatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
	if offset < 0 || limit < 1 || offset >= len(list) {
		return []*league.Tournament{}, nil
	}
	end := len(list)
	if limit < end-offset {
		end = offset + limit
	}
	return list[offset:end], nil
}

func (s *MemoryStore) CountByOwner(_ context.Context, owner string) (int, error) {
	list, err := s.owned(owner)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}
