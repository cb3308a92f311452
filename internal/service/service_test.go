package service

import (
	"context"
	"sort"
	"strings"

	"monastery-guide/internal/models"
	"monastery-guide/internal/repository"

	"go.uber.org/zap"
)

// In-memory stores used across the service tests.

type memMonasteryStore struct {
	items []*models.Monastery
}

func (s *memMonasteryStore) Count(ctx context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *memMonasteryStore) Create(ctx context.Context, m *models.Monastery) error {
	copied := *m
	s.items = append(s.items, &copied)
	return nil
}

func (s *memMonasteryStore) CreateBatch(ctx context.Context, monasteries []*models.Monastery) error {
	for _, m := range monasteries {
		if err := s.Create(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (s *memMonasteryStore) List(ctx context.Context, filter repository.MonasteryFilter) ([]*models.Monastery, error) {
	var result []*models.Monastery
	for _, m := range s.items {
		if filter.District != "" && !containsFold(m.District, filter.District) {
			continue
		}
		if filter.Tradition != "" && !containsFold(m.Tradition, filter.Tradition) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(m.Name, filter.Search) &&
			!containsFold(m.Description, filter.Search) &&
			!containsFold(m.Location, filter.Search) {
			continue
		}
		result = append(result, m)
	}
	return result, nil
}

func (s *memMonasteryStore) GetByID(ctx context.Context, id string) (*models.Monastery, error) {
	for _, m := range s.items {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memMonasteryStore) ListDistinct(ctx context.Context, column string) ([]string, error) {
	seen := map[string]bool{}
	values := []string{}
	for _, m := range s.items {
		var v string
		switch column {
		case "district":
			v = m.District
		case "tradition":
			v = m.Tradition
		}
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

type memChatStore struct {
	items []*models.ChatMessage
}

func (s *memChatStore) Create(ctx context.Context, msg *models.ChatMessage) error {
	copied := *msg
	s.items = append(s.items, &copied)
	return nil
}

// ListBySession mirrors the repository contract: newest first, up to limit.
func (s *memChatStore) ListBySession(ctx context.Context, sessionID string, limit int) ([]*models.ChatMessage, error) {
	var matched []*models.ChatMessage
	for _, msg := range s.items {
		if msg.SessionID == sessionID {
			matched = append(matched, msg)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type fakeCompleter struct {
	lastRequest CompletionRequest
	response    string
	err         error
}

func (f *fakeCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	f.lastRequest = req
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
