package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"monastery-guide/internal/api/handlers"
	"monastery-guide/internal/dto"
	"monastery-guide/internal/models"
	"monastery-guide/internal/repository"
	"monastery-guide/internal/service"
	"monastery-guide/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// In-memory stores standing in for the Postgres repositories, so the whole
// HTTP surface can be exercised with app.Test.

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

type memStatusStore struct {
	items []*models.StatusCheck
}

func (s *memStatusStore) Create(ctx context.Context, check *models.StatusCheck) error {
	copied := *check
	s.items = append(s.items, &copied)
	return nil
}

func (s *memStatusStore) List(ctx context.Context) ([]*models.StatusCheck, error) {
	return s.items, nil
}

type fakeCompleter struct {
	response string
}

func (f *fakeCompleter) Complete(ctx context.Context, req service.CompletionRequest) (string, error) {
	return f.response, nil
}

func newTestApp(llm service.ChatCompleter) *fiber.App {
	log := zap.NewNop()
	cfg := &config.ServerConfig{ReadTimeout: time.Minute, WriteTimeout: time.Minute}

	// Catalog and chat share one monastery store so chat context lookups
	// see seeded records.
	monasteries := &memMonasteryStore{}
	messages := &memChatStore{}

	catalogService := service.NewCatalogService(monasteries, log)
	chatService := service.NewChatService(monasteries, messages, llm, time.Minute, log)
	statusService := service.NewStatusService(&memStatusStore{}, log)

	return SetupRouter(cfg,
		handlers.NewMonasteryHandler(catalogService, log),
		handlers.NewChatHandler(chatService, log),
		handlers.NewStatusHandler(statusService, log),
		log,
	)
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

func TestRootWelcome(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]string](t, raw)
	assert.Equal(t, "Welcome to Sikkim Monasteries - Virtual Heritage Tours", body["message"])
}

func TestInitializeAndListMonasteries(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/monasteries/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Successfully initialized 6 monasteries",
		decode[dto.InitializeResponse](t, raw).Message)

	resp, raw = doJSON(t, app, http.MethodPost, "/api/monasteries/initialize", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Database already contains 6 monasteries",
		decode[dto.InitializeResponse](t, raw).Message)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/monasteries", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	monasteries := decode[[]dto.MonasteryResponse](t, raw)
	assert.Len(t, monasteries, 6)
}

func TestListMonasteriesFilters(t *testing.T) {
	app := newTestApp(nil)
	doJSON(t, app, http.MethodPost, "/api/monasteries/initialize", nil)

	_, raw := doJSON(t, app, http.MethodGet, "/api/monasteries?tradition=Kagyu", nil)
	matched := decode[[]dto.MonasteryResponse](t, raw)
	require.Len(t, matched, 1)
	assert.Equal(t, "Rumtek Monastery", matched[0].Name)

	// "lotus" only occurs in Pemayangtse's description, case-insensitively
	_, raw = doJSON(t, app, http.MethodGet, "/api/monasteries?search=lotus", nil)
	matched = decode[[]dto.MonasteryResponse](t, raw)
	require.Len(t, matched, 1)
	assert.Equal(t, "Pemayangtse Monastery", matched[0].Name)

	_, raw = doJSON(t, app, http.MethodGet, "/api/monasteries?district=west&tradition=Nyingma", nil)
	matched = decode[[]dto.MonasteryResponse](t, raw)
	assert.Len(t, matched, 3)
}

func TestGetMonasteryNotFound(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/monasteries/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Monastery not found", decode[map[string]string](t, raw)["detail"])
}

func TestCreateAndFetchMonastery(t *testing.T) {
	app := newTestApp(nil)

	created := dto.CreateMonasteryRequest{
		Name:        "Ralang Monastery",
		Location:    "Ralang, South Sikkim",
		District:    "South Sikkim",
		Tradition:   "Kagyu School of Tibetan Buddhism",
		Description: "Rebuilt Kagyu monastery known for its Pang Lhabsol celebrations.",
		Coordinates: models.Coordinates{Lat: 27.3286, Lng: 88.3360},
	}

	resp, raw := doJSON(t, app, http.MethodPost, "/api/monasteries", created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.MonasteryResponse](t, raw)
	require.NotEmpty(t, got.ID)
	assert.Equal(t, "Ralang Monastery", got.Name)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/monasteries/"+got.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, got.ID, decode[dto.MonasteryResponse](t, raw).ID)
}

func TestCreateMonasteryRejectsUnknownFields(t *testing.T) {
	app := newTestApp(nil)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/monasteries", map[string]any{
		"name":        "Ralang Monastery",
		"famous_dish": "momo",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDistrictsTraditionsFestivals(t *testing.T) {
	app := newTestApp(nil)
	doJSON(t, app, http.MethodPost, "/api/monasteries/initialize", nil)

	_, raw := doJSON(t, app, http.MethodGet, "/api/districts", nil)
	assert.Equal(t, []string{"East Sikkim", "West Sikkim"},
		decode[dto.DistrictsResponse](t, raw).Districts)

	_, raw = doJSON(t, app, http.MethodGet, "/api/traditions", nil)
	assert.Equal(t, []string{
		"Kagyu School of Tibetan Buddhism",
		"Nyingma School of Tibetan Buddhism",
	}, decode[dto.TraditionsResponse](t, raw).Traditions)

	_, raw = doJSON(t, app, http.MethodGet, "/api/festivals", nil)
	festivals := decode[dto.FestivalsResponse](t, raw).Festivals
	require.Len(t, festivals, 12)
	assert.Equal(t, "Kagyu Monlam", festivals[0].Name)
	assert.Equal(t, "Rumtek Monastery", festivals[0].Monastery)
}

func TestChatWithoutCredential(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/chat", dto.ChatRequest{
		Message:   "Hello",
		SessionID: "s1",
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "AI service not configured", decode[map[string]string](t, raw)["detail"])
}

func TestChatValidation(t *testing.T) {
	app := newTestApp(&fakeCompleter{response: "hi"})

	resp, raw := doJSON(t, app, http.MethodPost, "/api/chat", map[string]any{
		"session_id": "s1",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "message is required", decode[map[string]string](t, raw)["detail"])

	resp, raw = doJSON(t, app, http.MethodPost, "/api/chat", map[string]any{
		"message": "Hello",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "session_id is required", decode[map[string]string](t, raw)["detail"])
}

func TestChatRoundTripWithHistory(t *testing.T) {
	app := newTestApp(&fakeCompleter{response: "Rumtek is the seat of the Karmapa."})
	doJSON(t, app, http.MethodPost, "/api/monasteries/initialize", nil)

	_, raw := doJSON(t, app, http.MethodGet, "/api/monasteries?tradition=Kagyu", nil)
	rumtek := decode[[]dto.MonasteryResponse](t, raw)[0]

	resp, raw := doJSON(t, app, http.MethodPost, "/api/chat", dto.ChatRequest{
		Message:     "Tell me about this monastery",
		SessionID:   "s1",
		MonasteryID: &rumtek.ID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	chat := decode[dto.ChatResponse](t, raw)
	assert.True(t, chat.MonasteryContext)
	assert.Equal(t, "Rumtek is the seat of the Karmapa.", chat.Response)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/chat/history/s1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.ChatHistoryResponse](t, raw)
	require.Len(t, history.Messages, 1)
	assert.Equal(t, "Tell me about this monastery", history.Messages[0].UserMessage)
	require.NotNil(t, history.Messages[0].MonasteryContext)
	assert.Equal(t, rumtek.ID, *history.Messages[0].MonasteryContext)
}

func TestChatHistoryFreshSession(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/chat/history/fresh-session", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	history := decode[dto.ChatHistoryResponse](t, raw)
	assert.Equal(t, "fresh-session", history.SessionID)
	assert.NotNil(t, history.Messages)
	assert.Empty(t, history.Messages)
}

func TestStatusChecks(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodPost, "/api/status", dto.CreateStatusCheckRequest{
		ClientName: "uptime-probe",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[dto.StatusCheckResponse](t, raw)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "uptime-probe", created.ClientName)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/status", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, raw = doJSON(t, app, http.MethodGet, "/api/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	checks := decode[[]dto.StatusCheckResponse](t, raw)
	require.Len(t, checks, 1)
	assert.Equal(t, created.ID, checks[0].ID)
}

func TestTravelGuide(t *testing.T) {
	app := newTestApp(nil)

	resp, raw := doJSON(t, app, http.MethodGet, "/api/travel-guide", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var guide map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &guide))
	assert.Contains(t, guide, "permits")
	assert.Contains(t, guide, "best_time")
	assert.Contains(t, guide, "getting_there")
	assert.Contains(t, guide, "accommodation")
	assert.Contains(t, guide, "important_tips")
}
