package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"monastery-guide/internal/dto"
	"monastery-guide/internal/models"
	"monastery-guide/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// historyReplayLimit bounds how many prior turns are replayed into the
// completion request to keep a session conversational.
const historyReplayLimit = 10

// ChatStore is the persistence surface the chat relay needs.
type ChatStore interface {
	Create(ctx context.Context, msg *models.ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]*models.ChatMessage, error)
}

type ChatService struct {
	monasteries MonasteryStore
	messages    ChatStore
	llm         ChatCompleter
	timeout     time.Duration
	logger      *zap.Logger
}

// NewChatService wires the chat relay. llm may be nil when no credential is
// configured; chat calls then fail with ErrAINotConfigured while the rest of
// the API keeps working.
func NewChatService(
	monasteries MonasteryStore,
	messages ChatStore,
	llm ChatCompleter,
	timeout time.Duration,
	logger *zap.Logger,
) *ChatService {
	return &ChatService{
		monasteries: monasteries,
		messages:    messages,
		llm:         llm,
		timeout:     timeout,
		logger:      logger,
	}
}

// Chat forwards one user message to the AI guide and persists the exchange.
// A monastery id that matches no record is not an error; the guide just
// answers without record context.
func (s *ChatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.llm == nil {
		return nil, ErrAINotConfigured
	}

	var monasteryContext string
	if req.MonasteryID != nil && *req.MonasteryID != "" {
		m, err := s.monasteries.GetByID(ctx, *req.MonasteryID)
		switch {
		case err == nil:
			monasteryContext = buildMonasteryContext(m)
		case errors.Is(err, repository.ErrNotFound):
			// lookup miss is silently ignored
		default:
			return nil, fmt.Errorf("failed to load monastery context: %w", err)
		}
	}

	history, err := s.messages.ListBySession(ctx, req.SessionID, historyReplayLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load session history: %w", err)
	}
	reverseMessages(history)

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.llm.Complete(callCtx, CompletionRequest{
		SystemPrompt: buildSystemPrompt(monasteryContext),
		SessionID:    req.SessionID,
		History:      history,
		UserMessage:  req.Message,
	})
	if err != nil {
		s.logger.Error("Chat completion failed",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
		return nil, &AIServiceError{Err: err}
	}

	msg := &models.ChatMessage{
		ID:               uuid.New().String(),
		SessionID:        req.SessionID,
		UserMessage:      req.Message,
		AIResponse:       answer,
		MonasteryContext: req.MonasteryID,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to save chat message: %w", err)
	}

	return &dto.ChatResponse{
		Response:         answer,
		SessionID:        req.SessionID,
		MonasteryContext: monasteryContext != "",
	}, nil
}

// History returns up to limit messages of a session, oldest first. A fresh
// session yields an empty list.
func (s *ChatService) History(ctx context.Context, sessionID string, limit int) (*dto.ChatHistoryResponse, error) {
	messages, err := s.messages.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	reverseMessages(messages)

	responses := []dto.ChatMessageResponse{}
	for _, msg := range messages {
		responses = append(responses, dto.NewChatMessageResponse(msg))
	}

	return &dto.ChatHistoryResponse{
		Messages:  responses,
		SessionID: sessionID,
	}, nil
}

// reverseMessages turns the store's newest-first order into oldest-first.
func reverseMessages(messages []*models.ChatMessage) {
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
}

func buildMonasteryContext(m *models.Monastery) string {
	festivalNames := make([]string, 0, len(m.Festivals))
	for _, f := range m.Festivals {
		festivalNames = append(festivalNames, f.Name)
	}

	return fmt.Sprintf(`
Current Monastery Context:
Name: %s
Location: %s, %s
Altitude: %s
Tradition: %s
Founded: %s
Description: %s
Architecture: %s
Spiritual Significance: %s
Cultural Importance: %s
Highlights: %s
Visiting Hours: %s
Festivals: %s
Travel Info: Best time - %s
`,
		m.Name,
		m.Location, m.District,
		m.Altitude,
		m.Tradition,
		m.Founded,
		m.Description,
		m.Architecture,
		m.SpiritualSignificance,
		m.CulturalImportance,
		strings.Join(m.Highlights, ", "),
		m.VisitingHours,
		strings.Join(festivalNames, ", "),
		m.TravelInfo.BestTimeToVisit,
	)
}

func buildSystemPrompt(monasteryContext string) string {
	return fmt.Sprintf(`You are an expert guide specializing in Sikkim monasteries, Himalayan Buddhism, and Sikkimese culture. You have deep knowledge about:

- All major monasteries in Sikkim (Rumtek, Pemayangtse, Enchey, Tashiding, Do-drul Chorten, Khecheopalri)
- Tibetan Buddhist traditions (Nyingma, Kagyu schools)
- Sikkim's unique Buddhist culture and festivals
- Himalayan geography and travel in Sikkim
- Local customs, permits, and travel logistics
- Sacred sites and pilgrimage routes

%s

Guidelines:
- Provide detailed, accurate information about Sikkim monasteries and culture
- Include practical travel advice when relevant (permits, weather, accessibility)
- Explain Buddhist concepts and traditions respectfully
- Mention relevant festivals and their significance
- Suggest related monasteries or sites when appropriate
- Keep responses informative but conversational (2-3 paragraphs)
- Focus specifically on Sikkim's unique Buddhist heritage
`, monasteryContext)
}
