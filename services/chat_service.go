package services

import (
	"strings"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
)

const (
	DefaultRoom         = "general"
	DefaultHistoryLimit = 50
)

type ChatService struct {
	messages *repository.MessageRepository
}

func NewChatService(messages *repository.MessageRepository) *ChatService {
	return &ChatService{messages}
}

// NormalizeRoom maps a blank room to the default room.
func NormalizeRoom(room string) string {
	if strings.TrimSpace(room) == "" {
		return DefaultRoom
	}
	return room
}

// SendMessage persists a chat message. userId, userName and body are all
// required; the room defaults to "general".
func (s *ChatService) SendMessage(userID uint, userName, body, room string) (*entity.Message, error) {
	if userID == 0 || strings.TrimSpace(userName) == "" || strings.TrimSpace(body) == "" {
		return nil, errs.Validation("userId, userName and message are required")
	}

	msg := &entity.Message{
		Body:     body,
		Room:     NormalizeRoom(room),
		UserID:   userID,
		UserName: userName,
	}
	if err := s.messages.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// History returns the most recent messages of a room in chronological order.
// Fetched newest-first and reversed. The limit is clamped to
// DefaultHistoryLimit, which is both the default and the maximum window.
func (s *ChatService) History(room string, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > DefaultHistoryLimit {
		limit = DefaultHistoryLimit
	}
	msgs, err := s.messages.FindRecentByRoom(NormalizeRoom(room), limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
