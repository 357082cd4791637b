package services

import (
	"context"

	dto "repairdesk.com/repairdesk/internal/data_models"
	model "repairdesk.com/repairdesk/internal/models"
	repository "repairdesk.com/repairdesk/internal/repositories"
)

type MessageService struct {
	repo *repository.MessageRepository
}

func NewMessageService(repo *repository.MessageRepository) *MessageService {
	return &MessageService{repo: repo}
}

func (s *MessageService) SendMessage(ctx context.Context, req dto.SendMessageRequest) (*model.Message, error) {
	msg := &model.Message{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		Body:       req.Body,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

// LoadConversation returns both directions of the conversation in insertion
// order and marks the messages addressed to the requesting user as seen.
func (s *MessageService) LoadConversation(ctx context.Context, req dto.LoadMessagesRequest) ([]model.Message, error) {
	if err := s.repo.MarkSeen(ctx, req.UserID, req.OtherUserID); err != nil {
		return nil, err
	}

	return s.repo.Conversation(ctx, req.UserID, req.OtherUserID)
}
