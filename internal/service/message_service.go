package service

import (
	"context"
	"sort"

	"linkup/internal/models"
	"linkup/internal/repository"
)

const defaultConversationLimit = 50

// MessageService provides direct-messaging logic.
type MessageService struct {
	msgRepo  repository.MessageRepository
	userRepo repository.UserRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(msgRepo repository.MessageRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		msgRepo:  msgRepo,
		userRepo: userRepo,
	}
}

// SendMessage inserts a message from sender to receiver, unread by default.
func (s *MessageService) SendMessage(ctx context.Context, senderID, receiverID uint, content string) (*models.Message, error) {
	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	if err := s.msgRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// GetConversation returns the messages between the two users in either
// direction, oldest first, capped at limit (default 50). The cap applies
// after ordering, so histories longer than the limit are cut at the newest
// end.
func (s *MessageService) GetConversation(ctx context.Context, user1ID, user2ID uint, limit int) ([]models.Message, error) {
	if limit <= 0 {
		limit = defaultConversationLimit
	}
	return s.msgRepo.GetConversation(ctx, user1ID, user2ID, limit)
}

// MarkMessagesAsRead flips every unread message from sender to the user and
// returns the number affected.
func (s *MessageService) MarkMessagesAsRead(ctx context.Context, userID, senderID uint) (int64, error) {
	return s.msgRepo.MarkRead(ctx, userID, senderID)
}

// GetUnreadMessagesCount returns the number of unread messages addressed to
// the user.
func (s *MessageService) GetUnreadMessagesCount(ctx context.Context, userID uint) (int64, error) {
	return s.msgRepo.CountUnread(ctx, userID)
}

// GetConversations returns one summary per peer the user has exchanged any
// message with, sorted by last-message recency descending. A peer without a
// last message sorts last.
func (s *MessageService) GetConversations(ctx context.Context, userID uint) ([]models.ConversationSummary, error) {
	peerIDs, err := s.msgRepo.GetPeerIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ConversationSummary, 0, len(peerIDs))
	for _, peerID := range peerIDs {
		peer, err := s.userRepo.GetByID(ctx, peerID)
		if err != nil {
			return nil, err
		}
		if peer == nil {
			continue
		}

		last, err := s.msgRepo.GetLastMessageBetween(ctx, userID, peerID)
		if err != nil {
			return nil, err
		}
		unread, err := s.msgRepo.CountUnreadFrom(ctx, userID, peerID)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, models.ConversationSummary{
			Peer:        *peer,
			LastMessage: last,
			UnreadCount: unread,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i].LastMessage, summaries[j].LastMessage
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return summaries, nil
}
