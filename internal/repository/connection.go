// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"linkup/internal/models"

	"gorm.io/gorm"
)

// ConnectionRepository defines persistence operations for connection requests
// and the symmetric connection edge set.
type ConnectionRepository interface {
	CreateRequest(ctx context.Context, req *models.ConnectionRequest) error
	GetRequestByID(ctx context.Context, id uint) (*models.ConnectionRequest, error)
	GetPendingRequestBetween(ctx context.Context, senderID, receiverID uint) (*models.ConnectionRequest, error)
	GetPendingRequests(ctx context.Context, receiverID uint) ([]models.ConnectionRequest, error)
	GetSentRequests(ctx context.Context, senderID uint) ([]models.ConnectionRequest, error)
	Accept(ctx context.Context, requestID uint) (*models.ConnectionRequest, error)
	Reject(ctx context.Context, requestID uint) (*models.ConnectionRequest, error)
	GetConnections(ctx context.Context, userID uint) ([]models.User, error)
	GetConnectionIDs(ctx context.Context, userID uint) ([]uint, error)
	AreConnected(ctx context.Context, userID, peerID uint) (bool, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) CreateRequest(ctx context.Context, req *models.ConnectionRequest) error {
	if req.Status == "" {
		req.Status = models.ConnectionRequestPending
	}
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetRequestByID(ctx context.Context, id uint) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *connectionRepository) GetPendingRequestBetween(ctx context.Context, senderID, receiverID uint) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, models.ConnectionRequestPending).
		First(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *connectionRepository) GetPendingRequests(ctx context.Context, receiverID uint) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	if err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, models.ConnectionRequestPending).
		Preload("Sender").
		Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}

func (r *connectionRepository) GetSentRequests(ctx context.Context, senderID uint) ([]models.ConnectionRequest, error) {
	var reqs []models.ConnectionRequest
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", senderID, models.ConnectionRequestPending).
		Preload("Receiver").
		Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}

// Accept flips a pending request to accepted and writes the connection edge
// in both directions, all inside one transaction. Returns (nil, nil) when the
// request does not exist or is no longer pending.
func (r *connectionRepository) Accept(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	var req models.ConnectionRequest

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.ConnectionRequest{}).
			Where("id = ? AND status = ?", requestID, models.ConnectionRequestPending).
			Update("status", models.ConnectionRequestAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := tx.First(&req, requestID).Error; err != nil {
			return err
		}
		edges := []models.Connection{
			{UserID: req.SenderID, PeerID: req.ReceiverID},
			{UserID: req.ReceiverID, PeerID: req.SenderID},
		}
		return tx.Create(&edges).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

// Reject flips a pending request to rejected. Returns (nil, nil) when the
// request does not exist or is no longer pending.
func (r *connectionRepository) Reject(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	res := r.db.WithContext(ctx).Model(&models.ConnectionRequest{}).
		Where("id = ? AND status = ?", requestID, models.ConnectionRequestPending).
		Update("status", models.ConnectionRequestRejected)
	if res.Error != nil {
		return nil, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}

	var req models.ConnectionRequest
	if err := r.db.WithContext(ctx).First(&req, requestID).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *connectionRepository) GetConnections(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN connections c ON users.id = c.peer_id").
		Where("c.user_id = ?", userID).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *connectionRepository) GetConnectionIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("user_id = ?", userID).
		Pluck("peer_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *connectionRepository) AreConnected(ctx context.Context, userID, peerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("user_id = ? AND peer_id = ?", userID, peerID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}
