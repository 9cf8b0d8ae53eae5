// Package service implements the business operations of the social-graph and
// messaging layer. Each exported method is one bounded, synchronous unit of
// work against the store.
package service

import (
	"context"
	"fmt"
	"time"

	"linkup/internal/auth"
	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/storage"
	"linkup/internal/validation"
)

const defaultSearchLimit = 10

// UserService provides user directory, profile, and connection-graph logic.
type UserService struct {
	userRepo repository.UserRepository
	connRepo repository.ConnectionRepository
	hasher   auth.PasswordHasher
	blobs    storage.BlobStore
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, connRepo repository.ConnectionRepository, hasher auth.PasswordHasher, blobs storage.BlobStore) *UserService {
	return &UserService{
		userRepo: userRepo,
		connRepo: connRepo,
		hasher:   hasher,
		blobs:    blobs,
	}
}

// ProfilePatch enumerates the mutable profile fields. A nil field is left
// unchanged. Identity and credential fields are deliberately not expressible
// here.
type ProfilePatch struct {
	FullName     *string
	Headline     *string
	Bio          *string
	ProfileImage *string
	Location     *string
}

// ExperienceInput carries the fields for a new experience entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	StartDate   time.Time
	EndDate     *time.Time
	Current     bool
	Description string
}

// EducationInput carries the fields for a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
}

// CreateUser hashes the password and inserts a new user. Returns a conflict
// error when the email or username is already taken.
func (s *UserService) CreateUser(ctx context.Context, email, username, password, fullName string) (*models.User, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		HashedPassword: hashed,
		FullName:       fullName,
		ProfileImage:   models.DefaultProfileImage,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID returns the user or nil when no such user exists.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByUsername returns the user or nil when no such user exists.
func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// GetUserByEmail returns the user or nil when no such user exists.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// UpdateProfile applies the non-nil fields of the patch. Returns nil when the
// user does not exist.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, patch ProfilePatch) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Headline != nil {
		user.Headline = *patch.Headline
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
	}
	if patch.ProfileImage != nil {
		user.ProfileImage = *patch.ProfileImage
	}
	if patch.Location != nil {
		user.Location = *patch.Location
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfileImage stores the uploaded image and records its reference path
// on the user. Returns nil when the user does not exist.
func (s *UserService) UpdateProfileImage(ctx context.Context, userID uint, filename string, data []byte) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	path, err := s.blobs.Store(fmt.Sprintf("%d_%s", userID, filename), data)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user.ProfileImage = path
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user together with their experiences, educations,
// and posts. Reports false when no such user exists.
func (s *UserService) DeleteUser(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return false, err
	}
	return true, nil
}

// AddExperience appends a work history entry to the user's profile.
func (s *UserService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Experience, error) {
	exp := &models.Experience{
		UserID:      userID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.userRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return exp, nil
}

// AddEducation appends a schooling entry to the user's profile.
func (s *UserService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Education, error) {
	edu := &models.Education{
		UserID:       userID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.userRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return edu, nil
}

// GetUserConnections returns the symmetric connection set for the user.
func (s *UserService) GetUserConnections(ctx context.Context, userID uint) ([]models.User, error) {
	return s.connRepo.GetConnections(ctx, userID)
}

// SendConnectionRequest creates a pending request from sender to receiver.
// An identical pending request is returned unchanged; when the users are
// already connected nothing is created and nil is returned.
func (s *UserService) SendConnectionRequest(ctx context.Context, senderID, receiverID uint) (*models.ConnectionRequest, error) {
	if senderID == receiverID {
		return nil, models.NewValidationError("cannot send a connection request to yourself")
	}

	existing, err := s.connRepo.GetPendingRequestBetween(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	connected, err := s.connRepo.AreConnected(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if connected {
		return nil, nil
	}

	req := &models.ConnectionRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.ConnectionRequestPending,
	}
	if err := s.connRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// AcceptConnectionRequest flips a pending request to accepted and materializes
// the connection edge in both directions. Returns nil when the request does
// not exist or is not pending.
func (s *UserService) AcceptConnectionRequest(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	return s.connRepo.Accept(ctx, requestID)
}

// RejectConnectionRequest flips a pending request to rejected. Returns nil
// when the request does not exist or is not pending.
func (s *UserService) RejectConnectionRequest(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	return s.connRepo.Reject(ctx, requestID)
}

// GetPendingRequests returns the pending requests addressed to the user.
func (s *UserService) GetPendingRequests(ctx context.Context, userID uint) ([]models.ConnectionRequest, error) {
	return s.connRepo.GetPendingRequests(ctx, userID)
}

// GetSentRequests returns the pending requests the user has sent.
func (s *UserService) GetSentRequests(ctx context.Context, userID uint) ([]models.ConnectionRequest, error) {
	return s.connRepo.GetSentRequests(ctx, userID)
}

// SearchUsers matches the query case-insensitively against full name,
// headline, or username, capped at limit (default 10).
func (s *UserService) SearchUsers(ctx context.Context, query string, limit int) ([]models.User, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.userRepo.Search(ctx, query, limit)
}
