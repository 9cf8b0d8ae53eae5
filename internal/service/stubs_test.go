package service

import (
	"context"

	"linkup/internal/models"
)

// Function-backed repository stubs shared by the service tests. Each field
// defaults to a no-op that returns zero values.

type userRepoStub struct {
	createFn        func(ctx context.Context, user *models.User) error
	getByIDFn       func(ctx context.Context, id uint) (*models.User, error)
	getByEmailFn    func(ctx context.Context, email string) (*models.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*models.User, error)
	saveFn          func(ctx context.Context, user *models.User) error
	deleteFn        func(ctx context.Context, id uint) error
	searchFn        func(ctx context.Context, query string, limit int) ([]models.User, error)
	addExperienceFn func(ctx context.Context, exp *models.Experience) error
	addEducationFn  func(ctx context.Context, edu *models.Education) error
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{}
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if s.getByUsernameFn != nil {
		return s.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (s *userRepoStub) Save(ctx context.Context, user *models.User) error {
	if s.saveFn != nil {
		return s.saveFn(ctx, user)
	}
	return nil
}

func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

func (s *userRepoStub) Search(ctx context.Context, query string, limit int) ([]models.User, error) {
	if s.searchFn != nil {
		return s.searchFn(ctx, query, limit)
	}
	return nil, nil
}

func (s *userRepoStub) AddExperience(ctx context.Context, exp *models.Experience) error {
	if s.addExperienceFn != nil {
		return s.addExperienceFn(ctx, exp)
	}
	return nil
}

func (s *userRepoStub) AddEducation(ctx context.Context, edu *models.Education) error {
	if s.addEducationFn != nil {
		return s.addEducationFn(ctx, edu)
	}
	return nil
}

type connRepoStub struct {
	createRequestFn            func(ctx context.Context, req *models.ConnectionRequest) error
	getRequestByIDFn           func(ctx context.Context, id uint) (*models.ConnectionRequest, error)
	getPendingRequestBetweenFn func(ctx context.Context, senderID, receiverID uint) (*models.ConnectionRequest, error)
	getPendingRequestsFn       func(ctx context.Context, receiverID uint) ([]models.ConnectionRequest, error)
	getSentRequestsFn          func(ctx context.Context, senderID uint) ([]models.ConnectionRequest, error)
	acceptFn                   func(ctx context.Context, requestID uint) (*models.ConnectionRequest, error)
	rejectFn                   func(ctx context.Context, requestID uint) (*models.ConnectionRequest, error)
	getConnectionsFn           func(ctx context.Context, userID uint) ([]models.User, error)
	getConnectionIDsFn         func(ctx context.Context, userID uint) ([]uint, error)
	areConnectedFn             func(ctx context.Context, userID, peerID uint) (bool, error)
}

func noopConnRepo() *connRepoStub {
	return &connRepoStub{}
}

func (s *connRepoStub) CreateRequest(ctx context.Context, req *models.ConnectionRequest) error {
	if s.createRequestFn != nil {
		return s.createRequestFn(ctx, req)
	}
	return nil
}

func (s *connRepoStub) GetRequestByID(ctx context.Context, id uint) (*models.ConnectionRequest, error) {
	if s.getRequestByIDFn != nil {
		return s.getRequestByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *connRepoStub) GetPendingRequestBetween(ctx context.Context, senderID, receiverID uint) (*models.ConnectionRequest, error) {
	if s.getPendingRequestBetweenFn != nil {
		return s.getPendingRequestBetweenFn(ctx, senderID, receiverID)
	}
	return nil, nil
}

func (s *connRepoStub) GetPendingRequests(ctx context.Context, receiverID uint) ([]models.ConnectionRequest, error) {
	if s.getPendingRequestsFn != nil {
		return s.getPendingRequestsFn(ctx, receiverID)
	}
	return nil, nil
}

func (s *connRepoStub) GetSentRequests(ctx context.Context, senderID uint) ([]models.ConnectionRequest, error) {
	if s.getSentRequestsFn != nil {
		return s.getSentRequestsFn(ctx, senderID)
	}
	return nil, nil
}

func (s *connRepoStub) Accept(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	if s.acceptFn != nil {
		return s.acceptFn(ctx, requestID)
	}
	return nil, nil
}

func (s *connRepoStub) Reject(ctx context.Context, requestID uint) (*models.ConnectionRequest, error) {
	if s.rejectFn != nil {
		return s.rejectFn(ctx, requestID)
	}
	return nil, nil
}

func (s *connRepoStub) GetConnections(ctx context.Context, userID uint) ([]models.User, error) {
	if s.getConnectionsFn != nil {
		return s.getConnectionsFn(ctx, userID)
	}
	return nil, nil
}

func (s *connRepoStub) GetConnectionIDs(ctx context.Context, userID uint) ([]uint, error) {
	if s.getConnectionIDsFn != nil {
		return s.getConnectionIDsFn(ctx, userID)
	}
	return nil, nil
}

func (s *connRepoStub) AreConnected(ctx context.Context, userID, peerID uint) (bool, error) {
	if s.areConnectedFn != nil {
		return s.areConnectedFn(ctx, userID, peerID)
	}
	return false, nil
}

type postRepoStub struct {
	createFn       func(ctx context.Context, post *models.Post) error
	getByIDFn      func(ctx context.Context, id uint) (*models.Post, error)
	getByAuthorFn  func(ctx context.Context, authorID uint, skip, limit int) ([]models.Post, error)
	getByAuthorsFn func(ctx context.Context, authorIDs []uint, skip, limit int) ([]models.Post, error)
	addCommentFn   func(ctx context.Context, comment *models.Comment) error
	getCommentsFn  func(ctx context.Context, postID uint) ([]models.Comment, error)
	getLikeFn      func(ctx context.Context, postID, userID uint) (*models.Like, error)
	createLikeFn   func(ctx context.Context, like *models.Like) error
	deleteLikeFn   func(ctx context.Context, postID, userID uint) (bool, error)
	countLikesFn   func(ctx context.Context, postID uint) (int64, error)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{}
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	if s.createFn != nil {
		return s.createFn(ctx, post)
	}
	return nil
}

func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *postRepoStub) GetByAuthor(ctx context.Context, authorID uint, skip, limit int) ([]models.Post, error) {
	if s.getByAuthorFn != nil {
		return s.getByAuthorFn(ctx, authorID, skip, limit)
	}
	return nil, nil
}

func (s *postRepoStub) GetByAuthors(ctx context.Context, authorIDs []uint, skip, limit int) ([]models.Post, error) {
	if s.getByAuthorsFn != nil {
		return s.getByAuthorsFn(ctx, authorIDs, skip, limit)
	}
	return nil, nil
}

func (s *postRepoStub) AddComment(ctx context.Context, comment *models.Comment) error {
	if s.addCommentFn != nil {
		return s.addCommentFn(ctx, comment)
	}
	return nil
}

func (s *postRepoStub) GetComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if s.getCommentsFn != nil {
		return s.getCommentsFn(ctx, postID)
	}
	return nil, nil
}

func (s *postRepoStub) GetLike(ctx context.Context, postID, userID uint) (*models.Like, error) {
	if s.getLikeFn != nil {
		return s.getLikeFn(ctx, postID, userID)
	}
	return nil, nil
}

func (s *postRepoStub) CreateLike(ctx context.Context, like *models.Like) error {
	if s.createLikeFn != nil {
		return s.createLikeFn(ctx, like)
	}
	return nil
}

func (s *postRepoStub) DeleteLike(ctx context.Context, postID, userID uint) (bool, error) {
	if s.deleteLikeFn != nil {
		return s.deleteLikeFn(ctx, postID, userID)
	}
	return false, nil
}

func (s *postRepoStub) CountLikes(ctx context.Context, postID uint) (int64, error) {
	if s.countLikesFn != nil {
		return s.countLikesFn(ctx, postID)
	}
	return 0, nil
}

type messageRepoStub struct {
	createFn                func(ctx context.Context, msg *models.Message) error
	getConversationFn       func(ctx context.Context, user1ID, user2ID uint, limit int) ([]models.Message, error)
	getLastMessageBetweenFn func(ctx context.Context, user1ID, user2ID uint) (*models.Message, error)
	markReadFn              func(ctx context.Context, receiverID, senderID uint) (int64, error)
	countUnreadFn           func(ctx context.Context, receiverID uint) (int64, error)
	countUnreadFromFn       func(ctx context.Context, receiverID, senderID uint) (int64, error)
	getPeerIDsFn            func(ctx context.Context, userID uint) ([]uint, error)
}

func noopMessageRepo() *messageRepoStub {
	return &messageRepoStub{}
}

func (s *messageRepoStub) Create(ctx context.Context, msg *models.Message) error {
	if s.createFn != nil {
		return s.createFn(ctx, msg)
	}
	return nil
}

func (s *messageRepoStub) GetConversation(ctx context.Context, user1ID, user2ID uint, limit int) ([]models.Message, error) {
	if s.getConversationFn != nil {
		return s.getConversationFn(ctx, user1ID, user2ID, limit)
	}
	return nil, nil
}

func (s *messageRepoStub) GetLastMessageBetween(ctx context.Context, user1ID, user2ID uint) (*models.Message, error) {
	if s.getLastMessageBetweenFn != nil {
		return s.getLastMessageBetweenFn(ctx, user1ID, user2ID)
	}
	return nil, nil
}

func (s *messageRepoStub) MarkRead(ctx context.Context, receiverID, senderID uint) (int64, error) {
	if s.markReadFn != nil {
		return s.markReadFn(ctx, receiverID, senderID)
	}
	return 0, nil
}

func (s *messageRepoStub) CountUnread(ctx context.Context, receiverID uint) (int64, error) {
	if s.countUnreadFn != nil {
		return s.countUnreadFn(ctx, receiverID)
	}
	return 0, nil
}

func (s *messageRepoStub) CountUnreadFrom(ctx context.Context, receiverID, senderID uint) (int64, error) {
	if s.countUnreadFromFn != nil {
		return s.countUnreadFromFn(ctx, receiverID, senderID)
	}
	return 0, nil
}

func (s *messageRepoStub) GetPeerIDs(ctx context.Context, userID uint) ([]uint, error) {
	if s.getPeerIDsFn != nil {
		return s.getPeerIDsFn(ctx, userID)
	}
	return nil, nil
}

// blobStoreStub records Store and Delete calls.
type blobStoreStub struct {
	storeFn  func(name string, data []byte) (string, error)
	deleted  []string
	deleteFn func(path string) error
}

func (s *blobStoreStub) Store(name string, data []byte) (string, error) {
	if s.storeFn != nil {
		return s.storeFn(name, data)
	}
	return "/static/" + name, nil
}

func (s *blobStoreStub) Delete(path string) error {
	s.deleted = append(s.deleted, path)
	if s.deleteFn != nil {
		return s.deleteFn(path)
	}
	return nil
}

// plainHasher is a transparent PasswordHasher for tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}
