package service

import (
	"context"
	"fmt"
	"time"

	"linkup/internal/models"
	"linkup/internal/observability"
	"linkup/internal/repository"
	"linkup/internal/storage"
)

const (
	defaultUserPostsLimit = 10
	defaultFeedLimit      = 20
)

// ImageUpload is an image payload attached to a post or profile.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// PostService provides post, comment, like, and feed logic.
type PostService struct {
	postRepo repository.PostRepository
	connRepo repository.ConnectionRepository
	blobs    storage.BlobStore
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, connRepo repository.ConnectionRepository, blobs storage.BlobStore) *PostService {
	return &PostService{
		postRepo: postRepo,
		connRepo: connRepo,
		blobs:    blobs,
	}
}

// CreatePost inserts a post, storing the optional image payload first. The
// blob write and the row insert are not transactionally linked; when the
// insert fails the blob is removed best-effort.
func (s *PostService) CreatePost(ctx context.Context, authorID uint, content string, image *ImageUpload) (*models.Post, error) {
	var imageURL string
	if image != nil {
		name := fmt.Sprintf("%d_%d_%s", authorID, time.Now().UnixNano(), image.Filename)
		path, err := s.blobs.Store(name, image.Data)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		imageURL = path
	}

	post := &models.Post{
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		if imageURL != "" {
			if delErr := s.blobs.Delete(imageURL); delErr != nil {
				observability.GlobalLogger.Warn("Failed to clean up orphaned post image", "path", imageURL, "error", delErr.Error())
			}
		}
		return nil, err
	}
	return post, nil
}

// GetPostByID returns the post or nil when no such post exists.
func (s *PostService) GetPostByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// GetUserPosts returns the user's posts newest first.
func (s *PostService) GetUserPosts(ctx context.Context, userID uint, skip, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultUserPostsLimit
	}
	return s.postRepo.GetByAuthor(ctx, userID, skip, limit)
}

// GetFeedPosts returns posts authored by the user or any current connection,
// newest first. The connection set is re-read on every call.
func (s *PostService) GetFeedPosts(ctx context.Context, userID uint, skip, limit int) ([]models.Post, error) {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	ids, err := s.connRepo.GetConnectionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids = append(ids, userID)
	return s.postRepo.GetByAuthors(ctx, ids, skip, limit)
}

// AddComment appends a comment to a post.
func (s *PostService) AddComment(ctx context.Context, postID, authorID uint, content string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetPostComments returns a post's comments oldest first.
func (s *PostService) GetPostComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	return s.postRepo.GetComments(ctx, postID)
}

// LikePost records a like for (post, user). Liking an already-liked post is a
// no-op that returns the existing like.
func (s *PostService) LikePost(ctx context.Context, postID, userID uint) (*models.Like, error) {
	existing, err := s.postRepo.GetLike(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	like := &models.Like{PostID: postID, UserID: userID}
	if err := s.postRepo.CreateLike(ctx, like); err != nil {
		return nil, err
	}
	return like, nil
}

// UnlikePost removes the user's like and reports whether one existed.
func (s *PostService) UnlikePost(ctx context.Context, postID, userID uint) (bool, error) {
	return s.postRepo.DeleteLike(ctx, postID, userID)
}

// HasLikedPost reports whether the user has liked the post.
func (s *PostService) HasLikedPost(ctx context.Context, postID, userID uint) (bool, error) {
	like, err := s.postRepo.GetLike(ctx, postID, userID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

// GetPostLikesCount returns the post's like count.
func (s *PostService) GetPostLikesCount(ctx context.Context, postID uint) (int64, error) {
	return s.postRepo.CountLikes(ctx, postID)
}
