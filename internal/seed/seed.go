package seed

import (
	"fmt"

	"linkup/internal/models"
	"linkup/internal/observability"

	"gorm.io/gorm"
)

// Options controls the size of the seeded mesh.
type Options struct {
	Users            int
	PostsPerUser     int
	CommentsPerPost  int
	MessagesPerPair  int
	ConnectionDegree int
}

// DefaultOptions returns a mesh large enough to exercise feeds and
// conversation rollups during development.
func DefaultOptions() Options {
	return Options{
		Users:            12,
		PostsPerUser:     4,
		CommentsPerPost:  2,
		MessagesPerPair:  5,
		ConnectionDegree: 3,
	}
}

// Run populates the database with a connected social mesh: users with
// profiles, accepted connections, posts with comments and likes, and message
// threads with a mix of read and unread messages.
func Run(db *gorm.DB, opts Options) error {
	f := NewFactory(db)
	log := observability.GlobalLogger

	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		if _, err := f.CreateExperience(u); err != nil {
			return fmt.Errorf("seed experience: %w", err)
		}
		if _, err := f.CreateEducation(u); err != nil {
			return fmt.Errorf("seed education: %w", err)
		}
		users = append(users, u)
	}
	log.Info("Seeded users", "count", len(users))

	// Ring-plus-neighbors topology keeps every feed non-trivial.
	for i, u := range users {
		for d := 1; d <= opts.ConnectionDegree; d++ {
			peer := users[(i+d)%len(users)]
			if u.ID == peer.ID {
				continue
			}
			var existing int64
			db.Model(&models.Connection{}).
				Where("user_id = ? AND peer_id = ?", u.ID, peer.ID).
				Count(&existing)
			if existing > 0 {
				continue
			}
			if err := f.Connect(u, peer); err != nil {
				return fmt.Errorf("seed connection: %w", err)
			}
		}
	}
	log.Info("Seeded connections")

	for i, u := range users {
		for p := 0; p < opts.PostsPerUser; p++ {
			post, err := f.CreatePost(u, 30)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}
			for c := 0; c < opts.CommentsPerPost; c++ {
				commenter := users[(i+c+1)%len(users)]
				comment := &models.Comment{
					PostID:   post.ID,
					AuthorID: commenter.ID,
					Content:  "Great point!",
				}
				if err := db.Create(comment).Error; err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
				like := &models.Like{PostID: post.ID, UserID: commenter.ID}
				if err := db.Create(like).Error; err != nil {
					return fmt.Errorf("seed like: %w", err)
				}
			}
		}
	}
	log.Info("Seeded posts, comments, and likes")

	for i, u := range users {
		peer := users[(i+1)%len(users)]
		for m := 0; m < opts.MessagesPerPair; m++ {
			// Alternate direction; leave the last two unread.
			sender, receiver := u, peer
			if m%2 == 1 {
				sender, receiver = peer, u
			}
			if _, err := f.CreateMessage(sender, receiver, m < opts.MessagesPerPair-2); err != nil {
				return fmt.Errorf("seed message: %w", err)
			}
		}
	}
	log.Info("Seeded messages")

	return nil
}
