package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkup/internal/auth"
	"linkup/internal/database"
	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/storage"
)

// newTestServices wires the full service stack over an in-memory database.
func newTestServices(t *testing.T) (*UserService, *PostService, *MessageService) {
	t.Helper()

	db, err := database.ConnectSQLite(":memory:")
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}

	blobs, err := storage.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(db, nil)
	connRepo := repository.NewConnectionRepository(db)
	postRepo := repository.NewPostRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	users := NewUserService(userRepo, connRepo, auth.NewBcryptHasher(4), blobs)
	posts := NewPostService(postRepo, connRepo, blobs)
	messages := NewMessageService(msgRepo, userRepo)
	return users, posts, messages
}

func registerUser(t *testing.T, svc *UserService, tag string) *models.User {
	t.Helper()
	suffix := fmt.Sprintf("%s%d", tag, time.Now().UnixNano()%1_000_000_000)
	user, err := svc.CreateUser(context.Background(),
		suffix+"@example.com", "u"+suffix, "integration-pass", "User "+tag)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func TestConnectionLifecycleEndToEnd(t *testing.T) {
	users, _, _ := newTestServices(t)
	ctx := context.Background()

	alice := registerUser(t, users, "alice")
	bob := registerUser(t, users, "bob")

	req, err := users.SendConnectionRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, req)

	// resend is idempotent
	again, err := users.SendConnectionRequest(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, req.ID, again.ID)

	pending, err := users.GetPendingRequests(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, alice.ID, pending[0].SenderID)

	accepted, err := users.AcceptConnectionRequest(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, accepted)
	assert.Equal(t, models.ConnectionRequestAccepted, accepted.Status)

	// edge is symmetric
	aliceConns, err := users.GetUserConnections(ctx, alice.ID)
	require.NoError(t, err)
	bobConns, err := users.GetUserConnections(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, aliceConns, 1)
	require.Len(t, bobConns, 1)
	assert.Equal(t, bob.ID, aliceConns[0].ID)
	assert.Equal(t, alice.ID, bobConns[0].ID)

	// accepting twice changes nothing
	repeat, err := users.AcceptConnectionRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Nil(t, repeat)

	// a fresh request between connected users is refused silently
	dup, err := users.SendConnectionRequest(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, dup)
}

func TestRejectedRequestCreatesNoEdge(t *testing.T) {
	users, _, _ := newTestServices(t)
	ctx := context.Background()

	carol := registerUser(t, users, "carol")
	dave := registerUser(t, users, "dave")

	req, err := users.SendConnectionRequest(ctx, carol.ID, dave.ID)
	require.NoError(t, err)

	rejected, err := users.RejectConnectionRequest(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, rejected)
	assert.Equal(t, models.ConnectionRequestRejected, rejected.Status)

	conns, err := users.GetUserConnections(ctx, carol.ID)
	require.NoError(t, err)
	assert.Empty(t, conns)
}

func TestFeedCoversSelfAndConnections(t *testing.T) {
	users, posts, _ := newTestServices(t)
	ctx := context.Background()

	me := registerUser(t, users, "feedme")
	friend := registerUser(t, users, "feedfriend")
	stranger := registerUser(t, users, "feedstranger")

	req, err := users.SendConnectionRequest(ctx, me.ID, friend.ID)
	require.NoError(t, err)
	_, err = users.AcceptConnectionRequest(ctx, req.ID)
	require.NoError(t, err)

	for _, author := range []*models.User{me, friend, stranger} {
		_, err := posts.CreatePost(ctx, author.ID, "post by "+author.Username, nil)
		require.NoError(t, err)
	}

	feed, err := posts.GetFeedPosts(ctx, me.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	for _, p := range feed {
		assert.NotEqual(t, stranger.ID, p.AuthorID, "strangers stay out of the feed")
	}
}

func TestLikeAccounting(t *testing.T) {
	users, posts, _ := newTestServices(t)
	ctx := context.Background()

	author := registerUser(t, users, "likeauthor")
	fan := registerUser(t, users, "likefan")

	post, err := posts.CreatePost(ctx, author.ID, "like me", nil)
	require.NoError(t, err)

	_, err = posts.LikePost(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	_, err = posts.LikePost(ctx, post.ID, fan.ID)
	require.NoError(t, err)

	count, err := posts.GetPostLikesCount(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "repeat likes do not double count")

	liked, err := posts.HasLikedPost(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	removed, err := posts.UnlikePost(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = posts.UnlikePost(ctx, post.ID, fan.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestMessagingEndToEnd(t *testing.T) {
	users, _, messages := newTestServices(t)
	ctx := context.Background()

	a := registerUser(t, users, "msga")
	b := registerUser(t, users, "msgb")

	_, err := messages.SendMessage(ctx, a.ID, b.ID, "first")
	require.NoError(t, err)
	_, err = messages.SendMessage(ctx, b.ID, a.ID, "second")
	require.NoError(t, err)
	_, err = messages.SendMessage(ctx, a.ID, b.ID, "third")
	require.NoError(t, err)

	convo, err := messages.GetConversation(ctx, a.ID, b.ID, 0)
	require.NoError(t, err)
	require.Len(t, convo, 3)
	assert.Equal(t, "first", convo[0].Content, "oldest first")
	assert.Equal(t, "third", convo[2].Content)

	unread, err := messages.GetUnreadMessagesCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	marked, err := messages.MarkMessagesAsRead(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	unread, err = messages.GetUnreadMessagesCount(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)

	summaries, err := messages.GetConversations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, b.ID, summaries[0].Peer.ID)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, "third", summaries[0].LastMessage.Content)
	assert.Equal(t, int64(1), summaries[0].UnreadCount, "b's reply is still unread for a")
}

func TestSearchFindsProfilesByHeadline(t *testing.T) {
	users, _, _ := newTestServices(t)
	ctx := context.Background()

	u := registerUser(t, users, "searchable")
	_, err := users.UpdateProfile(ctx, u.ID, ProfilePatch{Headline: strPtr("Distributed Systems Gardener")})
	require.NoError(t, err)

	found, err := users.SearchUsers(ctx, "systems gardener", 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, u.ID, found[0].ID)
}
