// Package seed provides helpers to create demo and test data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// demoPasswordHash is computed once; every seeded account shares the
// password "linkup-demo" so seeded data is usable during development.
var demoPasswordHash = func() string {
	b, err := bcrypt.GenerateFromPassword([]byte("linkup-demo"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(b)
}()

// CreateUser persists a user with realistic profile fields.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Email:          gofakeit.Email(),
		Username:       strings.ToLower(gofakeit.Username()) + fmt.Sprintf("%d", f.rng.Intn(10000)),
		HashedPassword: demoPasswordHash,
		FullName:       name,
		Headline:       gofakeit.JobTitle() + " at " + gofakeit.Company(),
		Bio:            gofakeit.Paragraph(1, 2, 8, " "),
		ProfileImage:   models.DefaultProfileImage,
		Location:       gofakeit.City() + ", " + gofakeit.Country(),
	}
	for _, override := range overrides {
		override(user)
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateExperience persists a work history entry for the user.
func (f *Factory) CreateExperience(user *models.User) (*models.Experience, error) {
	start := gofakeit.DateRange(time.Now().AddDate(-10, 0, 0), time.Now().AddDate(-1, 0, 0))
	exp := &models.Experience{
		UserID:      user.ID,
		Title:       gofakeit.JobTitle(),
		Company:     gofakeit.Company(),
		Location:    gofakeit.City(),
		StartDate:   start,
		Current:     f.rng.Intn(3) == 0,
		Description: gofakeit.Sentence(12),
	}
	if !exp.Current {
		end := gofakeit.DateRange(start, time.Now())
		exp.EndDate = &end
	}
	if err := f.db.Create(exp).Error; err != nil {
		return nil, err
	}
	return exp, nil
}

// CreateEducation persists a schooling entry for the user.
func (f *Factory) CreateEducation(user *models.User) (*models.Education, error) {
	start := gofakeit.DateRange(time.Now().AddDate(-15, 0, 0), time.Now().AddDate(-5, 0, 0))
	end := start.AddDate(4, 0, 0)
	edu := &models.Education{
		UserID:       user.ID,
		School:       gofakeit.Company() + " University",
		Degree:       gofakeit.RandomString([]string{"BSc", "BA", "MSc", "MBA", "PhD"}),
		FieldOfStudy: gofakeit.BookGenre(),
		StartDate:    start,
		EndDate:      &end,
	}
	if err := f.db.Create(edu).Error; err != nil {
		return nil, err
	}
	return edu, nil
}

// CreatePost persists a post with a created_at spread over the past days.
func (f *Factory) CreatePost(author *models.User, maxDaysBack int) (*models.Post, error) {
	if maxDaysBack <= 0 {
		maxDaysBack = 30
	}
	post := &models.Post{
		AuthorID:  author.ID,
		Content:   gofakeit.Paragraph(1, 3, 10, "\n"),
		CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(maxDaysBack*24*60)) * time.Minute),
	}
	if f.rng.Intn(4) == 0 {
		post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID())
	}
	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// Connect materializes an accepted request plus both edge rows between the
// two users, mirroring the production accept path.
func (f *Factory) Connect(a, b *models.User) error {
	req := &models.ConnectionRequest{
		SenderID:   a.ID,
		ReceiverID: b.ID,
		Status:     models.ConnectionRequestAccepted,
	}
	if err := f.db.Create(req).Error; err != nil {
		return err
	}
	edges := []models.Connection{
		{UserID: a.ID, PeerID: b.ID},
		{UserID: b.ID, PeerID: a.ID},
	}
	return f.db.Create(&edges).Error
}

// CreateMessage persists a direct message between two users.
func (f *Factory) CreateMessage(sender, receiver *models.User, read bool) (*models.Message, error) {
	msg := &models.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Content:    gofakeit.Sentence(10),
		Read:       read,
		CreatedAt:  time.Now().Add(-time.Duration(f.rng.Intn(7*24*60)) * time.Minute),
	}
	if err := f.db.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}
