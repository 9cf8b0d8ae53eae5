// Package server wires the application's dependencies with an explicit
// lifecycle: everything is constructed once at startup and released in
// Shutdown. The HTTP surface for the domain operations lives outside this
// module; only health wiring is registered here.
package server

import (
	"context"

	"linkup/internal/auth"
	"linkup/internal/cache"
	"linkup/internal/config"
	"linkup/internal/database"
	"linkup/internal/repository"
	"linkup/internal/service"
	"linkup/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Server owns the store handle and the service layer built on top of it.
type Server struct {
	cfg   *config.Config
	db    *gorm.DB
	cache *cache.Cache

	Users    *service.UserService
	Posts    *service.PostService
	Messages *service.MessageService
}

// New constructs the full dependency graph from configuration.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	c := cache.New(cfg.RedisURL)

	blobs, err := storage.NewDiskStore(cfg.BlobDir)
	if err != nil {
		database.Close(db)
		return nil, err
	}

	userRepo := repository.NewUserRepository(db, c)
	connRepo := repository.NewConnectionRepository(db)
	postRepo := repository.NewPostRepository(db)
	msgRepo := repository.NewMessageRepository(db)

	hasher := auth.NewBcryptHasher(0)

	return &Server{
		cfg:      cfg,
		db:       db,
		cache:    c,
		Users:    service.NewUserService(userRepo, connRepo, hasher, blobs),
		Posts:    service.NewPostService(postRepo, connRepo, blobs),
		Messages: service.NewMessageService(msgRepo, userRepo),
	}, nil
}

// DB exposes the store handle for seeding and migrations.
func (s *Server) DB() *gorm.DB {
	return s.db
}

// RegisterRoutes attaches the health endpoint.
func (s *Server) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		sqlDB, err := s.db.DB()
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		if err := sqlDB.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// Shutdown releases the database and cache connections.
func (s *Server) Shutdown(_ context.Context) error {
	if err := s.cache.Close(); err != nil {
		return err
	}
	return database.Close(s.db)
}
