// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultProfileImage is the placeholder shown until a user uploads their own.
const DefaultProfileImage = "/static/default_profile.png"

// User represents a member of the network.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Username       string    `gorm:"unique;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	FullName       string    `json:"full_name"`
	Headline       string    `json:"headline"`
	Bio            string    `gorm:"type:text" json:"bio"`
	ProfileImage   string    `gorm:"default:'/static/default_profile.png'" json:"profile_image"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	Experiences []Experience `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"experiences,omitempty"`
	Educations  []Education  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"educations,omitempty"`
	Posts       []Post       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"posts,omitempty"`
}

// Experience represents a work history entry on a user's profile.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Current     bool       `gorm:"default:false" json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
}

// Education represents a schooling entry on a user's profile.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `json:"field_of_study,omitempty"`
	StartDate    time.Time  `gorm:"not null" json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Current      bool       `gorm:"default:false" json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
}
