package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AccessToken stores only the sha256 digest of the opaque token,
// the plaintext is returned to the client once at login and never persisted.
type AccessToken struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null"           json:"user_id"`
	Name      string    `gorm:"not null"                 json:"name"`
	TokenHash string    `gorm:"uniqueIndex;not null"     json:"-"`
	Abilities string    `gorm:"not null;default:*"       json:"abilities"`
	CreatedAt time.Time `json:"created_at"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null"                 json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null"                 json:"name"`
	Description string    `gorm:"not null"                 json:"description"`
	Price       float64   `gorm:"not null"                 json:"price"`
	Stock       int       `gorm:"not null"                 json:"stock"`
	Size        int       `gorm:"not null;check:size BETWEEN 1 AND 5" json:"size"`
	CategoryID  uint      `gorm:"index;not null"           json:"category_id"`
	ImageURL    string    `gorm:"not null"                 json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
