package repo

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrTokenNotFound    = errors.New("token not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

type GormRepo struct {
	DB *gorm.DB
}
