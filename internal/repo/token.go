package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/petcute_backend/internal/models"
)

func (r *GormRepo) IssueToken(ctx context.Context, t *models.AccessToken) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *GormRepo) FindTokenByHash(ctx context.Context, tokenHash string) (*models.AccessToken, error) {
	var token models.AccessToken
	if err := r.DB.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeToken deletes by id. Deleting an already-deleted token is not an error.
func (r *GormRepo) RevokeToken(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&models.AccessToken{}, id).Error
}
