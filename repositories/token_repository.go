package repositories

import (
	"errors"
	"gin-foodcart/models"
	"time"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	AddBlacklistedToken(token string, expiresAt int64) error
	IsTokenBlacklisted(token string) (bool, error)
	CleanExpiredTokens() (int64, error)
}

type TokenRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db, now: time.Now}
}

// AddBlacklistedToken 同じトークンの二重登録はエラーにしない
func (r *TokenRepository) AddBlacklistedToken(token string, expiresAt int64) error {
	blacklisted, err := r.IsTokenBlacklisted(token)
	if err != nil {
		return err
	}
	if blacklisted {
		return nil
	}

	blacklistedToken := models.BlacklistedToken{
		Token:     token,
		ExpiresAt: expiresAt,
	}
	result := r.db.Create(&blacklistedToken)
	if result.Error != nil {
		return translateError("blacklist token", result.Error)
	}
	return nil
}

func (r *TokenRepository) IsTokenBlacklisted(token string) (bool, error) {
	var blacklistedToken models.BlacklistedToken
	result := r.db.Where("token = ?", token).Take(&blacklistedToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

// CleanExpiredTokens 期限切れのトークンを物理削除し、削除件数を返す
func (r *TokenRepository) CleanExpiredTokens() (int64, error) {
	now := r.now().Unix()
	result := r.db.Unscoped().Where("expires_at < ?", now).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
