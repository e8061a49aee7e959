package repositories

import (
	"errors"
	"gin-foodcart/models"

	"gorm.io/gorm"
)

// IAuthRepository users テーブルへのアクセス
// 書き込みはコミットしない。トランザクションは呼び出し側が管理する
type IAuthRepository interface {
	InsertUser(username string, password string, role models.Role) (uint, error)
	ListUsers() ([]models.User, error)
	IsUsernameUnique(username string) (bool, error)
	FindByCredentials(username string, password string) (*models.User, bool, error)
	FindUserByID(userID uint) (*models.User, error)
}

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) IAuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) InsertUser(username string, password string, role models.Role) (uint, error) {
	user := models.User{
		Username: username,
		Password: password,
		Role:     role,
	}
	result := r.db.Create(&user)
	if result.Error != nil {
		return 0, translateError("insert user", result.Error)
	}
	return user.ID, nil
}

func (r *AuthRepository) ListUsers() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("user_id").Find(&users)
	if result.Error != nil {
		return nil, translateError("list users", result.Error)
	}
	return users, nil
}

func (r *AuthRepository) IsUsernameUnique(username string) (bool, error) {
	var count int64
	result := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count)
	if result.Error != nil {
		return false, translateError("check username", result.Error)
	}
	return count == 0, nil
}

// FindByCredentials ユーザー名とパスワードの両方が完全一致する行を探す
// 見つからない場合は (nil, false, nil)。ユーザー名不一致とパスワード不一致は区別しない
func (r *AuthRepository) FindByCredentials(username string, password string) (*models.User, bool, error) {
	var user models.User
	result := r.db.Where("username = ? AND password = ?", username, password).Take(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, translateError("find user", result.Error)
	}
	return &user, true, nil
}

func (r *AuthRepository) FindUserByID(userID uint) (*models.User, error) {
	var user models.User
	result := r.db.Take(&user, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, notFound("user")
		}
		return nil, translateError("find user", result.Error)
	}
	return &user, nil
}
