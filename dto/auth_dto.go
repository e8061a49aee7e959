package dto

import "gin-foodcart/models"

type SignupInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// UserResponse パスワードは返さない
type UserResponse struct {
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role.String(),
	}
}
