package constants

import "errors"

// ユーザーロール
const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
	RoleClient   = "Client"
)

// エラーメッセージ
const (
	ErrUnexpected       = "Unexpected error"
	ErrInvalidInput     = "Invalid input"
	ErrUsernameExists   = "Username already exists"
	ErrLoginFailed      = "Invalid username or password"
	ErrCartItemConflict = "Product is already in the cart or does not exist"
)

// errors.Is で判定するためのエラー
var (
	// ストレージ由来
	ErrConstraintViolation = errors.New("constraint violation")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrNotFound            = errors.New("not found")

	// サービス由来
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenBlacklisted   = errors.New("token is blacklisted")
	ErrInvalidTokenType   = errors.New("invalid token")
)
