package services

import (
	"errors"
	"fmt"
	"gin-foodcart/constants"
	"gin-foodcart/models"
	"gin-foodcart/repositories"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type IAuthService interface {
	Register(username string, password string, role models.Role) (*models.User, error)
	Authenticate(username string, password string) (*models.User, bool, error)
	Login(username string, password string) (*string, error)
	GetUserFromToken(tokenString string) (*models.User, error)
	Logout(tokenString string) error
	ListUsers() ([]models.User, error)
}

// TokenOptions アクセストークンの署名鍵と有効期間
type TokenOptions struct {
	SecretKey string
	TTL       time.Duration
}

type AuthService struct {
	repository      repositories.IAuthRepository
	tokenRepository repositories.ITokenRepository
	options         TokenOptions
	logger          logrus.FieldLogger
	now             func() time.Time
}

func NewAuthService(repository repositories.IAuthRepository, tokenRepository repositories.ITokenRepository, options TokenOptions, logger logrus.FieldLogger) IAuthService {
	if options.TTL <= 0 {
		options.TTL = time.Hour
	}
	return &AuthService{
		repository:      repository,
		tokenRepository: tokenRepository,
		options:         options,
		logger:          logger,
		now:             time.Now,
	}
}

type accessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Register ロールを検証し、ユーザー名の重複を事前に確認してから登録する
// 確認と登録の間に別の接続が同じ名前を登録した場合は、INSERT時の制約違反も ErrUsernameTaken として返す
func (s *AuthService) Register(username string, password string, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", constants.ErrInvalidRole, role)
	}

	unique, err := s.repository.IsUsernameUnique(username)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, constants.ErrUsernameTaken
	}

	userID, err := s.repository.InsertUser(username, password, role)
	if err != nil {
		if errors.Is(err, constants.ErrConstraintViolation) {
			return nil, fmt.Errorf("%w: %w", constants.ErrUsernameTaken, err)
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "role": role}).Info("user registered")
	return &models.User{
		ID:       userID,
		Username: username,
		Password: password,
		Role:     role,
	}, nil
}

// Authenticate 見つからなければ (nil, false, nil)
// 回数制限やロックアウトは行わない
func (s *AuthService) Authenticate(username string, password string) (*models.User, bool, error) {
	user, found, err := s.repository.FindByCredentials(username, password)
	if err != nil {
		return nil, false, err
	}
	if !found {
		s.logger.WithField("username", username).Debug("authentication failed")
		return nil, false, nil
	}
	return user, true, nil
}

func (s *AuthService) Login(username string, password string) (*string, error) {
	user, found, err := s.Authenticate(username, password)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, constants.ErrInvalidCredentials
	}

	token, err := s.CreateToken(user)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (s *AuthService) CreateToken(user *models.User) (*string, error) {
	now := s.now()
	claims := accessClaims{
		Username: user.Username,
		Role:     user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.options.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.options.SecretKey))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *AuthService) parseToken(tokenString string) (*accessClaims, error) {
	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return []byte(s.options.SecretKey), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		// jwt側のエラー（jwt.ErrTokenExpired など）も errors.Is で判定できるように残す
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidTokenType, err)
	}
	return claims, nil
}

// GetUserFromToken ロールはトークンではなくDBのusersテーブルから取得する
func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, constants.ErrTokenBlacklisted
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: subject %q", constants.ErrInvalidTokenType, claims.Subject)
	}
	return s.repository.FindUserByID(uint(userID))
}

func (s *AuthService) Logout(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	// 有効期限が取得できない場合は、現在時刻からTTL後を設定
	expiresAt := s.now().Add(s.options.TTL).Unix()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}

	if err := s.tokenRepository.AddBlacklistedToken(tokenString, expiresAt); err != nil {
		return err
	}
	s.logger.WithField("user_id", claims.Subject).Info("user logged out")
	return nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.repository.ListUsers()
}
