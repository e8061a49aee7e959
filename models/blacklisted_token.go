package models

import "gorm.io/gorm"

// BlacklistedToken ログアウト済みのアクセストークン
type BlacklistedToken struct {
	gorm.Model
	Token     string `gorm:"not null;uniqueIndex"`
	ExpiresAt int64  `gorm:"not null;index"`
}
