package models

import "gin-foodcart/constants"

// Role ユーザーの種別。登録時に決まり、以後変わらない
type Role string

const (
	RoleAdmin    Role = constants.RoleAdmin
	RoleEmployee Role = constants.RoleEmployee
	RoleClient   Role = constants.RoleClient
)

// Roles 有効なロールの一覧
func Roles() []Role {
	return []Role{RoleAdmin, RoleEmployee, RoleClient}
}

// Valid ロールが3種類のいずれかであるか（大文字小文字を区別する）
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleClient:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// User パスワードは平文のまま保存される
type User struct {
	ID       uint   `gorm:"column:user_id;primaryKey;autoIncrement" json:"userId"`
	Username string `gorm:"column:username;uniqueIndex:idx_users_username" json:"username"`
	Password string `gorm:"column:password" json:"-"`
	Role     Role   `gorm:"column:role" json:"role"`
}

func (User) TableName() string {
	return "users"
}
