package infra

import (
	"fmt"

	"gin-foodcart/constants"
	"gin-foodcart/models"

	"gorm.io/gorm"
)

// createIfAbsent 存在しないテーブルだけを作成する
// 既存のテーブルは列やインデックスが定義と違っても変更しない
func createIfAbsent(db *gorm.DB, op string, tables ...interface{}) error {
	migrator := db.Migrator()
	for _, table := range tables {
		if migrator.HasTable(table) {
			continue
		}
		if err := migrator.CreateTable(table); err != nil {
			return fmt.Errorf("%w: %s: %v", constants.ErrStorageUnavailable, op, err)
		}
	}
	return nil
}

// EnsureSchema users, products, cart_items の3テーブルを作成する
// 既に存在する場合は何もしないので、起動のたびに呼んでよい
// cart_items は外部キーの参照先より後に作る
func EnsureSchema(db *gorm.DB) error {
	return createIfAbsent(db, "ensure schema", &models.User{}, &models.Product{}, &models.CartItem{})
}

// EnsureTokenSchema トークンブラックリスト用のテーブル作成
func EnsureTokenSchema(db *gorm.DB) error {
	return createIfAbsent(db, "ensure token schema", &models.BlacklistedToken{})
}
