package repositories

import (
	"path/filepath"
	"testing"

	"gin-foodcart/infra"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	require.NoError(t, infra.EnsureSchema(db))
	return db
}

// setupDBWithExistingSchema 列制約の UNIQUE で作られた既存のテーブルを使う
func setupDBWithExistingSchema(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.OpenSQLite(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	for _, ddl := range []string{
		`CREATE TABLE IF NOT EXISTS users (user_id INTEGER PRIMARY KEY AUTOINCREMENT, username TEXT UNIQUE, password TEXT, role TEXT)`,
		`CREATE TABLE IF NOT EXISTS products (product_id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT, category TEXT)`,
		`CREATE TABLE IF NOT EXISTS cart_items (user_id INTEGER, product_id INTEGER, quantity INTEGER,
			FOREIGN KEY (user_id) REFERENCES users(user_id),
			FOREIGN KEY (product_id) REFERENCES products(product_id),
			PRIMARY KEY (user_id, product_id))`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	require.NoError(t, infra.EnsureSchema(db))
	return db
}
