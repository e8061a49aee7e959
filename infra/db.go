package infra

import (
	"fmt"
	"strings"

	"gin-foodcart/constants"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func gormConfig() *gorm.Config {
	// ドライバのエラーを gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated に変換させる
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	}
}

// SetupDB DB_NAMEが設定されていればPostgreSQL、なければSQLiteファイルに接続する
func SetupDB(cfg *Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), gormConfig())
		if err != nil {
			return nil, fmt.Errorf("%w: postgres %s@%s: %v", constants.ErrStorageUnavailable, cfg.DBName, cfg.DBHost, err)
		}
		if err := ping(db); err != nil {
			return nil, err
		}
		return db, nil
	}
	return OpenSQLite(cfg.DBPath)
}

// OpenSQLite 外部キー制約を有効にしてSQLiteファイルを開く
// 対話セッションは1つだけなので接続も1本に固定する
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(sqliteDSN(path)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite %s: %v", constants.ErrStorageUnavailable, path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrStorageUnavailable, err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := ping(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SetupTokenDB トークンブラックリスト用のSQLiteデータベース接続を設定
func SetupTokenDB(cfg *Config) (*gorm.DB, error) {
	return OpenSQLite(cfg.TokenDBPath)
}

// Close 接続を閉じる。nilの場合は何もしない
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

func ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("%w: %v", constants.ErrStorageUnavailable, err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("%w: %v", constants.ErrStorageUnavailable, err)
	}
	return nil
}
