package services

import (
	"gin-foodcart/infra"
	"gin-foodcart/repositories"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// StartupReport 起動時の準備処理の結果
type StartupReport struct {
	SeededProducts int
	Users          int
}

// PrepareStore スキーマ作成 → 初期商品投入（1トランザクション）→ 登録済みユーザー数の確認
func PrepareStore(db *gorm.DB, logger logrus.FieldLogger) (StartupReport, error) {
	var report StartupReport

	if err := infra.EnsureSchema(db); err != nil {
		return report, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		inserted, err := SeedIfEmpty(repositories.NewProductRepository(tx))
		report.SeededProducts = inserted
		return err
	})
	if err != nil {
		report.SeededProducts = 0
		return report, err
	}

	users, err := repositories.NewAuthRepository(db).ListUsers()
	if err != nil {
		return report, err
	}
	report.Users = len(users)

	logger.WithFields(logrus.Fields{
		"seeded_products": report.SeededProducts,
		"users":           report.Users,
	}).Info("store prepared")
	return report, nil
}
