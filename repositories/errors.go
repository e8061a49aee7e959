package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gin-foodcart/constants"

	"gorm.io/gorm"
)

// 変換されなかったドライバのエラー文言（SQLite / PostgreSQL）
var constraintMessages = []string{
	"UNIQUE constraint",
	"FOREIGN KEY constraint",
	"PRIMARY KEY constraint",
	"duplicate key",
	"violates foreign key constraint",
}

// translateError 制約違反を constants.ErrConstraintViolation でラップする
// それ以外のエラーはそのまま返す
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%s: %w: %v", op, constants.ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	for _, m := range constraintMessages {
		if strings.Contains(msg, m) {
			return true
		}
	}
	return false
}

func notFound(what string) error {
	return fmt.Errorf("%s %w", what, constants.ErrNotFound)
}
