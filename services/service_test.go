package services

import (
	"path/filepath"
	"testing"

	"gin-foodcart/infra"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	tokenDB *gorm.DB
	logger  *logrus.Logger
	hook    *test.Hook
}

func setupEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()

	db, err := infra.OpenSQLite(filepath.Join(dir, "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })
	require.NoError(t, infra.EnsureSchema(db))

	tokenDB, err := infra.OpenSQLite(filepath.Join(dir, "token_blacklist.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(tokenDB) })
	require.NoError(t, infra.EnsureTokenSchema(tokenDB))

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return testEnv{db: db, tokenDB: tokenDB, logger: logger, hook: hook}
}

func newNullLogger() (*logrus.Logger, *test.Hook) {
	return test.NewNullLogger()
}
