package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnvVars = []string{
	"APP_NAME", "APP_VERSION", "APP_ENV", "APP_PORT", "LOG_LEVEL", "LOG_DEVELOP_MODE",
	"STATIC_DIR", "ALLOW_ORIGINS", "DB_DIALECT", "DB_HOST", "DB_PORT", "DB_USERNAME",
	"DB_PASSWORD", "DB_DATABASE", "DB_DSN",
}

// очищает переменные окружения конфига на время теста
func clearConfigEnv(t *testing.T) {
	for _, envVar := range configEnvVars {
		t.Setenv(envVar, "")
		require.NoError(t, os.Unsetenv(envVar))
	}
}

func writeDotEnv(t *testing.T, content string) string {
	envFilePath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFilePath, []byte(content), 0644))
	return envFilePath
}

func Test_GetConfig_NoEnvFile(t *testing.T) {
	clearConfigEnv(t)

	// Ожидаем панику из-за валидации
	assert.Panics(t, func() {
		GetConfig(filepath.Join(t.TempDir(), ".env_not_exists"))
	}, "Должна быть паника из-за отсутствия обязательных полей")
}

func Test_GetConfig_NoEnvFile_WithPanicMessage(t *testing.T) {
	clearConfigEnv(t)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		panicMsg, ok := r.(string)
		assert.True(t, ok, "Паника должна содержать строку")
		assert.Contains(t, panicMsg, "config validation error")
	}()

	GetConfig(filepath.Join(t.TempDir(), ".env_not_exists"))
}

func Test_GetConfig_EnvVarsPresent_ButNotInDotEnv(t *testing.T) {
	clearConfigEnv(t)
	envFilePath := writeDotEnv(t, "")

	t.Setenv("APP_NAME", "test-app")
	t.Setenv("APP_VERSION", "1.0.0")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USERNAME", "postgres")
	t.Setenv("DB_PASSWORD", "1234")
	t.Setenv("DB_DATABASE", "mydb")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEVELOP_MODE", "true")

	cfg := GetConfig(envFilePath)

	assert.Equal(t, "test-app", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.LogDevelopMode)

	// значения по умолчанию
	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, ":3000", cfg.ListenAddr())
	assert.Equal(t, DialectPostgres, cfg.DriverName())
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=1234 dbname=mydb sslmode=disable", cfg.Dsn())
}

func Test_ConfigPrioritizesEnv_OverDotEnv(t *testing.T) {
	clearConfigEnv(t)
	envFilePath := writeDotEnv(t, `
APP_NAME=dotenv-app
APP_VERSION=2.0.0
DB_DIALECT=mysql
DB_DSN=root:secret@tcp(localhost:3306)/mydb
`)

	t.Setenv("APP_NAME", "env-app")
	t.Setenv("APP_VERSION", "3.0.0")

	cfg := GetConfig(envFilePath)

	assert.Equal(t, "env-app", cfg.AppName)
	assert.Equal(t, "3.0.0", cfg.AppVersion)
	assert.Equal(t, DialectMysql, cfg.DriverName())
	assert.Equal(t, "root:secret@tcp(localhost:3306)/mydb", cfg.Dsn())
}

func Test_GetConfig_InvalidDialect(t *testing.T) {
	clearConfigEnv(t)
	envFilePath := writeDotEnv(t, `
APP_NAME=app
APP_VERSION=1.0.0
DB_DIALECT=oracle
DB_DSN=whatever
`)

	assert.Panics(t, func() {
		GetConfig(envFilePath)
	})
}

func TestConfig_Dsn(t *testing.T) {
	t.Run("postgres production requires ssl", func(t *testing.T) {
		cfg := Config{
			AppEnv:     EnvProduction,
			DbDialect:  DialectPgx,
			DbHost:     "db",
			DbPort:     "6432",
			DbUsername: "user",
			DbPassword: "pass",
			DbDatabase: "employees",
		}
		assert.Equal(t, "host=db port=6432 user=user password=pass dbname=employees sslmode=require", cfg.Dsn())
		assert.Equal(t, DialectPgx, cfg.DriverName())
	})

	t.Run("postgres quotes values with spaces and quotes", func(t *testing.T) {
		cfg := Config{
			DbDialect:  DialectPostgres,
			DbHost:     "db",
			DbUsername: "app user",
			DbPassword: `p@ss w'o\rd`,
			DbDatabase: "employees",
		}
		dsn := cfg.Dsn()
		assert.Equal(t, `host=db port=5432 user='app user' password='p@ss w\'o\\rd' dbname=employees sslmode=disable`, dsn)

		parsed, err := pgconn.ParseConfig(dsn)
		require.NoError(t, err)
		assert.Equal(t, "app user", parsed.User)
		assert.Equal(t, `p@ss w'o\rd`, parsed.Password)
		assert.Equal(t, "employees", parsed.Database)
	})

	t.Run("postgres empty password stays a value", func(t *testing.T) {
		cfg := Config{DbDialect: DialectPostgres, DbHost: "db", DbUsername: "user", DbDatabase: "employees"}
		assert.Equal(t, "host=db port=5432 user=user password='' dbname=employees sslmode=disable", cfg.Dsn())
	})

	t.Run("mysql", func(t *testing.T) {
		cfg := Config{
			DbDialect:  DialectMysql,
			DbHost:     "db",
			DbUsername: "user",
			DbPassword: "pass",
			DbDatabase: "employees",
		}
		dsn := cfg.Dsn()
		assert.True(t, strings.HasPrefix(dsn, "user:pass@tcp(db:3306)/employees"), dsn)
		assert.NotContains(t, dsn, "tls=")
	})

	t.Run("mysql production uses tls", func(t *testing.T) {
		cfg := Config{
			AppEnv:     EnvProduction,
			DbDialect:  DialectMysql,
			DbHost:     "db",
			DbUsername: "user",
			DbDatabase: "employees",
		}
		assert.Contains(t, cfg.Dsn(), "tls=skip-verify")
	})
}
