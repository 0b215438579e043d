package common

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

const (
	DialectPostgres = "postgres"
	DialectPgx      = "pgx"
	DialectMysql    = "mysql"

	EnvProduction = "production"
)

// Общая конфигурация всего приложения
type Config struct {
	AppName        string `validate:"required"`
	AppVersion     string `validate:"required"`
	AppEnv         string
	AppPort        string `validate:"required,numeric"`
	LogLevel       string
	LogDevelopMode bool
	StaticDir      string
	AllowOrigins   string

	DbDialect  string `validate:"required,oneof=postgres pgx mysql"`
	DbHost     string `validate:"required_without=DbDsn"`
	DbPort     string `validate:"omitempty,numeric"`
	DbUsername string `validate:"required_without=DbDsn"`
	DbPassword string
	DbDatabase string `validate:"required_without=DbDsn"`
	// готовая строка подключения, если задана, то параметры выше игнорируются
	DbDsn string
}

// Получение конфигурации из .env файла или переменных окружения.
// Переменные окружения имеют приоритет над .env
func GetConfig(envFile string) Config {
	_ = godotenv.Load(envFile)
	var cfg = Config{
		AppName:        os.Getenv("APP_NAME"),
		AppVersion:     os.Getenv("APP_VERSION"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AppPort:        getEnv("APP_PORT", "3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogDevelopMode: getBoolEnv("LOG_DEVELOP_MODE"),
		StaticDir:      getEnv("STATIC_DIR", "./public"),
		AllowOrigins:   getEnv("ALLOW_ORIGINS", "*"),
		DbDialect:      strings.ToLower(getEnv("DB_DIALECT", DialectPostgres)),
		DbHost:         os.Getenv("DB_HOST"),
		DbPort:         os.Getenv("DB_PORT"),
		DbUsername:     os.Getenv("DB_USERNAME"),
		DbPassword:     os.Getenv("DB_PASSWORD"),
		DbDatabase:     os.Getenv("DB_DATABASE"),
		DbDsn:          os.Getenv("DB_DSN"),
	}
	if err := validator.New().Struct(cfg); err != nil {
		panic(fmt.Sprintf("config validation error: %v", err))
	}
	return cfg
}

// имя драйвера database/sql для выбранного диалекта
func (cfg Config) DriverName() string {
	return cfg.DbDialect
}

func (cfg Config) IsProduction() bool {
	return cfg.AppEnv == EnvProduction
}

func (cfg Config) ListenAddr() string {
	return ":" + cfg.AppPort
}

// Dsn собирает строку подключения для драйвера.
// В production соединение с базой шифруется без проверки сертификата
func (cfg Config) Dsn() string {
	if cfg.DbDsn != "" {
		return cfg.DbDsn
	}
	if cfg.DbDialect == DialectMysql {
		mc := mysql.NewConfig()
		mc.User = cfg.DbUsername
		mc.Passwd = cfg.DbPassword
		mc.Net = "tcp"
		mc.Addr = net.JoinHostPort(cfg.DbHost, cfg.dbPortOr("3306"))
		mc.DBName = cfg.DbDatabase
		if cfg.IsProduction() {
			mc.TLSConfig = "skip-verify"
		}
		return mc.FormatDSN()
	}
	sslMode := "disable"
	if cfg.IsProduction() {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(cfg.DbHost), dsnValue(cfg.dbPortOr("5432")), dsnValue(cfg.DbUsername),
		dsnValue(cfg.DbPassword), dsnValue(cfg.DbDatabase), sslMode)
}

// значение в формате key=value libpq: пустое или с пробелами и кавычками берётся в кавычки,
// а ' и \ экранируются
func dsnValue(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\n\r'\\") {
		return value
	}
	return "'" + dsnEscaper.Replace(value) + "'"
}

var dsnEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func (cfg Config) dbPortOr(fallback string) string {
	if cfg.DbPort == "" {
		return fallback
	}
	return cfg.DbPort
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}
	return value
}
