package common

import (
	"encoding/json"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger структура логгера
type Logger struct {
	*zap.Logger
}

// NewLogger функция-конструктор логгера
func NewLogger(cfg Config) *Logger {
	var zapEncoderCfg = zapcore.EncoderConfig{
		TimeKey:          "timestamp",
		LevelKey:         "level",
		NameKey:          "logger",
		CallerKey:        "caller",
		FunctionKey:      zapcore.OmitKey,
		MessageKey:       "msg",
		StacktraceKey:    "stacktrace",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.LowercaseLevelEncoder,
		EncodeTime:       zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000000"),
		EncodeDuration:   zapcore.MillisDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: "  ",
	}
	var zapCfg = zap.Config{
		Level:       zap.NewAtomicLevelAt(parseLogLevel(cfg.LogLevel)),
		Development: cfg.LogDevelopMode,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zapEncoderCfg,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stdout"},
	}
	var logger = zap.Must(zapCfg.Build()).With(
		zap.String("app", cfg.AppName),
		zap.String("version", cfg.AppVersion))
	logger.Info("logger construction succeeded")
	var created = &Logger{logger}
	created.setNewFiberZapLogger()
	return created
}

// setNewFiberZapLogger устанавливает логгер для fiber
func (l *Logger) setNewFiberZapLogger() {
	var fiberzapLogger = fiberzap.NewLogger(fiberzap.LoggerConfig{
		SetLogger: l.Logger,
	})
	log.SetLogger(fiberzapLogger)
}

// ParseRequestBody достаёт из тела запроса поля сотрудника для логирования.
// Адрес не логируется целиком
func ParseRequestBody(bodyData []byte) []zap.Field {
	var requestData map[string]any
	if err := json.Unmarshal(bodyData, &requestData); err != nil {
		return []zap.Field{zap.Int("body_size", len(bodyData))}
	}

	var fields []zap.Field
	for _, key := range []string{"name", "email", "mobile", "birthDate"} {
		if value, ok := requestData[key].(string); ok {
			fields = append(fields, zap.String(key, value))
		}
	}
	if address, ok := requestData["address"].(string); ok {
		fields = append(fields, zap.Int("address_len", len(address)))
	}
	return fields
}

func parseLogLevel(level string) zapcore.Level {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return parsed
}

// getRequestID извлекает requestId из контекста fiber
func getRequestID(ctx *fiber.Ctx) string {
	requestID := ctx.Get(fiber.HeaderXRequestID)
	if requestID == "" {
		if id, ok := ctx.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
			requestID = id
		}
	}
	return requestID
}

func withRequestID(ctx *fiber.Ctx, fields []zap.Field) []zap.Field {
	if requestID := getRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}

func (l *Logger) InfoCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Info(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) DebugCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Debug(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) WarnCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Warn(msg, withRequestID(ctx, fields)...)
}

func (l *Logger) ErrorCtx(ctx *fiber.Ctx, msg string, fields ...zap.Field) {
	l.Error(msg, withRequestID(ctx, fields)...)
}
