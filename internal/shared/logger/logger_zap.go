// Package logger содержит общий логгер для server и agent.
//
// Пакет предоставляет Zap-логгер, настроенный на запись в файл с ротацией
// (lumberjack), и методы для логирования HTTP-запросов и операций шифрования.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger представляет обёртку над zap.Logger.
//
// Встраивание *zap.Logger позволяет использовать все методы zap напрямую.
type Logger struct {
	*zap.Logger
}

// New создаёт файловый zap-логгер, пишущий в dir/file.
//
// Для файлов включена ротация (MaxSize/MaxBackups/MaxAge) и сжатие архивов.
// Формат времени: "HH:MM:SS DD.MM.YYYY".
func New(dir, file string) *Logger {
	_ = os.MkdirAll(dir, 0755)

	// lumberjack отвечает за ротацию файлов
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(dir, file),
		MaxSize:    100, // MB
		MaxBackups: 10,
		MaxAge:     30, // дней
		Compress:   true,
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = customTimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		writer,
		zap.InfoLevel,
	)

	return &Logger{Logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// NewHTTPLogger создаёт логгер сервера, файл runtime/logs/http.log.
func NewHTTPLogger() *Logger {
	return New(filepath.Join("runtime", "logs"), "http.log")
}

// Nop возвращает логгер, который ничего не пишет. Удобно для тестов.
func Nop() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

// LogRequest записывает структурированный лог об HTTP-запросе.
//
// duration — длительность обработки запроса в миллисекундах.
func (logger *Logger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}

// LogOperation записывает завершённую операцию шифрования.
// Сам ключ и тексты в лог не попадают, только их длины.
func (logger *Logger) LogOperation(cipher, direction string, inputLen, outputLen int, err error) {
	fields := []zap.Field{
		zap.String("cipher", cipher),
		zap.String("direction", direction),
		zap.Int("input_len", inputLen),
		zap.Int("output_len", outputLen),
	}
	if err != nil {
		logger.Warn("cipher operation failed", append(fields, zap.Error(err))...)
		return
	}
	logger.Info("cipher operation", fields...)
}

// customTimeEncoder форматирует время для логов в виде "HH:MM:SS DD.MM.YYYY".
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05 02.01.2006"))
}
