// Package logger собирает логгер приложения под текущее окружение.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New возвращает настроенный logrus-логгер: JSON и info-уровень на проде,
// текст и debug во всех остальных окружениях. Окружение берется из GIN_MODE,
// отдельной переменной для этого не заводим.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(new(logrus.JSONFormatter))
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(new(logrus.TextFormatter))
	l.SetLevel(logrus.DebugLevel)
	return l
}
