package providers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"catchlog/internal/structures"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == http.MethodPost {
		return TypePost
	}
	return TypeGet
}

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

// LogProvider writes application events to app.log and request events to
// access.log inside the configured log directory.
type LogProvider struct {
	app    zerolog.Logger
	access zerolog.Logger
	files  []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, err
	}
	mode := os.FileMode(conf.Logger.Mode)

	appFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "app.log"), mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "access.log"), mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	return &LogProvider{
		app:    zerolog.New(appFile).Level(level).With().Timestamp().Logger(),
		access: zerolog.New(accessFile).Level(level).With().Timestamp().Logger(),
		files:  []*os.File{appFile, accessFile},
	}, nil
}

func openLogFile(path string, mode os.FileMode) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, mode)
}

func (l *LogProvider) byType(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &l.app
	}
	return &l.access
}

func typeLabel(t TypeEnum) string {
	switch t {
	case TypeGet:
		return "GET"
	case TypePost:
		return "POST"
	default:
		return "app"
	}
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.byType(t).Error().Str("src", typeLabel(t)).Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.byType(t).Warn().Str("src", typeLabel(t)).Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.byType(t).Debug().Str("src", typeLabel(t)).Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.byType(t).Info().Str("src", typeLabel(t)).Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.byType(t).Fatal().Str("src", typeLabel(t)).Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		_ = f.Close()
	}
}
