package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config options du logger.
type Config struct {
	Level  string // trace, debug, info, warn, error
	Format string // json | text (console lisible)
	File   string // optionnel : la sortie est dupliquée dans ce fichier
}

// Logger enveloppe zerolog pour l'injection de dépendances.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New crée un logger structuré. Le format text utilise le ConsoleWriter de zerolog.
func New(cfg Config) (*Logger, error) {
	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Format, "text") {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	var f *os.File
	if cfg.File != "" {
		var err error
		f, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("ouvrir fichier de log: %w", err)
		}
		// Le fichier reçoit toujours du JSON, même si la console est en texte.
		out = zerolog.MultiLevelWriter(out, f)
	}

	zl := zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl, file: f}, nil
}

// Nop renvoie un logger silencieux (tests).
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Trace, Debug, Info, Warn, Error délégués à zerolog.
func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crée un sous-logger avec des champs fixes.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}

// Zerolog renvoie le logger interne.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.zl
}

// Close ferme le fichier de log éventuel.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
