package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Settings is the process configuration shared by every entry point.
type Settings struct {
	StageLength time.Duration // STAGE_SECONDS
	Seed        int64         // SEED (0 = time based)
	MaxStep     time.Duration // MAX_STEP_MS
	LogLevel    string        // LOG_LEVEL
	LogFormat   string        // LOG_FORMAT: text, logfmt or json
	Audio       bool          // AUDIO

	SSHHost    string // SSH_HOST
	SSHPort    string // SSH_PORT
	SSHHostKey string // SSH_HOST_KEY

	WebHost      string // WEB_HOST
	WebPort      string // WEB_PORT
	WebPublicURL string // WEB_PUBLIC_URL
}

// Defaults
const (
	DefaultStageSeconds = 120
	DefaultMaxStepMS    = 33
	DefaultSSHHost      = "::"
	DefaultSSHPort      = "2222"
	DefaultSSHHostKey   = "/app/keys/host_key"
	DefaultWebHost      = "0.0.0.0"
	DefaultWebPort      = "8080"
)

// Load reads the given .env files (default ".env") into the environment and
// builds Settings from it. Missing files are skipped; variables already set
// in the environment win.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds Settings from the current environment only.
func FromEnv() Settings {
	return Settings{
		StageLength: GetEnvDuration("STAGE_SECONDS", DefaultStageSeconds*time.Second),
		Seed:        GetEnvInt64("SEED", 0),
		MaxStep:     time.Duration(GetEnvInt("MAX_STEP_MS", DefaultMaxStepMS)) * time.Millisecond,
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		LogFormat:   GetEnv("LOG_FORMAT", "text"),
		Audio:       GetEnvBool("AUDIO", true),

		SSHHost:    GetEnv("SSH_HOST", DefaultSSHHost),
		SSHPort:    GetEnv("SSH_PORT", DefaultSSHPort),
		SSHHostKey: GetEnv("SSH_HOST_KEY", DefaultSSHHostKey),

		WebHost:      GetEnv("WEB_HOST", DefaultWebHost),
		WebPort:      GetEnv("WEB_PORT", DefaultWebPort),
		WebPublicURL: GetEnv("WEB_PUBLIC_URL", ""),
	}
}

// NewLogger builds the process logger. Unknown levels fall back to info.
func (s Settings) NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	formatter := log.TextFormatter
	switch s.LogFormat {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Formatter:       formatter,
	})
	if err != nil && s.LogLevel != "" {
		logger.Warn("unknown log level, using info", "level", s.LogLevel)
	}
	return logger
}
