package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // time zones resolve without a system zoneinfo database

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/munhak/internal/llm"
	"github.com/abhisek/munhak/internal/studystate"
)

// Config is the application configuration, read from MUNHAK_* environment
// variables. Command-line flags override individual fields after Load.
type Config struct {
	// DBPath is the SQLite database file. Empty means the XDG default.
	DBPath string `env:"MUNHAK_DB"`

	Log   LogConfig
	Study StudyConfig
	LLM   llm.Config
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level  string `env:"MUNHAK_LOG_LEVEL"  envDefault:"info"`
	Format string `env:"MUNHAK_LOG_FORMAT" envDefault:"text"`
	// File is the log destination. Empty means munhak.log in the data dir.
	File   string `env:"MUNHAK_LOG_FILE"`
	Stderr bool   `env:"MUNHAK_LOG_STDERR"`
}

// StudyConfig holds the study-state calendar settings.
type StudyConfig struct {
	ExamDate     string `env:"MUNHAK_EXAM_DATE"     envDefault:"2026-11-12"`
	TimeZone     string `env:"MUNHAK_TIMEZONE"      envDefault:"Asia/Seoul"`
	ProgressMode string `env:"MUNHAK_PROGRESS_MODE" envDefault:"cumulative"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the study settings into manager options.
func (s StudyConfig) Options() ([]studystate.Option, error) {
	var opts []studystate.Option

	if s.TimeZone != "" {
		loc, err := time.LoadLocation(s.TimeZone)
		if err != nil {
			return nil, fmt.Errorf("load time zone %q: %w", s.TimeZone, err)
		}
		opts = append(opts, studystate.WithLocation(loc))
	}

	if s.ExamDate != "" {
		d, err := time.Parse(time.DateOnly, s.ExamDate)
		if err != nil {
			return nil, fmt.Errorf("parse exam date %q: %w", s.ExamDate, err)
		}
		opts = append(opts, studystate.WithExamDate(d))
	}

	switch mode := studystate.ProgressMode(s.ProgressMode); mode {
	case "":
	case studystate.ProgressCumulative, studystate.ProgressDaily:
		opts = append(opts, studystate.WithProgressMode(mode))
	default:
		return nil, fmt.Errorf("unknown progress mode %q (want %q or %q)",
			s.ProgressMode, studystate.ProgressCumulative, studystate.ProgressDaily)
	}

	return opts, nil
}
