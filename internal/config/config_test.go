package config

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/munhak/internal/studystate"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"MUNHAK_DB", "MUNHAK_LOG_LEVEL", "MUNHAK_LOG_FORMAT", "MUNHAK_EXAM_DATE",
		"MUNHAK_TIMEZONE", "MUNHAK_PROGRESS_MODE", "MUNHAK_LLM_PROVIDER", "MUNHAK_LLM_TIMEOUT", "MUNHAK_LLM_RETRY_ATTEMPTS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("got log config %+v", cfg.Log)
	}
	if cfg.Study.ExamDate != "2026-11-12" || cfg.Study.TimeZone != "Asia/Seoul" {
		t.Errorf("got study config %+v", cfg.Study)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("got LLM timeout %s, want 30s", cfg.LLM.Timeout)
	}
	if cfg.LLM.Retry.MaxAttempts != 3 {
		t.Errorf("got retry attempts %d, want 3", cfg.LLM.Retry.MaxAttempts)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MUNHAK_DB", "/tmp/munhak-test.db")
	t.Setenv("MUNHAK_PROGRESS_MODE", "daily")
	t.Setenv("MUNHAK_LLM_PROVIDER", "mock")
	t.Setenv("MUNHAK_LLM_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/munhak-test.db" {
		t.Errorf("got db %q", cfg.DBPath)
	}
	if cfg.Study.ProgressMode != "daily" {
		t.Errorf("got mode %q", cfg.Study.ProgressMode)
	}
	if cfg.LLM.Provider != "mock" || cfg.LLM.Timeout != 5*time.Second {
		t.Errorf("got LLM config %+v", cfg.LLM)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("MUNHAK_LLM_TIMEOUT", "soon")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestStudyOptions(t *testing.T) {
	s := StudyConfig{ExamDate: "2026-11-12", TimeZone: "Asia/Seoul", ProgressMode: "daily"}
	opts, err := s.Options()
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if len(opts) != 3 {
		t.Fatalf("got %d options, want 3", len(opts))
	}

	now := time.Date(2026, time.November, 11, 12, 0, 0, 0, time.UTC)
	m := studystate.New(nil, append(opts, studystate.WithClock(func() time.Time { return now }))...)
	if got := m.DDay(); got != 1 {
		t.Errorf("DDay = %d, want 1", got)
	}
}

func TestStudyOptionsErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  StudyConfig
		want string
	}{
		{"bad zone", StudyConfig{TimeZone: "Mars/Olympus"}, "load time zone"},
		{"bad date", StudyConfig{ExamDate: "11/12/2026"}, "parse exam date"},
		{"bad mode", StudyConfig{ProgressMode: "weekly"}, "unknown progress mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}
