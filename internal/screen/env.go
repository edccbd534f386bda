package screen

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/munhak/internal/catalog"
	"github.com/abhisek/munhak/internal/studystate"
	"github.com/abhisek/munhak/internal/tutor"
)

// Env carries the services screens read from and mutate through.
type Env struct {
	State   *studystate.Manager
	Catalog *catalog.Catalog
	// Tutor is nil when no LLM provider is configured.
	Tutor *tutor.Service
	Log   logrus.FieldLogger
	Now   func() time.Time
}
