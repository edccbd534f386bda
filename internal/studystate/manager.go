package studystate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/munhak/internal/store"
)

// Manager owns all learner-progress state. Screens and commands read it
// through accessors that return copies and change it only through the
// mutation methods. Every mutation updates memory first and then hands the
// affected slice to a write-behind queue without waiting for the write.
type Manager struct {
	kv     store.KV
	writer *writer
	log    logrus.FieldLogger

	now      func() time.Time
	loc      *time.Location
	examDate time.Time
	mode     ProgressMode

	mu        sync.Mutex
	loaded    bool
	study     studyData
	notes     []IncorrectNote
	bookmarks []BookmarkItem
	completed []string
	learning  LearningTimeRecord
	vocab     VocabProgress

	events    []Event
	listeners []listener
	nextID    int

	// emitMu is held by the goroutine currently delivering events.
	emitMu sync.Mutex
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLocation sets the time zone used for calendar-day comparisons.
func WithLocation(loc *time.Location) Option {
	return func(m *Manager) {
		if loc != nil {
			m.loc = loc
		}
	}
}

// WithExamDate sets the D-Day target. Only the calendar date is used.
func WithExamDate(d time.Time) Option {
	return func(m *Manager) { m.examDate = d }
}

// WithProgressMode selects daily-progress reset behavior.
func WithProgressMode(mode ProgressMode) Option {
	return func(m *Manager) { m.mode = mode }
}

// WithLogger sets the logger for load and persistence failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Manager) { m.log = log }
}

// New creates a Manager holding default state. Call Load to read the
// persisted slices; until then accessors return defaults.
func New(kv store.KV, opts ...Option) *Manager {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	m := &Manager{
		kv:        kv,
		log:       discard,
		now:       time.Now,
		loc:       DefaultLocation,
		examDate:  DefaultExamDate,
		mode:      ProgressCumulative,
		study:     defaultStudyData(),
		notes:     []IncorrectNote{},
		bookmarks: []BookmarkItem{},
		completed: []string{},
		vocab:     defaultVocabProgress(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.WithField("component", "studystate")
	m.learning = LearningTimeRecord{Date: m.today()}
	m.writer = newWriter(kv, m.log)
	return m
}

// Open creates a Manager and loads persisted state.
func Open(ctx context.Context, kv store.KV, opts ...Option) *Manager {
	m := New(kv, opts...)
	m.Load(ctx)
	return m
}

// loadedSlices collects the results of the parallel slice reads.
type loadedSlices struct {
	study     studyData
	notes     []loadedNote
	bookmarks []BookmarkItem
	completed []string
	learning  LearningTimeRecord
	vocab     VocabProgress
	version   int

	// notesOK and bookmarksOK report that the stored slice was absent or
	// read back in full. Migration only rewrites slices that loaded.
	notesOK     bool
	bookmarksOK bool
}

// Load reads all persisted slices in parallel. A slice that is missing,
// unreadable, or malformed keeps its default. Load never fails; the
// manager is marked loaded even after partial failure.
func (m *Manager) Load(ctx context.Context) {
	ls := loadedSlices{
		study:     defaultStudyData(),
		bookmarks: []BookmarkItem{},
		completed: []string{},
		vocab:     defaultVocabProgress(),
	}

	var g errgroup.Group
	g.Go(func() error { m.loadSlice(ctx, KeyStudyData, &ls.study); return nil })
	g.Go(func() error { ls.notes, ls.notesOK = m.loadNotes(ctx); return nil })
	g.Go(func() error { ls.bookmarksOK = m.loadSlice(ctx, KeyBookmarks, &ls.bookmarks); return nil })
	g.Go(func() error { m.loadSlice(ctx, KeyCompletedWorks, &ls.completed); return nil })
	g.Go(func() error { m.loadSlice(ctx, KeyLearningTime, &ls.learning); return nil })
	g.Go(func() error { m.loadSlice(ctx, KeyVocabProgress, &ls.vocab); return nil })
	g.Go(func() error { m.loadSlice(ctx, KeySchemaVersion, &ls.version); return nil })
	_ = g.Wait()

	m.mu.Lock()
	today := m.today()

	m.study = normalizeStudyData(ls.study)
	m.bookmarks = nonNil(ls.bookmarks)
	m.completed = nonNil(ls.completed)
	m.vocab = normalizeVocab(ls.vocab)

	// Learning time is scoped to one day; yesterday's total is dropped.
	if ls.learning.Date == today {
		m.learning = ls.learning
	} else {
		m.learning = LearningTimeRecord{Date: today}
	}

	m.rollDayLocked(today)

	if ls.version < CurrentSchemaVersion {
		m.notes, m.bookmarks = migrate(ls.version, ls.notes, m.bookmarks)
		m.persistMigratedLocked(ls)
	} else {
		m.notes = notesOf(ls.notes)
	}

	m.loaded = true
	m.unlockAndEmit(Event{Kind: EventLoaded})
}

// persistMigratedLocked writes back the migrated slices that loaded in
// full. A slice that failed to load still holds the learner's data in the
// store, so it is left alone and the schema version stays behind to retry
// the migration on the next load.
func (m *Manager) persistMigratedLocked(ls loadedSlices) {
	log := m.log.WithField("from", ls.version).WithField("to", CurrentSchemaVersion)
	if ls.notesOK {
		m.persistLocked(KeyIncorrectNotes, m.notes)
	}
	if ls.bookmarksOK {
		m.persistLocked(KeyBookmarks, m.bookmarks)
	}
	if !ls.notesOK || !ls.bookmarksOK {
		log.WithField("notes_ok", ls.notesOK).WithField("bookmarks_ok", ls.bookmarksOK).
			Warn("note schema migration incomplete, keeping stored slices")
		return
	}
	m.persistLocked(KeySchemaVersion, CurrentSchemaVersion)
	log.Info("migrated note schema")
}

// loadSlice decodes the JSON stored under key into dst. dst is left
// untouched on any failure. It reports false when a stored value could
// not be read or decoded; a missing key is not a failure.
func (m *Manager) loadSlice(ctx context.Context, key string, dst any) bool {
	raw, err := m.kv.Get(ctx, key)
	if err != nil {
		m.logLoadError(key, err)
		return errors.Is(err, store.ErrNotFound)
	}
	if err := decodeInto(raw, dst); err != nil {
		m.logLoadError(key, err)
		return false
	}
	return true
}

func (m *Manager) logLoadError(key string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		m.log.WithField("key", key).Debug("no stored value, using default")
		return
	}
	m.log.WithError(err).WithField("key", key).Warn("load failed, using default")
}

// decodeInto unmarshals raw into a fresh value of dst's type and copies it
// over dst only on success.
func decodeInto(raw []byte, dst any) error {
	switch d := dst.(type) {
	case *studyData:
		var v studyData
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode study data: %w", err)
		}
		*d = v
	case *[]BookmarkItem:
		var v []BookmarkItem
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode bookmarks: %w", err)
		}
		*d = v
	case *[]string:
		var v []string
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode completed works: %w", err)
		}
		*d = v
	case *LearningTimeRecord:
		var v LearningTimeRecord
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode learning time: %w", err)
		}
		*d = v
	case *VocabProgress:
		var v VocabProgress
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode vocab progress: %w", err)
		}
		*d = v
	case *int:
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode schema version: %w", err)
		}
		*d = v
	default:
		return fmt.Errorf("unsupported slice type %T", dst)
	}
	return nil
}

func normalizeStudyData(d studyData) studyData {
	if len(d.SubCategories) == 0 {
		d.SubCategories = defaultSubCategories()
	}
	d.DailyProgress = clamp01(d.DailyProgress)
	for i := range d.SubCategories {
		sc := &d.SubCategories[i]
		sc.Progress = clamp01(sc.Progress)
		sc.CompletedLessons = max(0, min(sc.CompletedLessons, sc.TotalLessons))
	}
	return d
}

func normalizeVocab(v VocabProgress) VocabProgress {
	if v.TotalCount == 0 {
		v.TotalCount = DefaultVocabTotal
	}
	if v.CompletedIDs == nil {
		v.CompletedIDs = []string{}
	}
	if v.CurrentDay == 0 {
		v.CurrentDay = 1
	}
	return v
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

// Flush waits until every pending write has been attempted.
func (m *Manager) Flush(ctx context.Context) error {
	return m.writer.flush(ctx)
}

// Close flushes pending writes and stops the background writer.
func (m *Manager) Close(ctx context.Context) error {
	return m.writer.close(ctx)
}

// persistLocked serializes v and enqueues it under key. Must be called with
// mu held so writes for one key are enqueued in mutation order.
func (m *Manager) persistLocked(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		m.log.WithError(err).WithField("key", key).Error("encode failed")
		return
	}
	m.writer.enqueue(key, raw)
}

func (m *Manager) today() string {
	return m.now().In(m.loc).Format(dateLayout)
}

func (m *Manager) yesterday() string {
	return m.now().In(m.loc).AddDate(0, 0, -1).Format(dateLayout)
}

// rollDayLocked applies calendar-day rollover rules to in-memory state.
// It only changes memory; the next mutation of the slice persists it.
func (m *Manager) rollDayLocked(today string) {
	if m.mode == ProgressDaily && m.study.ProgressDate != today {
		m.study.DailyProgress = 0
		m.study.ProgressDate = today
	}
	if m.study.LastStudyDate != "" && m.study.LastStudyDate != today && m.study.LastStudyDate != m.yesterday() {
		m.study.Streak = 0
	}
}

// Loaded reports whether Load has completed.
func (m *Manager) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// DDay returns the whole days remaining until the exam date, rounded up.
// It turns negative once the date has passed.
func (m *Manager) DDay() int {
	now := m.now().In(m.loc)
	exam := time.Date(m.examDate.Year(), m.examDate.Month(), m.examDate.Day(), 0, 0, 0, 0, m.loc)
	days := math.Ceil(exam.Sub(now).Hours() / 24)
	return int(days)
}

// Today returns the current calendar date as YYYY-MM-DD.
func (m *Manager) Today() string {
	return m.today()
}

// IsBookmarked reports whether questionID is bookmarked.
func (m *Manager) IsBookmarked(questionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bookmarkIndexLocked(questionID) >= 0
}

// IsVocabCompletedToday reports whether the vocab drill was finished today.
func (m *Manager) IsVocabCompletedToday() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vocab.CompletedDate != nil && *m.vocab.CompletedDate == m.today()
}

// SubCategories returns a copy of the per-genre progress.
func (m *Manager) SubCategories() []SubCategoryProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.study.clone().SubCategories
}

// SubCategory returns the progress entry for id.
func (m *Manager) SubCategory(id string) (SubCategoryProgress, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.subCategoryIndexLocked(id)
	if i < 0 {
		return SubCategoryProgress{}, false
	}
	return m.study.SubCategories[i], true
}

// IncorrectNotes returns a copy of the incorrect-answer notes.
func (m *Manager) IncorrectNotes() []IncorrectNote {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.notes)
}

// IncorrectNote returns the note for questionID.
func (m *Manager) IncorrectNote(questionID string) (IncorrectNote, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.noteIndexLocked(questionID)
	if i < 0 {
		return IncorrectNote{}, false
	}
	return m.notes[i], true
}

// Bookmarks returns a copy of the bookmarks.
func (m *Manager) Bookmarks() []BookmarkItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.bookmarks)
}

// CompletedWorks returns a copy of the completed quiz ids.
func (m *Manager) CompletedWorks() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.completed)
}

// LearningTime returns today's accumulated learning time in seconds.
func (m *Manager) LearningTime() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.learning.Date != m.today() {
		return 0
	}
	return m.learning.Seconds
}

// VocabProgress returns a copy of the vocabulary progress.
func (m *Manager) VocabProgress() VocabProgress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vocab.clone()
}

// DailyProgress returns the daily progress in [0,1].
func (m *Manager) DailyProgress() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dailyProgressLocked()
}

func (m *Manager) dailyProgressLocked() float64 {
	if m.mode == ProgressDaily && m.study.ProgressDate != m.today() {
		return 0
	}
	return m.study.DailyProgress
}

// Streak returns the number of consecutive study days, 0 if broken.
func (m *Manager) Streak() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.streakLocked()
}

func (m *Manager) streakLocked() int {
	last := m.study.LastStudyDate
	if last == "" || last == m.today() || last == m.yesterday() {
		return m.study.Streak
	}
	return 0
}

// Snapshot returns a full copy of the learner state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	learning := m.learning.Seconds
	if m.learning.Date != m.today() {
		learning = 0
	}
	return Snapshot{
		Today:          m.today(),
		DDay:           m.DDay(),
		DailyProgress:  m.dailyProgressLocked(),
		Streak:         m.streakLocked(),
		SubCategories:  m.study.clone().SubCategories,
		IncorrectNotes: slices.Clone(m.notes),
		Bookmarks:      slices.Clone(m.bookmarks),
		CompletedWorks: slices.Clone(m.completed),
		LearningTime:   learning,
		Vocab:          m.vocab.clone(),
	}
}
