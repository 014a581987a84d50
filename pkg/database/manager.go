package database

import (
	"sync"
	"time"

	"ai-chat-be/internal/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OpenFunc opens a gorm handle for a DSN. Injectable for tests.
type OpenFunc func(dsn string) (*gorm.DB, error)

// Handle is a live database connection plus its diagnostic identity.
type Handle struct {
	DB        *gorm.DB
	SessionId string
	OpenedAt  time.Time
}

// Manager hands out a single shared database handle, opening it lazily on
// first use. Concurrent first calls block on the mutex so only one dial
// happens; switching the DSN invalidates the cached handle.
type Manager struct {
	mu     sync.Mutex
	open   OpenFunc
	dsn    string
	handle *Handle
}

func NewManager(dsn string) *Manager {
	return NewManagerWithOpener(dsn, NewGormDBFromDSN)
}

func NewManagerWithOpener(dsn string, open OpenFunc) *Manager {
	return &Manager{open: open, dsn: dsn}
}

// SessionIdFor derives a stable diagnostic id from a DSN. The same target
// always yields the same id, so log lines from separate processes correlate.
func SessionIdFor(dsn string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(dsn)).String()
}

// Handle returns the shared connection, dialing it on first use.
func (m *Manager) Handle() (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != nil {
		return m.handle, nil
	}

	if m.dsn == "" {
		return nil, apperrors.NewConnection("no DSN configured", nil)
	}

	db, err := m.open(m.dsn)
	if err != nil {
		return nil, apperrors.NewConnection("open database", err)
	}

	m.handle = &Handle{
		DB:        db,
		SessionId: SessionIdFor(m.dsn),
		OpenedAt:  time.Now(),
	}
	return m.handle, nil
}

// SetDSN repoints the manager. If the target actually changed, the cached
// handle is closed and the next Handle call dials the new target.
func (m *Manager) SetDSN(dsn string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dsn == m.dsn {
		return nil
	}

	var closeErr error
	if m.handle != nil {
		closeErr = closeHandle(m.handle)
		m.handle = nil
	}
	m.dsn = dsn
	return closeErr
}

// Close releases the cached handle. The manager stays usable; the next
// Handle call reopens.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == nil {
		return nil
	}
	err := closeHandle(m.handle)
	m.handle = nil
	return err
}

func closeHandle(h *Handle) error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
