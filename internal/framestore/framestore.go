// Package framestore holds extracted still frames in memory and hands out
// stable identifiers for them, so the rendering layer can reference a frame
// by URL without the service persisting any media.
package framestore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/soundvine/collectibles-indexer/internal/adapter"
	"github.com/soundvine/collectibles-indexer/internal/logger"
)

// Config holds frame store configuration
type Config struct {
	// BaseURL is the public URL prefix frames are served under,
	// e.g. "https://api.example.com/api/v1/frames"
	BaseURL string
	// TTL is how long a frame stays resolvable after being stored
	TTL time.Duration
	// SweepInterval is how often expired frames are evicted
	SweepInterval time.Duration
}

// Frame is a stored still-image blob
type Frame struct {
	ID          string
	ContentType string
	Data        []byte
	StoredAt    time.Time
}

// Store defines the interface for the in-memory frame store
//
//go:generate mockgen -source=framestore.go -destination=../mocks/framestore.go -package=mocks -mock_names=Store=MockFrameStore
type Store interface {
	// Put stores a frame blob and returns its stable, resolvable URL
	Put(data []byte, contentType string) string

	// Get retrieves a stored frame by ID
	Get(id string) (*Frame, bool)

	// Run evicts expired frames periodically until the context is canceled
	Run(ctx context.Context)

	// Len returns the number of stored frames
	Len() int
}

type store struct {
	mu     sync.RWMutex
	frames map[string]*Frame
	clock  adapter.Clock
	config Config
}

// New creates a new in-memory frame store
func New(clock adapter.Clock, cfg Config) Store {
	return &store{
		frames: make(map[string]*Frame),
		clock:  clock,
		config: cfg,
	}
}

// Put stores a frame blob and returns its stable, resolvable URL
func (s *store) Put(data []byte, contentType string) string {
	id := ulid.Make().String()

	s.mu.Lock()
	s.frames[id] = &Frame{
		ID:          id,
		ContentType: contentType,
		Data:        data,
		StoredAt:    s.clock.Now(),
	}
	s.mu.Unlock()

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.config.BaseURL, "/"), id)
}

// Get retrieves a stored frame by ID
func (s *store) Get(id string) (*Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	frame, ok := s.frames[id]
	if !ok {
		return nil, false
	}
	if s.expired(frame) {
		return nil, false
	}
	return frame, true
}

// Len returns the number of stored frames
func (s *store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.frames)
}

// Run evicts expired frames periodically until the context is canceled
func (s *store) Run(ctx context.Context) {
	interval := s.config.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(interval):
			evicted := s.evictExpired()
			if evicted > 0 {
				logger.Debug("evicted expired frames", zap.Int("count", evicted))
			}
		}
	}
}

func (s *store) evictExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, frame := range s.frames {
		if s.expired(frame) {
			delete(s.frames, id)
			evicted++
		}
	}
	return evicted
}

func (s *store) expired(frame *Frame) bool {
	if s.config.TTL <= 0 {
		return false
	}
	return s.clock.Since(frame.StoredAt) > s.config.TTL
}
