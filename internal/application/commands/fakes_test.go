package commands

import (
	"errors"
	"fmt"
	"time"

	"trinket/internal/application"
	"trinket/internal/domain"
)

// memoryRepo keeps snippets in memory, newest first
type memoryRepo struct {
	snippets []domain.Snippet
	err      error
	clock    time.Time
}

func newMemoryRepo(contents ...string) *memoryRepo {
	r := &memoryRepo{clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	for _, c := range contents {
		r.Save(c)
	}
	return r
}

func (r *memoryRepo) Initialize() error { return r.err }

func (r *memoryRepo) Save(content string) (*domain.Snippet, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.clock = r.clock.Add(time.Minute)
	s := domain.Snippet{
		ID:       fmt.Sprintf("id%02d", len(r.snippets)+1),
		Content:  content,
		Preview:  domain.MakePreview(content),
		Created:  r.clock,
		Modified: r.clock,
	}
	r.snippets = append([]domain.Snippet{s}, r.snippets...)
	return &s, nil
}

func (r *memoryRepo) LoadAll() ([]domain.Snippet, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Snippet, len(r.snippets))
	copy(out, r.snippets)
	return out, nil
}

func (r *memoryRepo) Get(id string) (*domain.Snippet, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.snippets {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, fmt.Errorf("snippet %s: %w", id, application.ErrNotFound)
}

type recordingClipboard struct {
	text string
	err  error
}

func (c *recordingClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errBoom = errors.New("boom")
