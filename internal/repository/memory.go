package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"shortlink/internal/domain"
)

// MemoryStore keeps links and click events in process memory. Every
// mutation happens under one lock, so the slug index and the link map are
// never observed out of sync.
type MemoryStore struct {
	mu          sync.RWMutex
	links       map[int64]domain.ShortLink
	slugs       map[string]int64
	events      []domain.ClickEvent
	lastLinkID  int64
	lastEventID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links: make(map[int64]domain.ShortLink),
		slugs: make(map[string]int64),
	}
}

func (s *MemoryStore) NextID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLinkID++
	return s.lastLinkID, nil
}

func (s *MemoryStore) Create(_ context.Context, link *domain.ShortLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.slugs[link.Slug]; taken {
		return ErrSlugTaken
	}
	s.links[link.ID] = *link
	s.slugs[link.Slug] = link.ID
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*domain.ShortLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	link, ok := s.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &link, nil
}

func (s *MemoryStore) FindBySlug(_ context.Context, slug string) (*domain.ShortLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.slugs[slug]
	if !ok {
		return nil, ErrNotFound
	}
	link := s.links[id]
	return &link, nil
}

// List returns all links, newest first.
func (s *MemoryStore) List(_ context.Context) ([]domain.ShortLink, error) {
	s.mu.RLock()
	links := make([]domain.ShortLink, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, link)
	}
	s.mu.RUnlock()

	slices.SortFunc(links, func(a, b domain.ShortLink) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return links, nil
}

func (s *MemoryStore) IncrementClicks(_ context.Context, id int64) (*domain.ShortLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	link.Clicks++
	s.links[id] = link
	return &link, nil
}

func (s *MemoryStore) SetActive(_ context.Context, id int64, active bool) (*domain.ShortLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[id]
	if !ok {
		return nil, ErrNotFound
	}
	link.Active = active
	s.links[id] = link
	return &link, nil
}

// Delete removes the link, its slug index entry and its click events.
func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	link, ok := s.links[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.slugs, link.Slug)
	delete(s.links, id)
	s.events = slices.DeleteFunc(s.events, func(e domain.ClickEvent) bool {
		return e.ShortURLID == id
	})
	return nil
}

func (s *MemoryStore) CreateClickEvent(_ context.Context, event *domain.ClickEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastEventID++
	event.ID = s.lastEventID
	s.events = append(s.events, *event)
	return nil
}

func (s *MemoryStore) ListClickEvents(_ context.Context) ([]domain.ClickEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events), nil
}

// ClickEventsByLinkID returns the link's events, newest first.
func (s *MemoryStore) ClickEventsByLinkID(_ context.Context, linkID int64) ([]domain.ClickEvent, error) {
	s.mu.RLock()
	events := make([]domain.ClickEvent, 0)
	for _, e := range s.events {
		if e.ShortURLID == linkID {
			events = append(events, e)
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(events, func(a, b domain.ClickEvent) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return events, nil
}

func (s *MemoryStore) Close() {}
