package videostore

import (
	"fmt"
	"sync"

	"fknsrs.biz/p/videoregistry/internal/ctxclock"
	"fknsrs.biz/p/videoregistry/models"
)

var (
	ErrNotFound = fmt.Errorf("videostore.ErrNotFound: video not found")
)

// TimestampFormat is used for createdAt: UTC with millisecond precision.
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Store holds videos in insertion order. Mutations take the write lock for
// their whole duration, so id assignment and existence checks can't
// interleave with another mutation.
type Store struct {
	rw     sync.RWMutex
	clock  ctxclock.Clock
	lastID int
	videos []models.Video
}

func New(clock ctxclock.Clock) *Store {
	if clock == nil {
		clock = ctxclock.NewRealClock()
	}

	return &Store{clock: clock}
}

// Create stores a new video built from p. Ids come from a counter that is
// never rewound, so an id is never issued twice, even across Reset.
func (s *Store) Create(p models.VideoPatch) (models.Video, error) {
	now, err := s.clock.Now()
	if err != nil {
		return models.Video{}, fmt.Errorf("videostore.Store.Create: could not get current time: %w", err)
	}

	s.rw.Lock()
	defer s.rw.Unlock()

	s.lastID++

	v := models.Video{
		ID:                   s.lastID,
		CreatedAt:            now.UTC().Format(TimestampFormat),
		AvailableResolutions: []models.Resolution{},
	}
	v.Apply(p)

	s.videos = append(s.videos, v)

	return v.Clone(), nil
}

func (s *Store) List() []models.Video {
	s.rw.RLock()
	defer s.rw.RUnlock()

	a := make([]models.Video, len(s.videos))
	for i, e := range s.videos {
		a[i] = e.Clone()
	}

	return a
}

func (s *Store) Get(id int) (models.Video, error) {
	s.rw.RLock()
	defer s.rw.RUnlock()

	i := s.indexOf(id)
	if i == -1 {
		return models.Video{}, fmt.Errorf("videostore.Store.Get: id %d: %w", id, ErrNotFound)
	}

	return s.videos[i].Clone(), nil
}

func (s *Store) Update(id int, p models.VideoPatch) error {
	s.rw.Lock()
	defer s.rw.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return fmt.Errorf("videostore.Store.Update: id %d: %w", id, ErrNotFound)
	}

	s.videos[i].Apply(p)

	return nil
}

func (s *Store) Delete(id int) error {
	s.rw.Lock()
	defer s.rw.Unlock()

	i := s.indexOf(id)
	if i == -1 {
		return fmt.Errorf("videostore.Store.Delete: id %d: %w", id, ErrNotFound)
	}

	s.videos = append(s.videos[:i], s.videos[i+1:]...)

	return nil
}

func (s *Store) Reset() {
	s.rw.Lock()
	defer s.rw.Unlock()

	s.videos = nil
}

func (s *Store) Len() int {
	s.rw.RLock()
	defer s.rw.RUnlock()

	return len(s.videos)
}

// must be called with the lock held
func (s *Store) indexOf(id int) int {
	for i, e := range s.videos {
		if e.ID == id {
			return i
		}
	}

	return -1
}
