package service

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// Picture upload constraints. The form accepts only small JPEG/PNG
// images for the profile picture.
const (
	MaxPictureBytes = 2 << 20 // 2MB
)

var allowedPictureTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// Picture is a stored profile picture blob.
type Picture struct {
	ID          string
	ContentType string
	Data        []byte
}

// PictureStore holds uploaded picture blobs in memory. A blob lives until
// it is released; callers must release a picture when it is replaced or
// its form goes away, the in-memory equivalent of revoking a preview
// object URL.
type PictureStore struct {
	mu    sync.RWMutex
	blobs map[string]*Picture
}

// NewPictureStore creates an empty store.
func NewPictureStore() *PictureStore {
	return &PictureStore{blobs: make(map[string]*Picture)}
}

// Put validates and stores an image, returning its blob ID.
func (s *PictureStore) Put(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrPictureBadType
	}
	if len(data) > MaxPictureBytes {
		return "", ErrPictureTooLarge
	}

	contentType := http.DetectContentType(data)
	if !allowedPictureTypes[contentType] {
		return "", ErrPictureBadType
	}

	pic := &Picture{
		ID:          uuid.New().String(),
		ContentType: contentType,
		Data:        data,
	}

	s.mu.Lock()
	s.blobs[pic.ID] = pic
	s.mu.Unlock()

	return pic.ID, nil
}

// Get returns a stored picture.
func (s *PictureStore) Get(id string) (*Picture, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pic, ok := s.blobs[id]
	return pic, ok
}

// Release frees a stored picture. Releasing an unknown or empty ID is a
// no-op, so every replace/clear path can call it unconditionally.
func (s *PictureStore) Release(id string) {
	if id == "" {
		return
	}
	s.mu.Lock()
	delete(s.blobs, id)
	s.mu.Unlock()
}

// Len returns the number of stored blobs.
func (s *PictureStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blobs)
}
