package service

import (
	"bytes"
	"errors"
	"testing"
)

// pngBytes builds a blob that sniffs as image/png, padded to size.
func pngBytes(size int) []byte {
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	if size < len(header) {
		size = len(header)
	}
	return append(header, bytes.Repeat([]byte{0}, size-len(header))...)
}

// jpegBytes builds a blob that sniffs as image/jpeg, padded to size.
func jpegBytes(size int) []byte {
	header := []byte{0xff, 0xd8, 0xff, 0xe0}
	if size < len(header) {
		size = len(header)
	}
	return append(header, bytes.Repeat([]byte{0}, size-len(header))...)
}

func TestPictureStore_PutAndGet(t *testing.T) {
	t.Parallel()

	store := NewPictureStore()
	id, err := store.Put(pngBytes(1 << 20)) // 1MB PNG
	if err != nil {
		t.Fatalf("expected 1MB PNG to be accepted, got %v", err)
	}

	pic, ok := store.Get(id)
	if !ok {
		t.Fatal("expected stored picture")
	}
	if pic.ContentType != "image/png" {
		t.Errorf("expected image/png, got %q", pic.ContentType)
	}
}

func TestPictureStore_RejectsOversize(t *testing.T) {
	t.Parallel()

	store := NewPictureStore()
	_, err := store.Put(jpegBytes(3 << 20)) // 3MB JPEG
	if !errors.Is(err, ErrPictureTooLarge) {
		t.Fatalf("expected ErrPictureTooLarge, got %v", err)
	}
}

func TestPictureStore_RejectsWrongType(t *testing.T) {
	t.Parallel()

	store := NewPictureStore()
	for _, data := range [][]byte{
		[]byte("GIF89a notapicture"),
		[]byte("plain text"),
		nil,
	} {
		if _, err := store.Put(data); !errors.Is(err, ErrPictureBadType) {
			t.Errorf("expected ErrPictureBadType for %q, got %v", data, err)
		}
	}
}

func TestPictureStore_Release(t *testing.T) {
	t.Parallel()

	store := NewPictureStore()
	id, err := store.Put(jpegBytes(100))
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	store.Release(id)
	if _, ok := store.Get(id); ok {
		t.Error("expected released picture to be gone")
	}
	if store.Len() != 0 {
		t.Errorf("expected empty store, got %d blobs", store.Len())
	}

	// Unknown and empty IDs are no-ops.
	store.Release(id)
	store.Release("")
}
