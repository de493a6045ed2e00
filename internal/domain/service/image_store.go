package service

import (
	"context"
	"io"
)

// ImageUpload is an image received from a client.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// StoredImage describes an image written to the store.
type StoredImage struct {
	Key string // Object key inside the store.
	URL string // Public URL recorded on the campground.
}

// ImageStore persists campground images.
type ImageStore interface {
	// Store writes the upload under a fresh unique key.
	Store(ctx context.Context, upload *ImageUpload) (*StoredImage, error)

	// Delete removes the image behind a URL previously returned by Store.
	// URLs the store did not produce, such as the placeholder, are ignored.
	Delete(ctx context.Context, url string) error
}
