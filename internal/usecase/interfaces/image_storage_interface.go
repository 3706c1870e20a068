package interfaces

import "context"

// StoredImage locates an uploaded image.
type StoredImage struct {
	Key string
	URL string
}

// IImageStorage abstracts the object store holding generated images: given
// bytes, produce a retrievable URL, or fail. Upload failure is non-fatal for
// the generation flow; the edited image is always returned inline as well.
type IImageStorage interface {
	Upload(ctx context.Context, key string, data []byte, mimeType string) (StoredImage, error)
}
