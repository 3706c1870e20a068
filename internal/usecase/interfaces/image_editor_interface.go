package interfaces

import (
	"context"
	"errors"

	"landmarker/internal/domain/entities"
)

// Editor failure classes. The retrying editor retries ErrEditorTransient with
// backoff and falls back to a softer prompt exactly once on ErrEditorContentPolicy;
// anything else is terminal for the attempt.
var (
	ErrEditorTransient     = errors.New("image editor transient failure")
	ErrEditorContentPolicy = errors.New("image editor rejected content")
)

// EditedImage is the editor's output.
type EditedImage struct {
	Data     []byte
	MimeType string
}

// IImageEditor is the raw edit capability: given an image and an instruction,
// produce an edited image or fail with a classified error.
type IImageEditor interface {
	Edit(ctx context.Context, image []byte, mimeType, prompt string) (EditedImage, error)
}

// ITravelPhotoEditor is what the generation flow consumes: place the person
// from the photo at the landmark. Implementations own the retry/fallback
// policy; callers treat any returned error as terminal for the attempt.
type ITravelPhotoEditor interface {
	EditAtLandmark(ctx context.Context, image []byte, mimeType string, landmark entities.Landmark) (EditedImage, error)
}
