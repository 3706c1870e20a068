package generation

import (
	"context"
	"errors"
	"log"
	"time"

	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase/interfaces"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 500 * time.Millisecond
)

// RetryingEditor wraps a raw editor with the generation retry policy:
//   - transient failures (provider 5xx/429, network) are retried with
//     exponential backoff, up to MaxAttempts per prompt;
//   - a content-policy rejection gets exactly one more try with the landmark's
//     softer fallback prompt, then is terminal;
//   - every other failure is terminal immediately.
//
// Callers never retry on top of this: by the time an edit runs, the payment
// reference backing it has already been consumed.
type RetryingEditor struct {
	inner       interfaces.IImageEditor
	maxAttempts int
	baseDelay   time.Duration
}

var _ interfaces.ITravelPhotoEditor = (*RetryingEditor)(nil)

func NewRetryingEditor(inner interfaces.IImageEditor, maxAttempts int, baseDelay time.Duration) *RetryingEditor {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	return &RetryingEditor{inner: inner, maxAttempts: maxAttempts, baseDelay: baseDelay}
}

func (r *RetryingEditor) EditAtLandmark(ctx context.Context, image []byte, mimeType string, landmark entities.Landmark) (interfaces.EditedImage, error) {
	out, err := r.editWithBackoff(ctx, image, mimeType, landmark.EditPrompt)
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, interfaces.ErrEditorContentPolicy) {
		return interfaces.EditedImage{}, err
	}

	log.Printf("[generation][retry] content-policy rejection, trying fallback prompt location=%s", landmark.Key)
	return r.editWithBackoff(ctx, image, mimeType, landmark.FallbackPrompt)
}

func (r *RetryingEditor) editWithBackoff(ctx context.Context, image []byte, mimeType, prompt string) (interfaces.EditedImage, error) {
	delay := r.baseDelay
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		out, err := r.inner.Edit(ctx, image, mimeType, prompt)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if !errors.Is(err, interfaces.ErrEditorTransient) {
			return interfaces.EditedImage{}, err
		}
		if attempt == r.maxAttempts {
			break
		}

		log.Printf("[generation][retry] transient failure attempt=%d/%d next_delay=%s err=%v", attempt, r.maxAttempts, delay, err)
		select {
		case <-ctx.Done():
			return interfaces.EditedImage{}, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return interfaces.EditedImage{}, lastErr
}
