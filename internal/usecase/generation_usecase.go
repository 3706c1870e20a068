package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"landmarker/internal/domain/entities"
	"landmarker/internal/usecase/interfaces"
)

var (
	ErrInvalidImageData              = errors.New("invalid image data url")
	ErrImageTooLarge                 = errors.New("image too large")
	ErrUnsupportedLocation           = errors.New("unsupported location")
	ErrMissingPaymentReference       = errors.New("missing payment reference")
	ErrInvalidReferenceFormat        = errors.New("malformed payment reference")
	ErrInvalidExpiredOrUsedReference = errors.New("invalid, expired or already used payment reference")
	ErrGenerationFailed              = errors.New("image generation failed")
)

// maxImageBytes caps the decoded source image at 10 MB.
const maxImageBytes = 10 << 20

// referencePattern is the issuer's id shape: 32 lowercase hex characters.
// Checked before any store access so malformed input never costs a lookup.
var referencePattern = regexp.MustCompile(`^[0-9a-f]{32}$`)

var dataURLPattern = regexp.MustCompile(`^data:(image/(?:png|jpeg|webp));base64,(.+)$`)

// GenerationInput is one paid travel-photo request.
type GenerationInput struct {
	ImageDataURL     string
	Location         string
	PaymentReference string
	UserIdentifier   string
}

// GenerationResult carries the edited image inline plus, when the upload
// succeeded, its object-store location.
type GenerationResult struct {
	ImageDataURL string
	ImageURL     string
	ImageKey     string
}

// IGenerationUseCase gates the paid edit capability on exactly-once
// consumption of a payment reference.
type IGenerationUseCase interface {
	GenerateTravelPhoto(ctx context.Context, input GenerationInput) (GenerationResult, error)
}

type GenerationUseCase struct {
	store   interfaces.IReferenceStore
	editor  interfaces.ITravelPhotoEditor
	storage interfaces.IImageStorage
}

var _ IGenerationUseCase = (*GenerationUseCase)(nil)

func NewGenerationUseCase(store interfaces.IReferenceStore, editor interfaces.ITravelPhotoEditor, storage interfaces.IImageStorage) *GenerationUseCase {
	return &GenerationUseCase{store: store, editor: editor, storage: storage}
}

// GenerateTravelPhoto validates input, consumes the payment reference, then
// runs the edit and upload.
//
// The reference is burned before the edit starts, not after it succeeds: the
// protected resource is the paid-for compute call, and it must never be
// invokable twice for one payment even when the edit itself later fails.
func (u *GenerationUseCase) GenerateTravelPhoto(ctx context.Context, input GenerationInput) (GenerationResult, error) {
	mimeType, image, err := parseImageDataURL(input.ImageDataURL)
	if err != nil {
		log.Printf("[generation][usecase] invalid image input err=%v", err)
		return GenerationResult{}, err
	}

	landmark, ok := entities.LandmarkByKey(strings.TrimSpace(input.Location))
	if !ok {
		log.Printf("[generation][usecase] unsupported location=%q", input.Location)
		return GenerationResult{}, ErrUnsupportedLocation
	}

	reference := strings.TrimSpace(input.PaymentReference)
	if reference == "" {
		return GenerationResult{}, ErrMissingPaymentReference
	}
	if !referencePattern.MatchString(reference) {
		log.Printf("[generation][usecase] malformed reference=%q", reference)
		return GenerationResult{}, ErrInvalidReferenceFormat
	}

	if err := u.store.SweepExpired(ctx); err != nil {
		log.Printf("[generation][usecase] sweep failed err=%v", err)
	}

	consumed, err := u.store.TryConsume(ctx, reference)
	if err != nil {
		log.Printf("[generation][usecase] consume failed reference=%s err=%v", reference, err)
		return GenerationResult{}, err
	}
	if !consumed {
		log.Printf("[generation][usecase] reference not consumable reference=%s", reference)
		return GenerationResult{}, ErrInvalidExpiredOrUsedReference
	}
	log.Printf("[generation][usecase] reference consumed reference=%s location=%s user=%s", reference, landmark.Key, input.UserIdentifier)

	edited, err := u.editor.EditAtLandmark(ctx, image, mimeType, landmark)
	if err != nil {
		log.Printf("[generation][usecase] edit failed reference=%s err=%v", reference, err)
		return GenerationResult{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	result := GenerationResult{
		ImageDataURL: fmt.Sprintf("data:%s;base64,%s", edited.MimeType, base64.StdEncoding.EncodeToString(edited.Data)),
	}

	if u.storage != nil {
		stored, err := u.storage.Upload(ctx, imageKey(reference, input.UserIdentifier, edited.MimeType), edited.Data, edited.MimeType)
		if err != nil {
			// The user already has the image inline; losing the hosted copy is
			// not worth failing a consumed reference over.
			log.Printf("[generation][usecase] upload failed reference=%s err=%v", reference, err)
		} else {
			result.ImageURL = stored.URL
			result.ImageKey = stored.Key
		}
	}

	log.Printf("[generation][usecase] generate success reference=%s location=%s", reference, landmark.Key)
	return result, nil
}

func parseImageDataURL(s string) (mimeType string, data []byte, err error) {
	m := dataURLPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", nil, ErrInvalidImageData
	}
	data, err = base64.StdEncoding.DecodeString(m[2])
	if err != nil || len(data) == 0 {
		return "", nil, ErrInvalidImageData
	}
	if len(data) > maxImageBytes {
		return "", nil, ErrImageTooLarge
	}
	return m[1], data, nil
}

func imageKey(reference, userIdentifier, mimeType string) string {
	ext := "png"
	switch mimeType {
	case "image/jpeg":
		ext = "jpg"
	case "image/webp":
		ext = "webp"
	}
	if user := sanitizeKeyPart(userIdentifier); user != "" {
		return fmt.Sprintf("postcards/%s/%s.%s", user, reference, ext)
	}
	return fmt.Sprintf("postcards/%s.%s", reference, ext)
}

var keyPartPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// sanitizeKeyPart keeps the wallet address out of the key unless it is plainly
// filename safe; it is a labeling convenience, never an auth input.
func sanitizeKeyPart(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	if !keyPartPattern.MatchString(s) {
		return ""
	}
	return strings.ToLower(s)
}
