package response

import "landmarker/internal/usecase"

// GenerateImageResponse carries the edited travel photo. The image is always
// returned inline as a data URL; ImageURL/ImageKey are present only when the
// hosted upload succeeded.
type GenerateImageResponse struct {
	Success      bool   `json:"success"`
	ImageDataURL string `json:"imageDataUrl"`
	ImageURL     string `json:"imageUrl,omitempty"`
	ImageKey     string `json:"imageKey,omitempty"`
}

func FromGenerationResult(r usecase.GenerationResult) GenerateImageResponse {
	return GenerateImageResponse{
		Success:      true,
		ImageDataURL: r.ImageDataURL,
		ImageURL:     r.ImageURL,
		ImageKey:     r.ImageKey,
	}
}
