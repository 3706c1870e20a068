package entities

// Landmark is one destination the travel-photo editor can place a person at.
//
// EditPrompt is the primary instruction sent to the image editor. FallbackPrompt
// is a softer variant used for the single retry after a content-policy style
// rejection (e.g. the provider reports it found no person to work with).
type Landmark struct {
	Key            string
	DisplayName    string
	EditPrompt     string
	FallbackPrompt string
}

var landmarks = map[string]Landmark{
	"eiffel-tower": {
		Key:            "eiffel-tower",
		DisplayName:    "Eiffel Tower, Paris",
		EditPrompt:     "Edit this photo so the person is standing in front of the Eiffel Tower in Paris on a clear day. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic, natural daylight.",
		FallbackPrompt: "Place the main subject of this photo in front of the Eiffel Tower in Paris. Keep the subject unchanged. Photorealistic.",
	},
	"taj-mahal": {
		Key:            "taj-mahal",
		DisplayName:    "Taj Mahal, Agra",
		EditPrompt:     "Edit this photo so the person is standing in front of the Taj Mahal at sunrise. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic, warm morning light.",
		FallbackPrompt: "Place the main subject of this photo in front of the Taj Mahal at sunrise. Keep the subject unchanged. Photorealistic.",
	},
	"great-wall": {
		Key:            "great-wall",
		DisplayName:    "Great Wall of China",
		EditPrompt:     "Edit this photo so the person is standing on the Great Wall of China with mountains in the background. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic.",
		FallbackPrompt: "Place the main subject of this photo on the Great Wall of China. Keep the subject unchanged. Photorealistic.",
	},
	"machu-picchu": {
		Key:            "machu-picchu",
		DisplayName:    "Machu Picchu, Peru",
		EditPrompt:     "Edit this photo so the person is standing at Machu Picchu with the citadel and Huayna Picchu behind them. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic.",
		FallbackPrompt: "Place the main subject of this photo at Machu Picchu in Peru. Keep the subject unchanged. Photorealistic.",
	},
	"santorini": {
		Key:            "santorini",
		DisplayName:    "Santorini, Greece",
		EditPrompt:     "Edit this photo so the person is standing in Oia, Santorini, with white houses and blue domes behind them. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic, golden hour.",
		FallbackPrompt: "Place the main subject of this photo in Oia, Santorini. Keep the subject unchanged. Photorealistic.",
	},
	"mount-fuji": {
		Key:            "mount-fuji",
		DisplayName:    "Mount Fuji, Japan",
		EditPrompt:     "Edit this photo so the person is standing by Lake Kawaguchi with Mount Fuji in the background. Keep the person's face, hair and clothing exactly as in the original photo. Photorealistic, spring with cherry blossoms.",
		FallbackPrompt: "Place the main subject of this photo in front of Mount Fuji. Keep the subject unchanged. Photorealistic.",
	},
}

// LandmarkByKey returns the landmark for a location key.
func LandmarkByKey(key string) (Landmark, bool) {
	l, ok := landmarks[key]
	return l, ok
}

// LandmarkKeys lists the supported location keys.
func LandmarkKeys() []string {
	keys := make([]string, 0, len(landmarks))
	for k := range landmarks {
		keys = append(keys, k)
	}
	return keys
}
