package settings

import "encoding/json"

// EncodeHeaderImages serializes the ordered image list into the single text
// column the settings row stores it in. An empty list encodes as "[]".
func EncodeHeaderImages(images []string) (string, error) {
	if images == nil {
		images = []string{}
	}
	data, err := json.Marshal(images)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// DecodeHeaderImages parses the stored header image field. The field has
// carried three shapes over time: empty (no images), a JSON-encoded list,
// and a single bare image reference from before the field held a list.
// A value that fails to decode is treated as that legacy single reference.
func DecodeHeaderImages(raw string) []string {
	if raw == "" {
		return nil
	}

	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err == nil {
		return images
	}
	return []string{raw}
}
