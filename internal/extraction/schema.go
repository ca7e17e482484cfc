package extraction

// BuildExtractionJSONSchema returns the JSON-Schema (draft 2020-12 subset) the
// extraction service's response is validated against, as a generic map.
// The response is untrusted but permissive: every bibliographic field is
// optional and only structural typing is enforced. Both the current and the
// legacy key names for captions, content and research field are admitted.
func BuildExtractionJSONSchema() map[string]any {
	objectArray := func() map[string]any {
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
			},
		}
	}
	stringArray := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string"},
	}
	captionArray := objectArray()

	props := map[string]any{
		"creators": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":       map[string]any{"type": "string"},
					"givenName":  map[string]any{"type": "string"},
					"familyName": map[string]any{"type": "string"},
					"nameType":   map[string]any{"type": "string"},
					"nameIdentifiers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "object"},
					},
					// historically either bare strings or objects
					"affiliation": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": []any{"object", "string"},
						},
					},
				},
			},
		},
		"titles":               objectArray(),
		"descriptions":         objectArray(),
		"identifiers":          objectArray(),
		"alternateIdentifiers": objectArray(),
		"publisher":            map[string]any{"type": "object"},
		"publicationYear":      map[string]any{"type": "integer"},
		"subjects":             objectArray(),
		"dates":                objectArray(),
		"language":             map[string]any{"type": "string"},
		"types":                map[string]any{"type": "object"},
		"relatedIdentifiers":   objectArray(),
		"sizes":                stringArray,
		"formats":              stringArray,
		"version":              map[string]any{"type": "string"},
		"rightsList":           objectArray(),
		"fundingReferences":    objectArray(),
		"ethicsApprovals":      stringArray,
		"conference":           map[string]any{"type": "object"},

		// current / legacy key pairs
		"imageCaptions": captionArray,
		"imageCaption":  captionArray,
		"tableCaptions": captionArray,
		"tableCaption":  captionArray,
		"content": map[string]any{
			"type": []any{"object", "array"},
		},
		"posterContent": map[string]any{
			"type": []any{"object", "array"},
		},
		"researchField": map[string]any{"type": "string"},
		"domain":        map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties":           props,
	}
}
