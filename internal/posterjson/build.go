// Package posterjson projects a stored bibliographic record into the flat
// poster-schema document that is uploaded alongside the published poster.
package posterjson

import (
	"encoding/json"
	"strings"

	"github.com/posters-science/poster-tracker/internal/entity"
)

// Build converts meta into the poster-schema document. Storage-side shapes
// are reversed here: the DOI expands into prefix/suffix, single-element
// publisher/types arrays unwrap, the flat conference columns reassemble into
// a nested object, and posterContent becomes {"sections": [...]}. Optional
// keys with no content are omitted, and empty strings are stripped at every
// depth because the schema requires minLength 1 on the strings it allows.
func Build(meta *entity.PosterMetadata) map[string]any {
	doc := map[string]any{
		"identifiers":       jsonArray(meta.Identifiers),
		"creators":          jsonArray(meta.Creators),
		"titles":            jsonArray(meta.Titles),
		"subjects":          jsonArray(meta.Subjects),
		"dates":             jsonArray(meta.Dates),
		"formats":           jsonArray(meta.Formats),
		"rightsList":        jsonArray(meta.RightsList),
		"descriptions":      jsonArray(meta.Descriptions),
		"fundingReferences": jsonArray(meta.FundingReferences),
	}

	if meta.DOI != "" {
		doc["doi"] = meta.DOI
		if i := strings.Index(meta.DOI, "/"); i != -1 {
			if prefix := meta.DOI[:i]; prefix != "" {
				doc["prefix"] = prefix
			}
			if suffix := meta.DOI[i+1:]; suffix != "" {
				doc["suffix"] = suffix
			}
		}
	}
	if len(meta.AlternateIdentifiers) > 0 {
		doc["alternateIdentifiers"] = jsonValue(meta.AlternateIdentifiers)
	}
	if len(meta.Publisher) > 0 {
		doc["publisher"] = jsonValue(meta.Publisher[0])
	}
	if meta.PublicationYear != 0 {
		doc["publicationYear"] = meta.PublicationYear
	}
	if meta.Language != "" {
		doc["language"] = meta.Language
	}
	if len(meta.Types) > 0 {
		doc["types"] = jsonValue(meta.Types[0])
	}
	if len(meta.RelatedIdentifiers) > 0 {
		doc["relatedIdentifiers"] = jsonValue(meta.RelatedIdentifiers)
	}
	if len(meta.Sizes) > 0 {
		doc["sizes"] = jsonValue(meta.Sizes)
	}
	if meta.Version != "" {
		doc["version"] = meta.Version
	}
	if len(meta.EthicsApproval) > 0 {
		doc["ethicsApprovals"] = jsonValue(meta.EthicsApproval)
	}
	if conference := buildConference(meta); len(conference) > 0 {
		doc["conference"] = conference
	}
	if len(meta.PosterContent) > 0 {
		doc["content"] = map[string]any{"sections": jsonValue(meta.PosterContent)}
	}
	if len(meta.TableCaption) > 0 {
		doc["tableCaptions"] = jsonValue(meta.TableCaption)
	}
	if len(meta.ImageCaption) > 0 {
		doc["imageCaptions"] = jsonValue(meta.ImageCaption)
	}
	if meta.Domain != "" {
		doc["researchField"] = meta.Domain
	}

	return stripEmptyStrings(doc).(map[string]any)
}

func buildConference(meta *entity.PosterMetadata) map[string]any {
	fields := map[string]string{
		"conferenceName":           meta.ConferenceName,
		"conferenceLocation":       meta.ConferenceLocation,
		"conferenceUri":            meta.ConferenceURI,
		"conferenceIdentifier":     meta.ConferenceIdentifier,
		"conferenceIdentifierType": meta.ConferenceIdentifierType,
		"conferenceSchemaUri":      meta.ConferenceSchemaURI,
		"conferenceStartDate":      meta.ConferenceStartDate,
		"conferenceEndDate":        meta.ConferenceEndDate,
		"conferenceAcronym":        meta.ConferenceAcronym,
		"conferenceSeries":         meta.ConferenceSeries,
	}
	conference := make(map[string]any)
	for key, value := range fields {
		if value != "" {
			conference[key] = value
		}
	}
	return conference
}

// jsonValue rewrites a typed value as generic JSON values so that
// stripEmptyStrings can walk it uniformly. Marshalling entity types cannot
// fail, so errors collapse to nil.
func jsonValue(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// jsonArray is jsonValue for the always-present list keys: a nil slice
// marshals to JSON null, but the schema expects an array there.
func jsonArray(v any) any {
	if out := jsonValue(v); out != nil {
		return out
	}
	return []any{}
}

// stripEmptyStrings removes object entries whose value is "" recursively
// through nested objects and arrays.
func stripEmptyStrings(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = stripEmptyStrings(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			if s, ok := item.(string); ok && s == "" {
				continue
			}
			out[k] = stripEmptyStrings(item)
		}
		return out
	default:
		return value
	}
}
