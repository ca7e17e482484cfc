package extraction

import (
	"encoding/json"

	"github.com/posters-science/poster-tracker/internal/entity"
)

// Placeholder values used when extraction yields no title or description.
const (
	PlaceholderTitle       = "Untitled Poster"
	PlaceholderDescription = "No description provided for this poster"
)

// ContentBlock is the poster body. Current extraction output wraps sections
// in an object; older output emitted the section list bare. Both decode.
type ContentBlock struct {
	Sections []entity.ContentSection `json:"sections"`
}

func (c *ContentBlock) UnmarshalJSON(data []byte) error {
	var bare []entity.ContentSection
	if err := json.Unmarshal(data, &bare); err == nil {
		c.Sections = bare
		return nil
	}
	type block ContentBlock
	var obj block
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*c = ContentBlock(obj)
	return nil
}

// Conference is the nested conference object of the extraction response,
// flattened to columns in storage.
type Conference struct {
	ConferenceName           string `json:"conferenceName"`
	ConferenceLocation       string `json:"conferenceLocation"`
	ConferenceURI            string `json:"conferenceUri"`
	ConferenceIdentifier     string `json:"conferenceIdentifier"`
	ConferenceIdentifierType string `json:"conferenceIdentifierType"`
	ConferenceSchemaURI      string `json:"conferenceSchemaUri"`
	ConferenceStartDate      string `json:"conferenceStartDate"`
	ConferenceEndDate        string `json:"conferenceEndDate"`
	ConferenceAcronym        string `json:"conferenceAcronym"`
	ConferenceSeries         string `json:"conferenceSeries"`
}

// Response mirrors the extraction service's JSON with every field optional.
// Fields that changed names over time are present under both keys; the
// mapping prefers the current name and falls back to the legacy one.
type Response struct {
	Creators     []entity.Creator     `json:"creators"`
	Titles       []entity.Title       `json:"titles"`
	Descriptions []entity.Description `json:"descriptions"`

	ImageCaptions      []entity.Caption `json:"imageCaptions"`
	ImageCaptionLegacy []entity.Caption `json:"imageCaption"`
	TableCaptions      []entity.Caption `json:"tableCaptions"`
	TableCaptionLegacy []entity.Caption `json:"tableCaption"`
	Content            *ContentBlock    `json:"content"`
	PosterContent      *ContentBlock    `json:"posterContent"`
	ResearchField      string           `json:"researchField"`
	DomainLegacy       string           `json:"domain"`

	Identifiers          []entity.Identifier          `json:"identifiers"`
	AlternateIdentifiers []entity.AlternateIdentifier `json:"alternateIdentifiers"`
	Publisher            *entity.Publisher            `json:"publisher"`
	PublicationYear      int                          `json:"publicationYear"`
	Subjects             []entity.Subject             `json:"subjects"`
	Dates                []entity.Date                `json:"dates"`
	Language             string                       `json:"language"`
	Types                *entity.ResourceType         `json:"types"`
	RelatedIdentifiers   []entity.RelatedIdentifier   `json:"relatedIdentifiers"`
	Sizes                []string                     `json:"sizes"`
	Formats              []string                     `json:"formats"`
	Version              string                       `json:"version"`
	RightsList           []entity.Rights              `json:"rightsList"`
	FundingReferences    []entity.Funding             `json:"fundingReferences"`
	EthicsApprovals      []string                     `json:"ethicsApprovals"`
	Conference           *Conference                  `json:"conference"`
}

// MapToRecord projects a validated extraction response into the storage
// shape: singular objects become single-element arrays, the dual-name fields
// are reconciled, and missing title/description fall back to placeholders.
// The projection is pure and deterministic.
func MapToRecord(resp *Response) (title, description string, meta *entity.PosterMetadata) {
	title = PlaceholderTitle
	if len(resp.Titles) > 0 && resp.Titles[0].Title != "" {
		title = resp.Titles[0].Title
	}
	description = PlaceholderDescription
	if len(resp.Descriptions) > 0 && resp.Descriptions[0].Description != "" {
		description = resp.Descriptions[0].Description
	}

	creators := make([]entity.Creator, 0, len(resp.Creators))
	for _, c := range resp.Creators {
		if c.Name == "" {
			c.Name = "Unknown Creator"
		}
		creators = append(creators, c)
	}

	meta = &entity.PosterMetadata{
		Creators:      creators,
		Titles:        resp.Titles,
		Descriptions:  resp.Descriptions,
		ImageCaption:  firstNonNil(resp.ImageCaptions, resp.ImageCaptionLegacy),
		PosterContent: contentSections(resp.Content, resp.PosterContent),
		TableCaption:  firstNonNil(resp.TableCaptions, resp.TableCaptionLegacy),

		Domain:               firstNonEmpty(resp.ResearchField, resp.DomainLegacy, "Other"),
		Identifiers:          resp.Identifiers,
		AlternateIdentifiers: resp.AlternateIdentifiers,
		PublicationYear:      resp.PublicationYear,
		Subjects:             resp.Subjects,
		Dates:                resp.Dates,
		Language:             resp.Language,
		RelatedIdentifiers:   resp.RelatedIdentifiers,
		Sizes:                resp.Sizes,
		Formats:              resp.Formats,
		Version:              resp.Version,
		RightsList:           resp.RightsList,
		FundingReferences:    resp.FundingReferences,
		EthicsApproval:       resp.EthicsApprovals,
	}

	// singular objects stored as single-element arrays, or omitted
	if resp.Publisher != nil {
		meta.Publisher = []entity.Publisher{*resp.Publisher}
	}
	if resp.Types != nil {
		meta.Types = []entity.ResourceType{*resp.Types}
	}

	if c := resp.Conference; c != nil {
		meta.ConferenceName = c.ConferenceName
		meta.ConferenceLocation = c.ConferenceLocation
		meta.ConferenceURI = c.ConferenceURI
		meta.ConferenceIdentifier = c.ConferenceIdentifier
		meta.ConferenceIdentifierType = c.ConferenceIdentifierType
		meta.ConferenceSchemaURI = c.ConferenceSchemaURI
		meta.ConferenceStartDate = c.ConferenceStartDate
		meta.ConferenceEndDate = c.ConferenceEndDate
		meta.ConferenceAcronym = c.ConferenceAcronym
		meta.ConferenceSeries = c.ConferenceSeries
	}

	return title, description, meta
}

func firstNonNil(current, legacy []entity.Caption) []entity.Caption {
	if current != nil {
		return current
	}
	return legacy
}

func contentSections(current, legacy *ContentBlock) []entity.ContentSection {
	if current != nil {
		return current.Sections
	}
	if legacy != nil {
		return legacy.Sections
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
