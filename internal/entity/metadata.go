package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NameIdentifier identifies a creator in an external scheme (e.g. ORCID).
type NameIdentifier struct {
	NameIdentifier       string `json:"nameIdentifier,omitempty"`
	NameIdentifierScheme string `json:"nameIdentifierScheme,omitempty"`
	SchemeURI            string `json:"schemeURI,omitempty"`
}

// Affiliation is a creator's institutional affiliation. Extraction output has
// historically encoded these either as bare strings or as objects, so the
// JSON decoder accepts both.
type Affiliation struct {
	Name                        string `json:"name,omitempty"`
	AffiliationIdentifier       string `json:"affiliationIdentifier,omitempty"`
	AffiliationIdentifierScheme string `json:"affiliationIdentifierScheme,omitempty"`
	SchemeURI                   string `json:"schemeURI,omitempty"`
}

func (a *Affiliation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.Name = s
		return nil
	}
	type affiliation Affiliation // drop methods to avoid recursion
	var obj affiliation
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*a = Affiliation(obj)
	return nil
}

type Creator struct {
	Name            string           `json:"name,omitempty"`
	GivenName       string           `json:"givenName,omitempty"`
	FamilyName      string           `json:"familyName,omitempty"`
	NameType        string           `json:"nameType,omitempty"`
	NameIdentifiers []NameIdentifier `json:"nameIdentifiers,omitempty"`
	Affiliation     []Affiliation    `json:"affiliation,omitempty"`
}

type Title struct {
	Title     string `json:"title"`
	TitleType string `json:"titleType,omitempty"`
}

type Description struct {
	Description     string `json:"description"`
	DescriptionType string `json:"descriptionType,omitempty"`
}

type Identifier struct {
	Identifier     string `json:"identifier,omitempty"`
	IdentifierType string `json:"identifierType,omitempty"`
}

type AlternateIdentifier struct {
	AlternateIdentifier     string `json:"alternateIdentifier,omitempty"`
	AlternateIdentifierType string `json:"alternateIdentifierType,omitempty"`
}

type Publisher struct {
	Name                      string `json:"name,omitempty"`
	PublisherIdentifier       string `json:"publisherIdentifier,omitempty"`
	PublisherIdentifierScheme string `json:"publisherIdentifierScheme,omitempty"`
	SchemeURI                 string `json:"schemeURI,omitempty"`
}

type Subject struct {
	Subject            string `json:"subject"`
	SchemeURI          string `json:"schemeUri,omitempty"`
	ValueURI           string `json:"valueUri,omitempty"`
	SubjectScheme      string `json:"subjectScheme,omitempty"`
	ClassificationCode string `json:"classificationCode,omitempty"`
}

type Date struct {
	Start           string `json:"start"`
	End             string `json:"end,omitempty"`
	DateType        string `json:"dateType,omitempty"`
	DateInformation string `json:"dateInformation,omitempty"`
}

// ResourceType is the "types" object of the bibliographic schema.
type ResourceType struct {
	ResourceType        string `json:"resourceType,omitempty"`
	ResourceTypeGeneral string `json:"resourceTypeGeneral,omitempty"`
}

type RelatedIdentifier struct {
	RelatedIdentifier     string `json:"relatedIdentifier"`
	RelatedIdentifierType string `json:"relatedIdentifierType,omitempty"`
	RelationType          string `json:"relationType,omitempty"`
	RelatedMetadataScheme string `json:"relatedMetadataScheme,omitempty"`
	SchemeURI             string `json:"schemeURI,omitempty"`
	SchemeType            string `json:"schemeType,omitempty"`
	ResourceTypeGeneral   string `json:"resourceTypeGeneral,omitempty"`
}

type Rights struct {
	Rights                 string `json:"rights"`
	RightsURI              string `json:"rightsUri,omitempty"`
	RightsIdentifier       string `json:"rightsIdentifier,omitempty"`
	RightsIdentifierScheme string `json:"rightsIdentifierScheme,omitempty"`
	SchemeURI              string `json:"schemeUri,omitempty"`
}

type Funding struct {
	FunderName           string `json:"funderName"`
	FunderIdentifier     string `json:"funderIdentifier,omitempty"`
	FunderIdentifierType string `json:"funderIdentifierType,omitempty"`
	SchemeURI            string `json:"schemeUri,omitempty"`
	AwardNumber          string `json:"awardNumber,omitempty"`
	AwardURI             string `json:"awardUri,omitempty"`
	AwardTitle           string `json:"awardTitle,omitempty"`
}

// Caption is one figure or table caption pair.
type Caption struct {
	Caption1 string `json:"caption1,omitempty"`
	Caption2 string `json:"caption2,omitempty"`
}

// ContentSection is one free-form section of the poster body. The section
// shape is not normalized beyond being a JSON object.
type ContentSection map[string]any

// PosterMetadata is the structured bibliographic record attached 1:1 to a
// poster. Logically-singular fields (publisher, types) are stored as small
// arrays for schema-evolution flexibility; the first element wins.
type PosterMetadata struct {
	ID       uuid.UUID `json:"-"`
	PosterID uuid.UUID `json:"-"`

	Creators      []Creator        `json:"creators,omitempty"`
	Titles        []Title          `json:"titles,omitempty"`
	Descriptions  []Description    `json:"descriptions,omitempty"`
	ImageCaption  []Caption        `json:"imageCaption,omitempty"`
	PosterContent []ContentSection `json:"posterContent,omitempty"`
	TableCaption  []Caption        `json:"tableCaption,omitempty"`

	ConferenceName           string `json:"conferenceName,omitempty"`
	ConferenceLocation       string `json:"conferenceLocation,omitempty"`
	ConferenceURI            string `json:"conferenceUri,omitempty"`
	ConferenceIdentifier     string `json:"conferenceIdentifier,omitempty"`
	ConferenceIdentifierType string `json:"conferenceIdentifierType,omitempty"`
	ConferenceSchemaURI      string `json:"conferenceSchemaUri,omitempty"`
	ConferenceStartDate      string `json:"conferenceStartDate,omitempty"`
	ConferenceEndDate        string `json:"conferenceEndDate,omitempty"`
	ConferenceAcronym        string `json:"conferenceAcronym,omitempty"`
	ConferenceSeries         string `json:"conferenceSeries,omitempty"`

	Domain               string                `json:"domain,omitempty"`
	DOI                  string                `json:"doi,omitempty"`
	Identifiers          []Identifier          `json:"identifiers,omitempty"`
	AlternateIdentifiers []AlternateIdentifier `json:"alternateIdentifiers,omitempty"`
	Publisher            []Publisher           `json:"publisher,omitempty"`
	PublicationYear      int                   `json:"publicationYear,omitempty"`
	Subjects             []Subject             `json:"subjects,omitempty"`
	Dates                []Date                `json:"dates,omitempty"`
	Language             string                `json:"language,omitempty"`
	Types                []ResourceType        `json:"types,omitempty"`
	RelatedIdentifiers   []RelatedIdentifier   `json:"relatedIdentifiers,omitempty"`
	Sizes                []string              `json:"sizes,omitempty"`
	Formats              []string              `json:"formats,omitempty"`
	Version              string                `json:"version,omitempty"`
	RightsList           []Rights              `json:"rightsList,omitempty"`
	FundingReferences    []Funding             `json:"fundingReferences,omitempty"`
	EthicsApproval       []string              `json:"ethicsApproval,omitempty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
