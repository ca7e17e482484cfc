package repository

import (
	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/gen/ent"
	"github.com/posters-science/poster-tracker/internal/entity"
)

func toEntityJob(j *ent.ExtractionJob) *entity.ExtractionJob {
	return &entity.ExtractionJob{
		ID:           j.ID,
		UserID:       j.UserID,
		Status:       constants.JobStatus(j.Status),
		PosterID:     j.PosterID,
		ErrorMessage: j.ErrorMessage,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

func toEntityPoster(p *ent.Poster) *entity.Poster {
	return &entity.Poster{
		ID:          p.ID,
		UserID:      p.UserID,
		Title:       p.Title,
		Description: p.Description,
		Status:      constants.PosterStatus(p.Status),
		ImageURL:    p.ImageURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
		PublishedAt: p.PublishedAt,
	}
}

func toEntityMetadata(m *ent.PosterMetadata) *entity.PosterMetadata {
	return &entity.PosterMetadata{
		ID:       m.ID,
		PosterID: m.PosterID,

		Creators:      m.Creators,
		Titles:        m.Titles,
		Descriptions:  m.Descriptions,
		ImageCaption:  m.ImageCaption,
		PosterContent: m.PosterContent,
		TableCaption:  m.TableCaption,

		ConferenceName:           m.ConferenceName,
		ConferenceLocation:       m.ConferenceLocation,
		ConferenceURI:            m.ConferenceURI,
		ConferenceIdentifier:     m.ConferenceIdentifier,
		ConferenceIdentifierType: m.ConferenceIdentifierType,
		ConferenceSchemaURI:      m.ConferenceSchemaURI,
		ConferenceStartDate:      m.ConferenceStartDate,
		ConferenceEndDate:        m.ConferenceEndDate,
		ConferenceAcronym:        m.ConferenceAcronym,
		ConferenceSeries:         m.ConferenceSeries,

		Domain:               m.Domain,
		DOI:                  m.Doi,
		Identifiers:          m.Identifiers,
		AlternateIdentifiers: m.AlternateIdentifiers,
		Publisher:            m.Publisher,
		PublicationYear:      m.PublicationYear,
		Subjects:             m.Subjects,
		Dates:                m.Dates,
		Language:             m.Language,
		Types:                m.Types,
		RelatedIdentifiers:   m.RelatedIdentifiers,
		Sizes:                m.Sizes,
		Formats:              m.Formats,
		Version:              m.Version,
		RightsList:           m.RightsList,
		FundingReferences:    m.FundingReferences,
		EthicsApproval:       m.EthicsApproval,

		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toEntityToken(t *ent.ZenodoToken) *entity.ZenodoToken {
	return &entity.ZenodoToken{
		ID:           t.ID,
		UserID:       t.UserID,
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		ExpiresAt:    t.ExpiresAt,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func metadataCreate(c *ent.PosterMetadataCreate, m *entity.PosterMetadata) *ent.PosterMetadataCreate {
	return c.
		SetCreators(m.Creators).
		SetTitles(m.Titles).
		SetDescriptions(m.Descriptions).
		SetImageCaption(m.ImageCaption).
		SetPosterContent(m.PosterContent).
		SetTableCaption(m.TableCaption).
		SetConferenceName(m.ConferenceName).
		SetConferenceLocation(m.ConferenceLocation).
		SetConferenceURI(m.ConferenceURI).
		SetConferenceIdentifier(m.ConferenceIdentifier).
		SetConferenceIdentifierType(m.ConferenceIdentifierType).
		SetConferenceSchemaURI(m.ConferenceSchemaURI).
		SetConferenceStartDate(m.ConferenceStartDate).
		SetConferenceEndDate(m.ConferenceEndDate).
		SetConferenceAcronym(m.ConferenceAcronym).
		SetConferenceSeries(m.ConferenceSeries).
		SetDomain(m.Domain).
		SetDoi(m.DOI).
		SetIdentifiers(m.Identifiers).
		SetAlternateIdentifiers(m.AlternateIdentifiers).
		SetPublisher(m.Publisher).
		SetPublicationYear(m.PublicationYear).
		SetSubjects(m.Subjects).
		SetDates(m.Dates).
		SetLanguage(m.Language).
		SetTypes(m.Types).
		SetRelatedIdentifiers(m.RelatedIdentifiers).
		SetSizes(m.Sizes).
		SetFormats(m.Formats).
		SetVersion(m.Version).
		SetRightsList(m.RightsList).
		SetFundingReferences(m.FundingReferences).
		SetEthicsApproval(m.EthicsApproval)
}

func metadataUpdate(u *ent.PosterMetadataUpdate, m *entity.PosterMetadata) *ent.PosterMetadataUpdate {
	return u.
		SetCreators(m.Creators).
		SetTitles(m.Titles).
		SetDescriptions(m.Descriptions).
		SetImageCaption(m.ImageCaption).
		SetPosterContent(m.PosterContent).
		SetTableCaption(m.TableCaption).
		SetConferenceName(m.ConferenceName).
		SetConferenceLocation(m.ConferenceLocation).
		SetConferenceURI(m.ConferenceURI).
		SetConferenceIdentifier(m.ConferenceIdentifier).
		SetConferenceIdentifierType(m.ConferenceIdentifierType).
		SetConferenceSchemaURI(m.ConferenceSchemaURI).
		SetConferenceStartDate(m.ConferenceStartDate).
		SetConferenceEndDate(m.ConferenceEndDate).
		SetConferenceAcronym(m.ConferenceAcronym).
		SetConferenceSeries(m.ConferenceSeries).
		SetDomain(m.Domain).
		SetDoi(m.DOI).
		SetIdentifiers(m.Identifiers).
		SetAlternateIdentifiers(m.AlternateIdentifiers).
		SetPublisher(m.Publisher).
		SetPublicationYear(m.PublicationYear).
		SetSubjects(m.Subjects).
		SetDates(m.Dates).
		SetLanguage(m.Language).
		SetTypes(m.Types).
		SetRelatedIdentifiers(m.RelatedIdentifiers).
		SetSizes(m.Sizes).
		SetFormats(m.Formats).
		SetVersion(m.Version).
		SetRightsList(m.RightsList).
		SetFundingReferences(m.FundingReferences).
		SetEthicsApproval(m.EthicsApproval)
}
