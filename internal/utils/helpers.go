package utils

import (
	"encoding/json"
	"time"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/entity"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

func ToPBPoster(p *entity.Poster) *postersv1.Poster {
	out := &postersv1.Poster{
		Id:          p.ID.String(),
		UserId:      p.UserID.String(),
		Title:       p.Title,
		Description: p.Description,
		Status:      string(p.Status),
		ImageUrl:    p.ImageURL,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if p.PublishedAt != nil {
		out.PublishedAt = p.PublishedAt.UTC().Format(time.RFC3339)
	}
	if p.Metadata != nil {
		// Marshalling a loaded metadata record cannot fail; an empty blob
		// means no metadata was attached.
		out.MetadataJson, _ = json.Marshal(p.Metadata)
	}
	return out
}

func ToPBJob(j *entity.ExtractionJob) *postersv1.GetExtractionJobResponse {
	out := &postersv1.GetExtractionJobResponse{
		JobId:     j.ID.String(),
		Status:    string(j.Status),
		Error:     j.ErrorMessage,
		CreatedAt: j.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: j.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if j.PosterID != nil {
		out.PosterId = j.PosterID.String()
	}
	return out
}

func ToPBDeposition(d zenodo.DepositionSummary) *postersv1.DepositionSummary {
	return &postersv1.DepositionSummary{
		Id:              d.ID,
		Title:           d.Title,
		State:           d.State,
		Submitted:       d.Submitted,
		ConceptRecordId: d.ConceptRecID,
	}
}
