// Package publish drives the archival publication workflow: acquire a
// working deposition, push metadata, upload the poster artifact, and invoke
// the remote publish action, reporting progress along the way.
package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/entity"
	"github.com/posters-science/poster-tracker/internal/posterjson"
	"github.com/posters-science/poster-tracker/internal/repository"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

// State enumerates the orchestrator's linear progression. Every run walks
// the states in order; the first failed step jumps to StateError.
type State string

const (
	StateStart           State = "start"
	StateDepositionReady State = "deposition_ready"
	StateMetadataLoaded  State = "metadata_loaded"
	StateMetadataPushed  State = "metadata_pushed"
	StateFilesUploaded   State = "files_uploaded"
	StatePublished       State = "published"
	StateError           State = "error"
)

// Mode selects how the working deposition is obtained.
type Mode string

const (
	ModeNew      Mode = "new"
	ModeExisting Mode = "existing"
)

// ArtifactName is the fixed file name of the bibliographic JSON uploaded to
// the deposition bucket.
const ArtifactName = "poster.json"

// uploadType is the fixed resource tag the remote repository expects on
// poster depositions.
const uploadType = "poster"

// DepositionAPI is the slice of the deposition client the orchestrator
// drives. Satisfied by *zenodo.Client; tests inject a fake.
type DepositionAPI interface {
	CreateDeposition(ctx context.Context, token string) (*zenodo.Deposition, error)
	GetDeposition(ctx context.Context, token string, depositionID int64) (*zenodo.Deposition, error)
	UpdateMetadata(ctx context.Context, token string, depositionID int64, meta zenodo.DepositionMetadata) (*zenodo.Deposition, error)
	DeleteFile(ctx context.Context, token string, depositionID int64, filename string) error
	NewVersion(ctx context.Context, token string, depositionID int64) (*zenodo.Deposition, error)
	UploadFile(ctx context.Context, token, bucketURL, name string, data []byte) error
	Publish(ctx context.Context, token string, depositionID int64) (*zenodo.Deposition, error)
}

// Request describes one publication attempt.
type Request struct {
	PosterID             uuid.UUID
	UserID               uuid.UUID
	Token                string
	Mode                 Mode
	ExistingDepositionID int64
}

// Result is the terminal success payload.
type Result struct {
	DOI       string
	RecordID  int64
	RecordURL string
}

// Orchestrator runs publication attempts. It holds no per-attempt state;
// one instance serves all requests.
type Orchestrator struct {
	api     DepositionAPI
	posters repository.PosterRepository
	logger  *slog.Logger
}

func NewOrchestrator(api DepositionAPI, posters repository.PosterRepository, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{api: api, posters: posters, logger: logger}
}

// run carries the data accumulated as the state machine advances.
type run struct {
	req Request

	poster *entity.Poster

	// Filled by the acquisition step. recordID addresses every later call;
	// record_id is preferred over id because after a new-version action it
	// names the fresh draft.
	recordID  int64
	bucketURL string
	doi       string

	published *zenodo.Deposition
}

// step couples a state transition with its progress-stream identity.
type step struct {
	name  string
	next  State
	begin string
	done  string
	run   func(o *Orchestrator, ctx context.Context, rs *run) error
}

var steps = []step{
	{
		name:  "deposition",
		next:  StateDepositionReady,
		begin: "Preparing Zenodo deposition",
		done:  "Zenodo deposition ready",
		run:   (*Orchestrator).acquireDeposition,
	},
	{
		name:  "load_metadata",
		next:  StateMetadataLoaded,
		begin: "Loading poster metadata",
		done:  "Poster metadata loaded",
		run:   (*Orchestrator).loadMetadata,
	},
	{
		name:  "push_metadata",
		next:  StateMetadataPushed,
		begin: "Updating deposition metadata",
		done:  "Deposition metadata updated",
		run:   (*Orchestrator).pushMetadata,
	},
	{
		name:  "upload_files",
		next:  StateFilesUploaded,
		begin: "Uploading poster files",
		done:  "Poster files uploaded",
		run:   (*Orchestrator).uploadFiles,
	},
	{
		name:  "publish",
		next:  StatePublished,
		begin: "Publishing deposition",
		done:  "Deposition published",
		run:   (*Orchestrator).publishDeposition,
	},
}

// Run executes one publication attempt, emitting a progress event before
// and after each step. The first failing step short-circuits the rest and
// produces a single error event; no step is retried.
func (o *Orchestrator) Run(ctx context.Context, req Request, emit Emitter) (*Result, error) {
	if req.Mode == "" {
		req.Mode = ModeNew
	}
	if req.Mode == ModeExisting && req.ExistingDepositionID == 0 {
		return nil, fmt.Errorf("existing deposition ID is required for %q mode", ModeExisting)
	}

	rs := &run{req: req}
	state := StateStart

	for _, s := range steps {
		emit.emit(s.name, StatusInProgress, s.begin, nil)
		if err := s.run(o, ctx, rs); err != nil {
			o.logger.Error("publish.step_failed",
				"poster_id", req.PosterID, "state", state, "step", s.name, "error", err)
			emit.emit(s.name, StatusError, err.Error(), nil)
			return nil, err
		}
		state = s.next
		o.logger.Info("publish.step_completed",
			"poster_id", req.PosterID, "state", state)
		emit.emit(s.name, StatusCompleted, s.done, nil)
	}

	result := &Result{
		DOI:      rs.published.DOI,
		RecordID: rs.recordID,
	}
	if result.DOI == "" {
		result.DOI = rs.doi
	}
	if rs.published.Links.LatestHTML != "" {
		result.RecordURL = rs.published.Links.LatestHTML
	} else {
		result.RecordURL = rs.published.Links.HTML
	}

	// Record the publication locally. The remote record already exists at
	// this point, so a storage failure here is reported but does not undo
	// the publish.
	if err := o.posters.MarkPublished(ctx, req.PosterID, result.DOI); err != nil {
		o.logger.Error("publish.mark_published_failed",
			"poster_id", req.PosterID, "doi", result.DOI, "error", err)
	}

	return result, nil
}

// acquireDeposition normalizes to an empty-file draft deposition. New mode
// simply creates one. Existing mode reuses an unsubmitted draft after
// purging its files, or — since submitted depositions are immutable — cuts
// a new version and purges any files the draft inherited.
func (o *Orchestrator) acquireDeposition(ctx context.Context, rs *run) error {
	var (
		dep *zenodo.Deposition
		err error
	)

	switch rs.req.Mode {
	case ModeNew:
		dep, err = o.api.CreateDeposition(ctx, rs.req.Token)
		if err != nil {
			return fmt.Errorf("create deposition: %w", err)
		}

	case ModeExisting:
		dep, err = o.api.GetDeposition(ctx, rs.req.Token, rs.req.ExistingDepositionID)
		if err != nil {
			return fmt.Errorf("fetch deposition %d: %w", rs.req.ExistingDepositionID, err)
		}

		if !dep.Submitted {
			// Reusable draft; it may carry stale files from an aborted
			// earlier attempt.
			for _, f := range dep.Files {
				if err := o.api.DeleteFile(ctx, rs.req.Token, rs.req.ExistingDepositionID, f.Filename); err != nil {
					return fmt.Errorf("delete stale file %q: %w", f.Filename, err)
				}
			}
		} else {
			dep, err = o.api.NewVersion(ctx, rs.req.Token, rs.req.ExistingDepositionID)
			if err != nil {
				return fmt.Errorf("create new version of deposition %d: %w", rs.req.ExistingDepositionID, err)
			}
			for _, f := range dep.Files {
				if err := o.api.DeleteFile(ctx, rs.req.Token, dep.ID, f.Filename); err != nil {
					return fmt.Errorf("delete inherited file %q: %w", f.Filename, err)
				}
			}
		}

	default:
		return fmt.Errorf("unknown publication mode %q", rs.req.Mode)
	}

	// All three are promised by the deposition API on every draft; a
	// missing one is a broken remote contract, not a retryable condition.
	if dep.RecordID == 0 {
		return fmt.Errorf("deposition %d has no record id", dep.ID)
	}
	if dep.Links.Bucket == "" {
		return fmt.Errorf("deposition %d has no upload bucket", dep.ID)
	}
	if dep.Metadata.PrereserveDOI == nil || dep.Metadata.PrereserveDOI.DOI == "" {
		return fmt.Errorf("deposition %d has no pre-reserved DOI", dep.ID)
	}

	rs.recordID = dep.RecordID
	rs.bucketURL = dep.Links.Bucket
	rs.doi = dep.Metadata.PrereserveDOI.DOI
	return nil
}

func (o *Orchestrator) loadMetadata(ctx context.Context, rs *run) error {
	poster, err := o.posters.GetWithMetadata(ctx, rs.req.PosterID)
	if err != nil {
		return fmt.Errorf("load poster: %w", err)
	}
	if poster.UserID != rs.req.UserID {
		return fmt.Errorf("poster %s does not belong to the requesting user", rs.req.PosterID)
	}
	if poster.Metadata == nil {
		return fmt.Errorf("poster %s has no extracted metadata", rs.req.PosterID)
	}
	rs.poster = poster
	return nil
}

// pushMetadata sends the deposition metadata as a full replace, then checks
// the remote echo: the service has been seen to drop the upload type on
// first write, in which case a corrective second write is issued.
func (o *Orchestrator) pushMetadata(ctx context.Context, rs *run) error {
	meta := depositionMetadata(rs.poster, rs.doi)

	echo, err := o.api.UpdateMetadata(ctx, rs.req.Token, rs.recordID, meta)
	if err != nil {
		return fmt.Errorf("update deposition metadata: %w", err)
	}

	if echo.Metadata.UploadType != uploadType {
		meta.UploadType = uploadType
		if _, err := o.api.UpdateMetadata(ctx, rs.req.Token, rs.recordID, meta); err != nil {
			return fmt.Errorf("re-apply upload type: %w", err)
		}
	}
	return nil
}

func (o *Orchestrator) uploadFiles(ctx context.Context, rs *run) error {
	doc := posterjson.Build(rs.poster.Metadata)
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode poster artifact: %w", err)
	}
	if err := o.api.UploadFile(ctx, rs.req.Token, rs.bucketURL, ArtifactName, raw); err != nil {
		return fmt.Errorf("upload %s: %w", ArtifactName, err)
	}
	return nil
}

func (o *Orchestrator) publishDeposition(ctx context.Context, rs *run) error {
	dep, err := o.api.Publish(ctx, rs.req.Token, rs.recordID)
	if err != nil {
		return fmt.Errorf("publish deposition: %w", err)
	}
	rs.published = dep
	return nil
}

// depositionMetadata reduces the stored record to what the deposition API
// accepts: title, the fixed type tags, creators collapsed to name plus at
// most one affiliation, description, and the pre-reserved DOI.
func depositionMetadata(poster *entity.Poster, doi string) zenodo.DepositionMetadata {
	creators := make([]zenodo.DepositionCreator, 0, len(poster.Metadata.Creators))
	for _, c := range poster.Metadata.Creators {
		dc := zenodo.DepositionCreator{Name: c.Name}
		if len(c.Affiliation) > 0 {
			dc.Affiliation = c.Affiliation[0].Name
		}
		creators = append(creators, dc)
	}
	if len(creators) == 0 {
		creators = append(creators, zenodo.DepositionCreator{Name: "Unknown Creator"})
	}

	return zenodo.DepositionMetadata{
		Title:           poster.Title,
		UploadType:      uploadType,
		PublicationType: uploadType,
		Description:     poster.Description,
		Creators:        creators,
		PrereserveDOI:   &zenodo.PrereserveDOI{DOI: doi},
	}
}
