package publish

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/internal/entity"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

type fakeAPI struct {
	calls []string

	deposition   *zenodo.Deposition
	newVersion   *zenodo.Deposition
	deletedFiles []string

	updateEchoes []*zenodo.Deposition
	updates      []zenodo.DepositionMetadata

	uploadErr  error
	publishErr error
	published  *zenodo.Deposition
}

func healthyDeposition(id int64, submitted bool, files ...string) *zenodo.Deposition {
	dep := &zenodo.Deposition{
		ID:        id,
		RecordID:  id,
		Submitted: submitted,
		Links:     zenodo.DepositionLinks{Bucket: "https://bucket/x", HTML: "https://zenodo.org/record/x"},
		Metadata:  zenodo.DepositionMetadata{PrereserveDOI: &zenodo.PrereserveDOI{DOI: "10.5281/zenodo.77"}},
	}
	for _, f := range files {
		dep.Files = append(dep.Files, zenodo.DepositionFile{Filename: f})
	}
	return dep
}

func (f *fakeAPI) CreateDeposition(context.Context, string) (*zenodo.Deposition, error) {
	f.calls = append(f.calls, "create")
	return f.deposition, nil
}

func (f *fakeAPI) GetDeposition(context.Context, string, int64) (*zenodo.Deposition, error) {
	f.calls = append(f.calls, "get")
	return f.deposition, nil
}

func (f *fakeAPI) UpdateMetadata(_ context.Context, _ string, _ int64, meta zenodo.DepositionMetadata) (*zenodo.Deposition, error) {
	f.calls = append(f.calls, "update")
	f.updates = append(f.updates, meta)
	if len(f.updateEchoes) > 0 {
		echo := f.updateEchoes[0]
		f.updateEchoes = f.updateEchoes[1:]
		return echo, nil
	}
	return &zenodo.Deposition{Metadata: meta}, nil
}

func (f *fakeAPI) DeleteFile(_ context.Context, _ string, _ int64, filename string) error {
	f.calls = append(f.calls, "delete_file")
	f.deletedFiles = append(f.deletedFiles, filename)
	return nil
}

func (f *fakeAPI) NewVersion(context.Context, string, int64) (*zenodo.Deposition, error) {
	f.calls = append(f.calls, "new_version")
	return f.newVersion, nil
}

func (f *fakeAPI) UploadFile(context.Context, string, string, string, []byte) error {
	f.calls = append(f.calls, "upload")
	return f.uploadErr
}

func (f *fakeAPI) Publish(context.Context, string, int64) (*zenodo.Deposition, error) {
	f.calls = append(f.calls, "publish")
	if f.publishErr != nil {
		return nil, f.publishErr
	}
	if f.published != nil {
		return f.published, nil
	}
	return &zenodo.Deposition{DOI: "10.5281/zenodo.77", Links: zenodo.DepositionLinks{LatestHTML: "https://zenodo.org/record/77"}}, nil
}

func (f *fakeAPI) called(name string) bool {
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

type fakePosters struct {
	poster       *entity.Poster
	publishedDOI string
}

func (r *fakePosters) CreateWithMetadata(context.Context, uuid.UUID, string, string, string, *entity.PosterMetadata) (*entity.Poster, error) {
	return nil, errors.New("not used")
}

func (r *fakePosters) GetWithMetadata(context.Context, uuid.UUID) (*entity.Poster, error) {
	return r.poster, nil
}

func (r *fakePosters) List(context.Context, uuid.UUID) ([]*entity.Poster, error) { return nil, nil }

func (r *fakePosters) UpdateMetadata(context.Context, uuid.UUID, string, string, *entity.PosterMetadata) error {
	return nil
}

func (r *fakePosters) MarkPublished(_ context.Context, _ uuid.UUID, doi string) error {
	r.publishedDOI = doi
	return nil
}

func testPoster(userID uuid.UUID) *entity.Poster {
	return &entity.Poster{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       "A Poster",
		Description: "About things.",
		Status:      constants.PosterStatusDraft,
		Metadata: &entity.PosterMetadata{
			Creators: []entity.Creator{{
				Name:        "Doe, Jane",
				Affiliation: []entity.Affiliation{{Name: "MIT"}},
			}},
		},
	}
}

func runAttempt(t *testing.T, api *fakeAPI, mode Mode, depID int64) (*Result, []Event, *fakePosters, error) {
	t.Helper()
	userID := uuid.New()
	posters := &fakePosters{poster: testPoster(userID)}
	orch := NewOrchestrator(api, posters, nil)

	var events []Event
	result, err := orch.Run(context.Background(), Request{
		PosterID:             posters.poster.ID,
		UserID:               userID,
		Token:                "tok",
		Mode:                 mode,
		ExistingDepositionID: depID,
	}, func(ev Event) { events = append(events, ev) })
	return result, events, posters, err
}

func TestRunNewModeHappyPath(t *testing.T) {
	api := &fakeAPI{deposition: healthyDeposition(1, false)}
	result, events, posters, err := runAttempt(t, api, ModeNew, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.DOI != "10.5281/zenodo.77" {
		t.Errorf("DOI = %q", result.DOI)
	}
	if posters.publishedDOI != result.DOI {
		t.Errorf("poster not marked published with DOI, got %q", posters.publishedDOI)
	}

	// one in_progress and one completed event per step, in step order
	wantSteps := []string{"deposition", "load_metadata", "push_metadata", "upload_files", "publish"}
	if len(events) != len(wantSteps)*2 {
		t.Fatalf("events = %d, want %d", len(events), len(wantSteps)*2)
	}
	for i, step := range wantSteps {
		if events[2*i].Step != step || events[2*i].Status != StatusInProgress {
			t.Errorf("event %d = %+v, want %s in_progress", 2*i, events[2*i], step)
		}
		if events[2*i+1].Step != step || events[2*i+1].Status != StatusCompleted {
			t.Errorf("event %d = %+v, want %s completed", 2*i+1, events[2*i+1], step)
		}
	}
}

func TestRunExistingUnsubmittedDraft(t *testing.T) {
	api := &fakeAPI{deposition: healthyDeposition(5, false, "stale-1.json", "stale-2.json")}
	_, _, _, err := runAttempt(t, api, ModeExisting, 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if api.called("new_version") {
		t.Error("new version created for a reusable draft")
	}
	if len(api.deletedFiles) != 2 {
		t.Errorf("deleted files = %v, want both stale files purged", api.deletedFiles)
	}
}

func TestRunExistingSubmittedDeposition(t *testing.T) {
	api := &fakeAPI{
		deposition: healthyDeposition(5, true),
		newVersion: healthyDeposition(6, false, "inherited.json"),
	}
	_, _, _, err := runAttempt(t, api, ModeExisting, 5)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !api.called("new_version") {
		t.Error("submitted deposition must get a new version")
	}
	if len(api.deletedFiles) != 1 || api.deletedFiles[0] != "inherited.json" {
		t.Errorf("deleted files = %v, want inherited file purged", api.deletedFiles)
	}
}

func TestRunUploadFailureShortCircuits(t *testing.T) {
	api := &fakeAPI{
		deposition: healthyDeposition(1, false),
		uploadErr:  errors.New("upstream returned 500"),
	}
	result, events, posters, err := runAttempt(t, api, ModeNew, 0)
	if err == nil {
		t.Fatal("Run succeeded despite upload failure")
	}
	if result != nil {
		t.Error("failure returned a result")
	}
	if api.called("publish") {
		t.Error("publish invoked after a failed upload")
	}
	if posters.publishedDOI != "" {
		t.Error("poster marked published on failure")
	}
	last := events[len(events)-1]
	if last.Status != StatusError || last.Step != "upload_files" {
		t.Errorf("last event = %+v, want upload_files error", last)
	}
	errorEvents := 0
	for _, ev := range events {
		if ev.Status == StatusError {
			errorEvents++
		}
	}
	if errorEvents != 1 {
		t.Errorf("error events = %d, want exactly 1", errorEvents)
	}
}

func TestRunMissingPrereservedDOI(t *testing.T) {
	dep := healthyDeposition(1, false)
	dep.Metadata.PrereserveDOI = nil
	api := &fakeAPI{deposition: dep}
	_, events, _, err := runAttempt(t, api, ModeNew, 0)
	if err == nil {
		t.Fatal("Run accepted a deposition without a pre-reserved DOI")
	}
	if events[len(events)-1].Step != "deposition" {
		t.Errorf("failure attributed to %q, want deposition", events[len(events)-1].Step)
	}
}

func TestRunCorrectiveMetadataRewrite(t *testing.T) {
	api := &fakeAPI{
		deposition: healthyDeposition(1, false),
		// first echo drops upload_type, triggering a second write
		updateEchoes: []*zenodo.Deposition{{Metadata: zenodo.DepositionMetadata{Title: "A Poster"}}},
	}
	_, _, _, err := runAttempt(t, api, ModeNew, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(api.updates) != 2 {
		t.Fatalf("metadata updates = %d, want corrective second write", len(api.updates))
	}
	if api.updates[1].UploadType != "poster" {
		t.Errorf("second write upload_type = %q", api.updates[1].UploadType)
	}
}

func TestRunMetadataPushContent(t *testing.T) {
	api := &fakeAPI{deposition: healthyDeposition(1, false)}
	_, _, _, err := runAttempt(t, api, ModeNew, 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	meta := api.updates[0]
	if meta.Title != "A Poster" {
		t.Errorf("title = %q", meta.Title)
	}
	if meta.UploadType != "poster" || meta.PublicationType != "poster" {
		t.Errorf("type tags = %q/%q", meta.UploadType, meta.PublicationType)
	}
	if len(meta.Creators) != 1 || meta.Creators[0].Name != "Doe, Jane" || meta.Creators[0].Affiliation != "MIT" {
		t.Errorf("creators = %+v", meta.Creators)
	}
	if meta.PrereserveDOI == nil || meta.PrereserveDOI.DOI != "10.5281/zenodo.77" {
		t.Errorf("prereserve_doi = %+v", meta.PrereserveDOI)
	}
}

func TestRunExistingModeRequiresDepositionID(t *testing.T) {
	api := &fakeAPI{}
	_, _, _, err := runAttempt(t, api, ModeExisting, 0)
	if err == nil {
		t.Fatal("existing mode accepted without a deposition id")
	}
	if len(api.calls) != 0 {
		t.Errorf("remote calls made = %v, want none", api.calls)
	}
}
