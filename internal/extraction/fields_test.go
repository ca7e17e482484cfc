package extraction

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/posters-science/poster-tracker/internal/entity"
)

func TestMapToRecordPlaceholders(t *testing.T) {
	title, description, meta := MapToRecord(&Response{})
	if title != PlaceholderTitle {
		t.Errorf("title = %q, want %q", title, PlaceholderTitle)
	}
	if description != PlaceholderDescription {
		t.Errorf("description = %q, want %q", description, PlaceholderDescription)
	}
	if meta.Domain != "Other" {
		t.Errorf("domain = %q, want Other", meta.Domain)
	}
}

func TestMapToRecordEmptyFirstTitle(t *testing.T) {
	resp := &Response{
		Titles:       []entity.Title{{Title: ""}},
		Descriptions: []entity.Description{{Description: ""}},
	}
	title, description, _ := MapToRecord(resp)
	if title != PlaceholderTitle {
		t.Errorf("empty title should fall back to placeholder, got %q", title)
	}
	if description != PlaceholderDescription {
		t.Errorf("empty description should fall back to placeholder, got %q", description)
	}
}

func TestMapToRecordPrefersCurrentKeys(t *testing.T) {
	resp := &Response{
		ImageCaptions:      []entity.Caption{{Caption1: "current"}},
		ImageCaptionLegacy: []entity.Caption{{Caption1: "legacy"}},
		ResearchField:      "Neuroscience",
		DomainLegacy:       "Biology",
	}
	_, _, meta := MapToRecord(resp)
	if got := meta.ImageCaption[0].Caption1; got != "current" {
		t.Errorf("imageCaption = %q, want current key to win", got)
	}
	if meta.Domain != "Neuroscience" {
		t.Errorf("domain = %q, want researchField to win", meta.Domain)
	}
}

func TestMapToRecordLegacyFallback(t *testing.T) {
	resp := &Response{
		TableCaptionLegacy: []entity.Caption{{Caption1: "legacy table"}},
		DomainLegacy:       "Chemistry",
	}
	_, _, meta := MapToRecord(resp)
	if got := meta.TableCaption[0].Caption1; got != "legacy table" {
		t.Errorf("tableCaption = %q, want legacy value", got)
	}
	if meta.Domain != "Chemistry" {
		t.Errorf("domain = %q, want legacy domain", meta.Domain)
	}
}

func TestMapToRecordSingularsBecomeArrays(t *testing.T) {
	resp := &Response{
		Publisher: &entity.Publisher{Name: "Posters.Science"},
		Types:     &entity.ResourceType{ResourceTypeGeneral: "Poster"},
	}
	_, _, meta := MapToRecord(resp)
	if len(meta.Publisher) != 1 || meta.Publisher[0].Name != "Posters.Science" {
		t.Errorf("publisher = %+v, want single-element array", meta.Publisher)
	}
	if len(meta.Types) != 1 || meta.Types[0].ResourceTypeGeneral != "Poster" {
		t.Errorf("types = %+v, want single-element array", meta.Types)
	}
}

func TestMapToRecordConferenceFlattening(t *testing.T) {
	resp := &Response{
		Conference: &Conference{
			ConferenceName:     "SfN 2025",
			ConferenceLocation: "Chicago, IL",
			ConferenceAcronym:  "SfN",
		},
	}
	_, _, meta := MapToRecord(resp)
	if meta.ConferenceName != "SfN 2025" || meta.ConferenceLocation != "Chicago, IL" || meta.ConferenceAcronym != "SfN" {
		t.Errorf("conference columns not flattened: %+v", meta)
	}
}

func TestMapToRecordUnnamedCreator(t *testing.T) {
	resp := &Response{
		Creators: []entity.Creator{{Name: ""}, {Name: "Curie, Marie"}},
	}
	_, _, meta := MapToRecord(resp)
	if meta.Creators[0].Name != "Unknown Creator" {
		t.Errorf("creators[0].Name = %q, want Unknown Creator", meta.Creators[0].Name)
	}
	if meta.Creators[1].Name != "Curie, Marie" {
		t.Errorf("creators[1].Name = %q, want unchanged", meta.Creators[1].Name)
	}
}

func TestMapToRecordDeterministic(t *testing.T) {
	resp := &Response{
		Titles:        []entity.Title{{Title: "A Poster"}},
		ResearchField: "Physics",
		Publisher:     &entity.Publisher{Name: "Pub"},
	}
	title1, desc1, meta1 := MapToRecord(resp)
	title2, desc2, meta2 := MapToRecord(resp)
	if title1 != title2 || desc1 != desc2 || !reflect.DeepEqual(meta1, meta2) {
		t.Error("MapToRecord is not deterministic for identical input")
	}
}

func TestContentBlockDecodesBothShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"object", `{"sections":[{"title":"Intro","text":"hello"}]}`},
		{"bare array", `[{"title":"Intro","text":"hello"}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var block ContentBlock
			if err := json.Unmarshal([]byte(tc.raw), &block); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(block.Sections) != 1 {
				t.Fatalf("sections = %d, want 1", len(block.Sections))
			}
			if block.Sections[0]["title"] != "Intro" {
				t.Errorf("section title = %v, want Intro", block.Sections[0]["title"])
			}
		})
	}
}

func TestAffiliationDecodesBareString(t *testing.T) {
	raw := `{"creators":[{"name":"Doe, Jane","affiliation":["MIT",{"name":"Harvard"}]}]}`
	var resp Response
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	affs := resp.Creators[0].Affiliation
	if len(affs) != 2 {
		t.Fatalf("affiliations = %d, want 2", len(affs))
	}
	if affs[0].Name != "MIT" {
		t.Errorf("affiliation[0] = %q, want MIT", affs[0].Name)
	}
	if affs[1].Name != "Harvard" {
		t.Errorf("affiliation[1] = %q, want Harvard", affs[1].Name)
	}
}
