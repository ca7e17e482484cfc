package posterjson

import (
	"testing"

	"github.com/posters-science/poster-tracker/internal/entity"
)

func TestBuildDOISplit(t *testing.T) {
	doc := Build(&entity.PosterMetadata{DOI: "10.5281/zenodo.123/extra"})
	if doc["doi"] != "10.5281/zenodo.123/extra" {
		t.Errorf("doi = %v", doc["doi"])
	}
	if doc["prefix"] != "10.5281" {
		t.Errorf("prefix = %v", doc["prefix"])
	}
	// split happens on the FIRST slash only
	if doc["suffix"] != "zenodo.123/extra" {
		t.Errorf("suffix = %v", doc["suffix"])
	}
}

func TestBuildNoDOI(t *testing.T) {
	doc := Build(&entity.PosterMetadata{})
	for _, key := range []string{"doi", "prefix", "suffix"} {
		if _, ok := doc[key]; ok {
			t.Errorf("%s present without a stored DOI", key)
		}
	}
}

func TestBuildMandatoryKeysAreArrays(t *testing.T) {
	doc := Build(&entity.PosterMetadata{})
	keys := []string{
		"identifiers", "creators", "titles", "subjects", "dates",
		"formats", "rightsList", "descriptions", "fundingReferences",
	}
	for _, key := range keys {
		v, ok := doc[key]
		if !ok {
			t.Errorf("%s missing from an empty record", key)
			continue
		}
		arr, ok := v.([]any)
		if !ok {
			t.Errorf("%s = %T (%v), want empty array", key, v, v)
			continue
		}
		if len(arr) != 0 {
			t.Errorf("%s = %v, want empty", key, arr)
		}
	}
}

func TestBuildUnwrapsSingulars(t *testing.T) {
	doc := Build(&entity.PosterMetadata{
		Publisher: []entity.Publisher{{Name: "Posters.Science"}},
		Types:     []entity.ResourceType{{ResourceTypeGeneral: "Poster"}},
	})
	pub, ok := doc["publisher"].(map[string]any)
	if !ok {
		t.Fatalf("publisher = %T, want bare object", doc["publisher"])
	}
	if pub["name"] != "Posters.Science" {
		t.Errorf("publisher name = %v", pub["name"])
	}
	types, ok := doc["types"].(map[string]any)
	if !ok {
		t.Fatalf("types = %T, want bare object", doc["types"])
	}
	if types["resourceTypeGeneral"] != "Poster" {
		t.Errorf("types = %v", types)
	}
}

func TestBuildContentWrapped(t *testing.T) {
	doc := Build(&entity.PosterMetadata{
		PosterContent: []entity.ContentSection{{"title": "Methods"}},
	})
	content, ok := doc["content"].(map[string]any)
	if !ok {
		t.Fatalf("content = %T, want object", doc["content"])
	}
	sections, ok := content["sections"].([]any)
	if !ok || len(sections) != 1 {
		t.Fatalf("sections = %v", content["sections"])
	}
}

func TestBuildRenamesEthicsApproval(t *testing.T) {
	doc := Build(&entity.PosterMetadata{EthicsApproval: []string{"IRB-2024-17"}})
	if _, ok := doc["ethicsApproval"]; ok {
		t.Error("storage name leaked into the artifact")
	}
	approvals, ok := doc["ethicsApprovals"].([]any)
	if !ok || len(approvals) != 1 || approvals[0] != "IRB-2024-17" {
		t.Errorf("ethicsApprovals = %v", doc["ethicsApprovals"])
	}
}

func TestBuildConferenceReassembly(t *testing.T) {
	doc := Build(&entity.PosterMetadata{
		ConferenceName:    "SfN 2025",
		ConferenceAcronym: "SfN",
	})
	conf, ok := doc["conference"].(map[string]any)
	if !ok {
		t.Fatalf("conference = %T, want object", doc["conference"])
	}
	if conf["conferenceName"] != "SfN 2025" || conf["conferenceAcronym"] != "SfN" {
		t.Errorf("conference = %v", conf)
	}
	if _, ok := conf["conferenceLocation"]; ok {
		t.Error("empty conference column included")
	}
}

func TestBuildConferenceOmittedWhenEmpty(t *testing.T) {
	doc := Build(&entity.PosterMetadata{})
	if _, ok := doc["conference"]; ok {
		t.Error("conference object present with every column empty")
	}
}

func TestBuildStripsEmptyStringsRecursively(t *testing.T) {
	doc := Build(&entity.PosterMetadata{
		Creators: []entity.Creator{{
			Name:      "Doe, Jane",
			GivenName: "",
			Affiliation: []entity.Affiliation{{
				Name:                  "MIT",
				AffiliationIdentifier: "",
			}},
		}},
		Language: "",
	})

	var walk func(v any)
	walk = func(v any) {
		switch val := v.(type) {
		case map[string]any:
			for k, item := range val {
				if s, ok := item.(string); ok && s == "" {
					t.Errorf("empty string survived at key %q", k)
				}
				walk(item)
			}
		case []any:
			for _, item := range val {
				walk(item)
			}
		}
	}
	walk(doc)

	if _, ok := doc["language"]; ok {
		t.Error("empty language included")
	}
}
