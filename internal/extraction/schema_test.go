package extraction

import "testing"

func TestSchemaAcceptsBothKeyGenerations(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"current keys", `{"imageCaptions":[{"caption1":"a"}],"tableCaptions":[{}],"content":{"sections":[]},"researchField":"Biology"}`},
		{"legacy keys", `{"imageCaption":[{"caption1":"a"}],"tableCaption":[{}],"posterContent":[{"title":"x"}],"domain":"Biology"}`},
		{"bare string affiliation", `{"creators":[{"name":"Doe","affiliation":["MIT"]}]}`},
		{"object affiliation", `{"creators":[{"name":"Doe","affiliation":[{"name":"MIT"}]}]}`},
		{"unknown extra keys", `{"somethingNew":"ignored","titles":[{"title":"t"}]}`},
		{"empty object", `{}`},
	}
	schema := BuildExtractionJSONSchema()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tc.raw)); err != nil {
				t.Errorf("valid payload rejected: %v", err)
			}
		})
	}
}

func TestSchemaRejectsWrongTypes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"creators not array", `{"creators":42}`},
		{"titles scalar items", `{"titles":["just a string"]}`},
		{"year as string", `{"publicationYear":"2024"}`},
		{"not json", `{"creators":`},
	}
	schema := BuildExtractionJSONSchema()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := ValidateJSONAgainstSchema(schema, []byte(tc.raw)); err == nil {
				t.Error("invalid payload accepted")
			}
		})
	}
}
