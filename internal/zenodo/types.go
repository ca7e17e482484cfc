package zenodo

// PrereserveDOI is the DOI allocated to a draft deposition before publication.
type PrereserveDOI struct {
	DOI string `json:"doi,omitempty"`
}

// DepositionCreator is the reduced creator shape the deposition API accepts:
// a name plus at most one affiliation string.
type DepositionCreator struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation,omitempty"`
}

// DepositionMetadata is the metadata object pushed to (and echoed by) a
// deposition. Updates are full replaces.
type DepositionMetadata struct {
	Title           string              `json:"title,omitempty"`
	UploadType      string              `json:"upload_type,omitempty"`
	PublicationType string              `json:"publication_type,omitempty"`
	Description     string              `json:"description,omitempty"`
	Creators        []DepositionCreator `json:"creators,omitempty"`
	PrereserveDOI   *PrereserveDOI      `json:"prereserve_doi,omitempty"`
}

type DepositionFile struct {
	ID       string `json:"id,omitempty"`
	Filename string `json:"filename"`
	Filesize int64  `json:"filesize,omitempty"`
	Checksum string `json:"checksum,omitempty"`
}

type DepositionLinks struct {
	Bucket     string `json:"bucket,omitempty"`
	HTML       string `json:"html,omitempty"`
	LatestHTML string `json:"latest_html,omitempty"`
	Publish    string `json:"publish,omitempty"`
	Self       string `json:"self,omitempty"`
}

// Deposition is the remote service's draft-or-published record. It is a
// transient view: the orchestrator re-fetches rather than caching it across
// requests.
type Deposition struct {
	ID           int64              `json:"id"`
	RecordID     int64              `json:"record_id"`
	ConceptRecID string             `json:"conceptrecid"`
	DOI          string             `json:"doi,omitempty"`
	State        string             `json:"state,omitempty"`
	Submitted    bool               `json:"submitted"`
	Title        string             `json:"title,omitempty"`
	Metadata     DepositionMetadata `json:"metadata"`
	Links        DepositionLinks    `json:"links"`
	Files        []DepositionFile   `json:"files,omitempty"`
}

// DepositionSummary is the per-deposition digest reported by token
// validation.
type DepositionSummary struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	State        string `json:"state"`
	Submitted    bool   `json:"submitted"`
	ConceptRecID string `json:"conceptrecid"`
}

// TokenPair is the result of an OAuth code exchange or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
