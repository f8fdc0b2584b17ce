package models

// ManifestEntry pairs a credential with the record file sealed under it. An
// empty Credential asks the sealer to generate one. Record is resolved
// relative to the manifest's directory.
type ManifestEntry struct {
	Credential string `json:"credential"`
	Record     string `json:"record"`
}
