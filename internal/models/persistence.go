package models

// SnapshotVersion is the current on-disk snapshot format version.
const SnapshotVersion = 1

// StorageV1 is the persistence envelope with an explicit version field so
// later formats can migrate on load.
type StorageV1 struct {
	Version int           `json:"version"`
	Records []CatchRecord `json:"records"`
}
