package domain

import "time"

// ArtifactInfo records one produced artifact (installer download, addon
// package, portable image archive) together with its content checksum.
type ArtifactInfo struct {
	Name      string    `json:"name,omitzero"`
	Path      string    `json:"path,omitzero"`
	Checksum  string    `json:"checksum,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
