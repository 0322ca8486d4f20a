package domain

import "fmt"

// FallbackVersion is returned when the release listing cannot be parsed at
// all. It matches the last version the automation was known to work with.
const FallbackVersion = "2024.4.2"

// ReleaseInfo identifies one published release of the target application.
type ReleaseInfo struct {
	Version string `json:"version"`
	URL     string `json:"url"`
}

// ReleaseURL returns the installer download URL for a version, relative to
// the releases base URL.
func ReleaseURL(baseURL, version string) string {
	return fmt.Sprintf("%s%s/nvda_%s.exe", baseURL, version, version)
}
