package domain

import "path/filepath"

// Canonical members of a portable installation image. The addon directory
// lives under the user configuration directory; earlier generations of the
// automation checked a top-level addons directory, which matched an older
// portable layout and is not supported here.
const (
	ImageExecutable = "nvda.exe"
	ImageFlagFile   = "portable.ini"
	ImageLibrary    = "library.zip"
	ImageSynthDir   = "synthDrivers"
	ImageLocaleDir  = "locale"
	ImageConfigDir  = "userConfig"

	// PortableMarker must appear in the flag file for the image to count as
	// a portable copy rather than a stray directory.
	PortableMarker = "[portable]"
)

// RequiredMembers lists the six entries every valid image must contain,
// relative to the image root.
var RequiredMembers = []string{
	ImageExecutable,
	ImageFlagFile,
	ImageLibrary,
	ImageSynthDir,
	ImageLocaleDir,
	ImageConfigDir,
}

// AddonNameTokens are the substrings identifying the automation addon
// directory. A directory satisfies the addon-presence check if its name
// contains any one of them (case-sensitive).
var AddonNameTokens = []string{"CommandSocket", "at-automation"}

// AddonsDir returns the addons directory of an image rooted at root.
func AddonsDir(root string) string {
	return filepath.Join(root, ImageConfigDir, "addons")
}

// ImageReport is the outcome of validating an installation image.
type ImageReport struct {
	OK       bool     `json:"ok"`
	Missing  []string `json:"missing,omitempty"`
	HasFlag  bool     `json:"has_flag"`
	HasAddon bool     `json:"has_addon"`
}
