package domain

// DefaultAddonName is used when an addon manifest is absent or does not
// declare a name.
const DefaultAddonName = "at-automation"

// PluginSourceDir is the addon source directory inside the upstream
// automation repository archive.
const PluginSourceDir = "NVDAPlugin"

// AddonManifest holds the fields read from an addon's manifest file.
// The manifest is a line-oriented "key = value" format; only the name is
// of interest, unknown keys are ignored.
type AddonManifest struct {
	Name string
}
