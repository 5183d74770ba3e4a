package config

// Layout constants.
const (
	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// TargetNameWidth is the preferred width for profile names in the list.
	TargetNameWidth = 30

	// MinNameWidth is the minimum width for profile names.
	MinNameWidth = 10
)

// DefaultTheme names the colour scheme used when settings choose none.
const DefaultTheme = "default"

// Display limits.
const (
	// MaxVisibleProfiles limits rows shown in the list before scrolling.
	MaxVisibleProfiles = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	// MaxNameLength is the maximum profile name length.
	MaxNameLength = 60

	// MaxDescriptionLength is the maximum description length.
	MaxDescriptionLength = 200
)
