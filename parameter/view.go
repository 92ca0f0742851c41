package parameter

// Visibility
const (
	// LegacyViewDepth is the fixed row cutoff of earlier releases, kept as the migration default
	LegacyViewDepth = 15

	// FacingSectorWidth is the cone width in degrees used by facing-based sector queries
	FacingSectorWidth = 90.0
)

// Sandbox defaults
const (
	// SandboxBoardWidth is the generated maze width (cells)
	SandboxBoardWidth = 61

	// SandboxBoardHeight is the generated maze height (cells)
	SandboxBoardHeight = 23

	// SandboxBraiding is the loop factor for generated mazes, 0 is a perfect maze
	SandboxBraiding = 0.35

	// SandboxRadius is the area overlay radius (cells), x.5 rounds out more evenly
	SandboxRadius = 6.5

	// SandboxToneHz is the blocked-move tone frequency
	SandboxToneHz = 220

	// SandboxToneMs is the blocked-move tone duration
	SandboxToneMs = 60

	// SandboxFrameMs is the redraw interval
	SandboxFrameMs = 16
)
