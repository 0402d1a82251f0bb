package domain

// Preset is a named set of brew parameters.
type Preset struct {
	ID          string
	Name        string
	Description string
	Params      BrewParameters
}

// PresetSummary is a lightweight view of a preset for listing.
type PresetSummary struct {
	ID          string
	Name        string
	Description string
}
