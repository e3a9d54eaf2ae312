package types

type (
	// FolderCandidate is an immediate subdirectory of the source with its derived year.
	FolderCandidate struct {
		Name      string `json:"name"`
		Path      string `json:"path"`
		Year      int    `json:"year,omitempty"`
		YearKnown bool   `json:"yearKnown"`
		Error     string `json:"error,omitempty"`
	}

	// ExclusionConfig contains configuration for the exclusion filter.
	ExclusionConfig struct {
		Names    []string `json:"names"`
		Patterns []string `json:"patterns"`
	}
)
