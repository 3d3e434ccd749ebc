package models

// ImportMode selects which validator an import runs its inputs through.
type ImportMode string

const (
	ImportModeTarget    ImportMode = "target"
	ImportModeDomain    ImportMode = "domain"
	ImportModeSubdomain ImportMode = "subdomain"
	ImportModeEndpoint  ImportMode = "endpoint"
	ImportModeGroup     ImportMode = "group"
)

// ImportModes lists the supported modes.
var ImportModes = []ImportMode{
	ImportModeTarget,
	ImportModeDomain,
	ImportModeSubdomain,
	ImportModeEndpoint,
	ImportModeGroup,
}

// ImportRequest is a bulk upload of raw target strings
type ImportRequest struct {
	Mode   ImportMode `json:"mode"`
	Inputs []string   `json:"inputs"`
}

// ImportReport is the result of processing an ImportRequest
type ImportReport struct {
	RunID        string            `json:"run_id,omitempty"`
	Mode         ImportMode        `json:"mode"`
	Total        int               `json:"total"`
	ValidCount   int               `json:"valid_count"`
	InvalidCount int               `json:"invalid_count"`
	Items        []BatchItem       `json:"items,omitempty"`
	Groups       *RootDomainGroups `json:"groups,omitempty"`
}

// HasInvalid reports whether any input in the import was rejected.
func (r *ImportReport) HasInvalid() bool {
	return r.InvalidCount > 0
}
