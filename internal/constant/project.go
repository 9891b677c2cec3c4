package constant

import "strings"

// ProjectType is the closed classification of a renovation project. Contractors
// advertise the set of types they serve; a project carries exactly one.
type ProjectType string

const (
	ProjectTypeKitchen      ProjectType = "kitchen"
	ProjectTypeBathroom     ProjectType = "bathroom"
	ProjectTypeBasement     ProjectType = "basement"
	ProjectTypeRoofing      ProjectType = "roofing"
	ProjectTypeElectrical   ProjectType = "electrical"
	ProjectTypePlumbing     ProjectType = "plumbing"
	ProjectTypeHVAC         ProjectType = "hvac"
	ProjectTypeFlooring     ProjectType = "flooring"
	ProjectTypeWindowsDoors ProjectType = "windows_doors"
	ProjectTypeExterior     ProjectType = "exterior"
	ProjectTypeGeneral      ProjectType = "general"
)

var ProjectTypes = []ProjectType{
	ProjectTypeKitchen,
	ProjectTypeBathroom,
	ProjectTypeBasement,
	ProjectTypeRoofing,
	ProjectTypeElectrical,
	ProjectTypePlumbing,
	ProjectTypeHVAC,
	ProjectTypeFlooring,
	ProjectTypeWindowsDoors,
	ProjectTypeExterior,
	ProjectTypeGeneral,
}

// NormalizeProjectType trims and lower-cases a raw token so that "Bathroom " and
// "bathroom" compare equal.
func NormalizeProjectType(raw string) ProjectType {
	return ProjectType(strings.ToLower(strings.TrimSpace(raw)))
}

func (pt ProjectType) IsValid() bool {
	for _, known := range ProjectTypes {
		if pt == known {
			return true
		}
	}

	return false
}

// ParseProjectTypes splits a comma-separated capability list ("kitchen, Bathroom")
// into normalized tokens. Empty tokens after trimming are dropped, duplicates are
// collapsed and input order is preserved. Used by the contractor CSV importer.
func ParseProjectTypes(csv string) []ProjectType {
	var out []ProjectType
	seen := make(map[ProjectType]struct{})

	for _, raw := range strings.Split(csv, ",") {
		token := NormalizeProjectType(raw)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	return out
}
