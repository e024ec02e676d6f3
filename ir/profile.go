package ir

// Profile identifies the API surface a record is emitted for. Version is
// empty for projections that apply to the API tag as a whole and for
// extension projections.
type Profile struct {
	ProfileName    string `json:"profile_name" yaml:"profile_name"`
	ProfileVersion string `json:"profile_version,omitempty" yaml:"profile_version,omitempty"`
	ExtensionName  string `json:"extension_name" yaml:"extension_name"`
}

// HasVersion reports whether the record is tied to a specific core version.
func (p Profile) HasVersion() bool {
	return p.ProfileVersion != ""
}

// ProfileStruct is a structure projected into a profile. The canonical
// Struct is shared, never copied.
type ProfileStruct struct {
	*Struct
	Profile
}

// ProfileEnum is an enum projected into a profile.
type ProfileEnum struct {
	*Enum
	Profile
}

// ProfileFunction is a function projected into a profile.
type ProfileFunction struct {
	*Function
	Profile
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}
