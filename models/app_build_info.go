package models

// AppBuildInfo carries build metadata injected at link time and shown in the
// client UI.
type AppBuildInfo struct {
	BuildVersion string
	BuildDate    string
	BuildCommit  string
}

// Normalize replaces empty fields with "N/A" so views never render blanks.
func (b AppBuildInfo) Normalize() AppBuildInfo {
	if b.BuildVersion == "" {
		b.BuildVersion = "N/A"
	}
	if b.BuildDate == "" {
		b.BuildDate = "N/A"
	}
	if b.BuildCommit == "" {
		b.BuildCommit = "N/A"
	}
	return b
}
