// Package buildinfo holds release metadata set at link time, e.g.
//
//	go build -ldflags "-X github.com/aidanlsb/journal/internal/buildinfo.Version=v1.0.0"
//
// Local builds leave them empty.
package buildinfo

var (
	Version = ""
	Commit  = ""
	Date    = ""
)
