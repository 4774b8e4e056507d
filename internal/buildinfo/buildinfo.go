// Package buildinfo carries version details stamped in at link time:
//
//	go build -ldflags "-X spotterapi/internal/buildinfo.Version=1.2.0 -X spotterapi/internal/buildinfo.Commit=$(git rev-parse --short HEAD)"
package buildinfo

import "fmt"

var (
	Version = "1.0.0"
	Date    = "N/A"
	Commit  = "N/A"
)

// Info is a snapshot of the build variables.
type Info struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Current returns the values linked into this binary.
func Current() Info {
	return Info{Version: Version, Date: Date, Commit: Commit}
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", i.Version, i.Date, i.Commit)
}
