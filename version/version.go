package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/philipparndt/gotri/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"commit"`
	BuildDate string `json:"date"`
	GoVersion string `json:"go"`
	Platform  string `json:"platform"`
}

// Get returns the build information of this binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsDev reports whether the binary was built without version flags
func (i Info) IsDev() bool {
	return i.Version == "dev"
}

func (i Info) String() string {
	if i.IsDev() {
		return "dev"
	}
	return fmt.Sprintf("%s (%s, %s)", i.Version, i.GitCommit, i.BuildDate)
}

// GetVersion returns the version string
func GetVersion() string {
	return Version
}

// GetFullVersion returns the version with commit and build date
func GetFullVersion() string {
	return Get().String()
}
