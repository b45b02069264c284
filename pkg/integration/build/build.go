package build

// BuildInfo identifies a binary. Version, Commit and Date are stamped at link
// time with -ldflags "-X .../build.gBuildVersion=...".
type BuildInfo struct {
	Name    string
	Id      string
	Version string
	Commit  string
	Date    string
}

var (
	gBuildVersion string
	gBuildCommit  string
	gBuildDate    string
)

const defaultVersion = "dev"

// NewBuildInfo combines an integration's name and id with the link-time
// stamps.
func NewBuildInfo(name, id string) BuildInfo {
	version := gBuildVersion
	if version == "" {
		version = defaultVersion
	}

	return BuildInfo{
		Name:    name,
		Id:      id,
		Version: version,
		Commit:  gBuildCommit,
		Date:    gBuildDate,
	}
}
