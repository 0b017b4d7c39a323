// Package buildinfo holds the version stamp shown in the window title
// and the version command. Release builds override the vars with
// -ldflags "-X glint/internal/buildinfo.Version=... ".
package buildinfo

var (
	// Version is the release tag, "dev" for untagged builds.
	Version = "dev"
	// Commit is the short git revision.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)

// Short picks the most specific identifier available: the release tag,
// else the commit, else "dev".
func Short() string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case Commit != "" && Commit != "unknown":
		return Commit
	default:
		return "dev"
	}
}
