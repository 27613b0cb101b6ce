package version

import (
	"fmt"
	"strings"
)

// Build metadata, set with -ldflags "-X github.com/go-authgate/loginapi/internal/version.Version=..."
var (
	App       = "LoginAPI"
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	BuildOS   string
	BuildArch string
)

// String returns a one-line summary such as "LoginAPI dev (abc1234)"
func String() string {
	s := App + " " + getVersion()
	if GitCommit != "" {
		s += " (" + getShortCommit() + ")"
	}
	return s
}

// PrintVersion prints the version information
func PrintVersion() {
	fmt.Println(String())

	var details []string
	if BuildTime != "" {
		details = append(details, "Build time: "+BuildTime)
	}
	if GoVersion != "" {
		details = append(details, "Go version: "+GoVersion)
	}
	if BuildOS != "" && BuildArch != "" {
		details = append(details, "Built for: "+BuildOS+"/"+BuildArch)
	}
	if len(details) > 0 {
		fmt.Println(strings.Join(details, "\n"))
	}
}

func getShortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

func getVersion() string {
	if Version != "" {
		return Version
	}
	return "dev"
}
