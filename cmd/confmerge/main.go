package main

import (
	"os"

	"github.com/MKhiriev/go-utils/internal/cli"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	version, commit, date := buildInfo()

	if err := cli.NewRootCommand(version, commit, date).Execute(); err != nil {
		os.Exit(1)
	}
}

// buildInfo normalizes the ldflags values for --version output.
func buildInfo() (version, commit, date string) {
	version, commit, date = buildVersion, buildCommit, buildDate
	if version == "" {
		version = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	if date == "" {
		date = "N/A"
	}

	return version, commit, date
}
