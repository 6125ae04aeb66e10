// Package project holds build-time project metadata.
package project

const (
	Name = "gocalc"
)

// Version is overridden at build time via -ldflags "-X github.com/averycrespi/gocalc/pkg/project.Version=..."
var Version = "dev"
