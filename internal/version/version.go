// Package version provides the version and build information.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Info is the version and build information of the current binary.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`   // BuildInfo's vcs.revision
	BuiltAt string `json:"built_at"` // BuildInfo's vcs.time
	Go      string `json:"go"`       // runtime.Version()
	OS      string `json:"os"`       // runtime.GOOS
	Arch    string `json:"arch"`     // runtime.GOARCH
}

// String implements the fmt.Stringer interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s (%s, %s/%s)\n", CmdName(), i.Version, i.Go, i.OS, i.Arch)
	if i.Commit != "" && i.BuiltAt != "" {
		fmt.Fprintf(&sb, "commit %s\n", i.Commit)
		fmt.Fprintf(&sb, "built at %s\n", i.BuiltAt)
	}
	return sb.String()
}

var load = sync.OnceValues(func() (string, Info) {
	i := Info{
		Version: "devel",
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}

	name := "cmd"
	if exe, err := os.Executable(); err == nil {
		name = filepath.Base(exe)
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return name, i
	}

	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.time":
			i.BuiltAt = s.Value
		}
	}

	return name, i
})

// CmdName returns the base name of the current binary.
func CmdName() string {
	name, _ := load()
	return name
}

// Version returns the version and build information of the current binary.
func Version() Info {
	_, info := load()
	return info
}
