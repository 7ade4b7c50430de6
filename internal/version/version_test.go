// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"

	"go.astrophena.name/srcdoc/internal/testutil"
)

func TestInfoString(t *testing.T) {
	t.Parallel()

	i := Info{
		Version: "v1.2.3",
		Commit:  "deadbeef",
		BuiltAt: "2026-08-25T00:00:00Z",
		Go:      "go1.22.0",
		OS:      "linux",
		Arch:    "amd64",
	}

	s := i.String()
	for _, want := range []string{"v1.2.3", "go1.22.0", "linux/amd64", "commit deadbeef", "built at 2026-08-25T00:00:00Z"} {
		if !strings.Contains(s, want) {
			t.Errorf("Info.String() = %q, must contain %q", s, want)
		}
	}
}

func TestCmdName(t *testing.T) {
	t.Parallel()
	testutil.AssertEqual(t, CmdName() != "", true)
}
