// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"context"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.astrophena.name/srcdoc/internal/cli"
	"go.astrophena.name/srcdoc/internal/cli/clitest"
	"go.astrophena.name/srcdoc/internal/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func TestRun(t *testing.T) {
	clitest.Run[*app](t, func(t *testing.T) *app {
		return &app{}
	}, map[string]clitest.Case[*app]{
		"prints usage with help flag": {
			Args:    []string{"-h"},
			WantErr: flag.ErrHelp,
		},
		"version": {
			Args:    []string{"-version"},
			WantErr: cli.ErrExitVersion,
		},
		"no files passed": {
			Args:    []string{},
			WantErr: cli.ErrInvalidArgs,
		},
		"more than one file passed": {
			Args:    []string{"a.js", "b.js"},
			WantErr: cli.ErrInvalidArgs,
		},
		"nonexistent file": {
			Args:    []string{"nonexistent.js"},
			WantErr: fs.ErrNotExist,
		},
		"extracts from stdin": {
			Args:         []string{"-"},
			Stdin:        strings.NewReader("// Hi there.\n\n"),
			WantInStdout: "Hi there.",
		},
		"synthesizes a function heading": {
			Args:         []string{"-"},
			Stdin:        strings.NewReader("// Greets someone.\nfunction hi(name) {\n"),
			WantInStdout: "## hi(name)",
		},
		"renders html with the first heading as title": {
			Args:         []string{"-html", "-"},
			Stdin:        strings.NewReader("// # Title\n\n// Body.\n\n"),
			WantInStdout: "<title>Title</title>",
		},
		"wrap leaves short lines alone": {
			Args:         []string{"-wrap", "80", "-"},
			Stdin:        strings.NewReader("// Hello there.\n\n"),
			WantInStdout: "Hello there.",
		},
		"refuses to serve a preview of stdin": {
			Args:    []string{"-addr", "localhost:0", "-"},
			WantErr: cli.ErrInvalidArgs,
		},
	})
}

func TestWritesOutputFile(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "doc.md")
	env := &cli.Env{
		Args:   []string{"-o", out, "-"},
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader("// Written out.\n\n"),
		Stdout: new(bytes.Buffer),
		Stderr: new(bytes.Buffer),
	}

	if err := cli.Run(cli.WithEnv(context.Background(), env), new(app)); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(b), "Written out.\n")
}

func TestRender(t *testing.T) {
	testutil.RunGolden(t, "testdata/*.js", func(t *testing.T, match string) []byte {
		a := &app{}
		b, err := a.render(strings.NewReader(""), match)
		if err != nil {
			t.Fatal(err)
		}
		return b
	}, *update)
}

func TestPageTitle(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		app  *app
		doc  string
		file string
		want string
	}{
		"flag wins": {
			app:  &app{title: "Override"},
			doc:  "# Heading",
			file: "x.js",
			want: "Override",
		},
		"first heading": {
			app:  &app{},
			doc:  "intro\n\n## Deep heading\ntext",
			file: "x.js",
			want: "Deep heading",
		},
		"file name fallback": {
			app:  &app{},
			doc:  "no headings here",
			file: filepath.Join("some", "dir", "x.js"),
			want: "x.js",
		},
		"stdin fallback": {
			app:  &app{},
			doc:  "",
			file: "-",
			want: "stdin",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, tc.app.pageTitle(tc.doc, tc.file), tc.want)
		})
	}
}
