// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Srcdoc extracts documentation comments from a source file and turns them
into a markdown document.

Lines starting with two or more slashes are collected into blocks. A block
followed by a blank line becomes general documentation; a block followed by
a function definition becomes that function's documentation, with a heading
synthesized from the function's name and parameters; a block followed by
any other code is treated as an inline comment and dropped. Haskell-style
type signatures ("name :: Type -> Type") inside a block are gathered into a
table, and parameter bullets ("- x - the value") get their names set in
code spans.

# Usage

	$ srcdoc [flags...] <file>

Pass "-" as the file to read from standard input.

By default the markdown document is printed to stdout. With -o it is
written to a file instead. With -html the document is rendered to a
standalone HTML page. With -addr srcdoc serves a live HTML preview of the
file, re-extracting it on every request.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/srcdoc/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
