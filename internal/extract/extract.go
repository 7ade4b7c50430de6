// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package extract turns documentation comments in source files into a
// markdown document.
//
// It works line by line: consecutive lines starting with two or more
// slashes form a block, and the first non-comment line after a block
// decides its fate. A blank line keeps the block as general
// documentation, a function definition keeps it as that function's
// documentation (with a synthesized heading), and any other code line
// throws the block away as an ordinary inline comment. There is no
// tokenizer and no language grammar; lines inside strings or block
// comments that happen to look like comments are misclassified, and
// that's fine for the sources this tool is pointed at.
package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// Line shapes recognized by the extractor. Checked top to bottom,
// first match wins.
var (
	// commentRE matches a documentation comment line: two or more
	// slashes with at most one following space stripped from the body.
	commentRE = regexp.MustCompile(`^\s*/{2,} ?(.*)$`)

	// boundFuncRE matches a function bound to a name, like
	// "foo.bar = function(x, y) {". The name may be dotted; a single
	// leading dot is stripped.
	boundFuncRE = regexp.MustCompile(`^\s*\.?([^\s=]+?)\W*\bfunction\s*\(([^)]*)\)`)

	// namedFuncRE matches a function declaration, like "function baz(a) {".
	namedFuncRE = regexp.MustCompile(`^\s*function\s+([^\s(]+)\s*\(([^)]*)\)`)

	// namedSigRE and unnamedSigRE match Haskell-style type signatures,
	// "concatMap :: (a -> [b]) -> [a] -> [b]" and ":: [a] -> Int".
	namedSigRE   = regexp.MustCompile(`^\s*([^\s:]+)\s*::\s*(.*)$`)
	unnamedSigRE = regexp.MustCompile(`^\s*::\s*(.*)$`)

	// paramRE matches a parameter list bullet, "- x - the value".
	paramRE = regexp.MustCompile(`^([*+-]) (\S+) - (.*)$`)

	// headingRE matches the first run of heading markers on a line.
	headingRE = regexp.MustCompile(`#+`)
)

// signature is a captured type signature, rendered later as a table row.
type signature struct {
	name string
	sep  string
	typ  string
}

// Extractor accumulates documentation blocks from one source document.
// The zero value is not ready to use; call New.
type Extractor struct {
	inBlock bool
	depth   int
	block   []string
	sigs    []signature
	doc     []string
}

// New returns an Extractor primed to accept a leading comment block.
func New() *Extractor {
	return &Extractor{inBlock: true, depth: 1}
}

// Extract runs src through a fresh Extractor and returns the resulting
// markdown document. The result has no trailing newline and is empty
// if src contains no documentation comments at all.
func Extract(src string) string {
	e := New()
	for _, line := range splitLines(src) {
		e.feed(line)
	}
	return e.finish()
}

// splitLines splits src into lines, accepting LF, CRLF and bare CR
// line breaks.
func splitLines(src string) []string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\r", "\n")
	return strings.Split(src, "\n")
}

// feed classifies a single source line and advances the accumulator.
func (e *Extractor) feed(line string) {
	if m := commentRE.FindStringSubmatch(line); m != nil {
		if !e.inBlock {
			e.inBlock = true
			e.block = nil
			e.sigs = nil
		}
		e.append(m[1])
		return
	}
	if e.inBlock {
		e.endBlock(line)
		e.inBlock = false
	}
}

// finish flushes any block still open at end of input and returns the
// document.
func (e *Extractor) finish() string {
	if e.inBlock {
		e.endBlock("")
		e.inBlock = false
	}
	return strings.Join(e.doc, "\n")
}

// endBlock decides what to do with the accumulated block, given the
// raw non-comment line that terminated it. A pending signature table
// is rendered into the block first, so it shares the block's fate.
func (e *Extractor) endBlock(line string) {
	e.flushSigs()

	if strings.TrimSpace(line) == "" {
		e.flushBlock()
		return
	}
	if m := boundFuncRE.FindStringSubmatch(line); m != nil {
		e.prependHeading(m[1], m[2])
		e.flushBlock()
		return
	}
	if m := namedFuncRE.FindStringSubmatch(line); m != nil {
		e.prependHeading(m[1], m[2])
		e.flushBlock()
		return
	}
	// Unrelated code right after the comment: it was an inline
	// comment, not documentation. Drop it.
	e.block = nil
}

// prependHeading puts a synthesized function heading at the very front
// of the block, one level below the most recently seen heading.
func (e *Extractor) prependHeading(name, params string) {
	h := fmt.Sprintf("%s %s(%s)", strings.Repeat("#", e.depth+1), name, params)
	e.block = append([]string{h}, e.block...)
}

// flushBlock commits the block to the document, separating it from the
// previous block with a single blank line.
func (e *Extractor) flushBlock() {
	if len(e.doc) > 0 {
		e.doc = append(e.doc, "")
	}
	e.doc = append(e.doc, e.block...)
	e.block = nil
}

// append runs one comment body line through the content transformer
// and adds the result to the block.
func (e *Extractor) append(body string) {
	if m := namedSigRE.FindStringSubmatch(body); m != nil {
		e.sigs = append(e.sigs, signature{name: m[1], sep: "::", typ: m[2]})
		return
	}
	if m := unnamedSigRE.FindStringSubmatch(body); m != nil {
		e.sigs = append(e.sigs, signature{name: "", sep: "::", typ: m[1]})
		return
	}

	// A signature run ends at the first line that isn't one.
	e.flushSigs()

	if m := paramRE.FindStringSubmatch(body); m != nil {
		e.block = append(e.block, fmt.Sprintf("%s `%s` %s", m[1], m[2], m[3]))
		return
	}
	if m := headingRE.FindString(body); m != "" {
		e.depth = len(m)
	}
	e.block = append(e.block, body)
}

// escaper escapes exactly the characters the signature table contract
// names. html.EscapeString would also escape apostrophes.
var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// flushSigs renders pending signatures into the block as a single-line
// HTML table, one row per signature, each cell escaped and wrapped in
// a code span. Rows keep insertion order.
func (e *Extractor) flushSigs() {
	if len(e.sigs) == 0 {
		return
	}
	var sb strings.Builder
	sb.WriteString("<table>")
	for _, sig := range e.sigs {
		sb.WriteString("<tr>")
		for _, cell := range []string{sig.name, sig.sep, sig.typ} {
			sb.WriteString("<td><code>")
			sb.WriteString(escaper.Replace(cell))
			sb.WriteString("</code></td>")
		}
		sb.WriteString("</tr>")
	}
	sb.WriteString("</table>")
	e.block = append(e.block, sb.String())
	e.sigs = nil
}
