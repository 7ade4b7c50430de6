// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"html"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.astrophena.name/srcdoc/internal/atomicio"
	"go.astrophena.name/srcdoc/internal/cli"
	"go.astrophena.name/srcdoc/internal/extract"
	"go.astrophena.name/srcdoc/internal/web"

	"github.com/muesli/reflow/wordwrap"
	"rsc.io/markdown"
)

func main() { cli.Main(new(app)) }

type app struct {
	// flags
	output string
	title  string
	html   bool
	wrap   int
	addr   string
}

//go:embed template.html
var tmpl string

var parser = sync.OnceValue(func() *markdown.Parser {
	return &markdown.Parser{
		Table:         true,
		TaskListItems: true,
	}
})

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.output, "o", "", "Write output to `file` instead of stdout.")
	fs.StringVar(&a.title, "title", "", "Page `title` for HTML output. Defaults to the first heading, or the file name.")
	fs.BoolVar(&a.html, "html", false, "Render the document to a standalone HTML page.")
	fs.IntVar(&a.wrap, "wrap", 0, "Wrap markdown output at `width` columns (0 disables wrapping).")
	fs.StringVar(&a.addr, "addr", "", "Serve a live HTML preview on `host:port` instead of writing output.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: exactly one source file required", cli.ErrInvalidArgs)
	}
	file := env.Args[0]

	if a.addr != "" {
		if file == "-" {
			return fmt.Errorf("%w: can't serve a preview of standard input", cli.ErrInvalidArgs)
		}
		return a.serve(ctx, file)
	}

	out, err := a.render(env.Stdin, file)
	if err != nil {
		return err
	}

	if a.output != "" {
		return atomicio.WriteFile(a.output, out, 0o644)
	}
	_, err = env.Stdout.Write(out)
	return err
}

// render reads the source file ("-" means stdin) and produces the final
// output bytes, markdown by default or an HTML page with -html.
func (a *app) render(stdin io.Reader, file string) ([]byte, error) {
	return a.renderMode(stdin, file, a.html)
}

func (a *app) renderMode(stdin io.Reader, file string, asHTML bool) ([]byte, error) {
	var (
		src []byte
		err error
	)
	if file == "-" {
		src, err = io.ReadAll(stdin)
	} else {
		src, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, err
	}

	doc := extract.Extract(string(src))
	if a.wrap > 0 {
		doc = wordwrap.String(doc, a.wrap)
	}
	if !asHTML {
		return []byte(doc + "\n"), nil
	}
	return a.renderHTML(doc, file), nil
}

func (a *app) renderHTML(doc, file string) []byte {
	d := parser().Parse(doc)
	return []byte(fmt.Sprintf(tmpl, html.EscapeString(a.pageTitle(doc, file)), markdown.ToHTML(d)))
}

// pageTitle picks the HTML page title: the -title flag, the document's
// first heading, or the source file's display name.
func (a *app) pageTitle(doc, file string) string {
	if a.title != "" {
		return a.title
	}
	s := bufio.NewScanner(strings.NewReader(doc))
	for s.Scan() {
		if strings.HasPrefix(s.Text(), "#") {
			return strings.TrimSpace(strings.TrimLeft(s.Text(), "#"))
		}
	}
	if file == "-" {
		return "stdin"
	}
	return filepath.Base(file)
}

// serve runs the live preview server, re-rendering the file on every
// request.
func (a *app) serve(ctx context.Context, file string) error {
	env := cli.GetEnv(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			web.RespondError(env.Logf, w, web.ErrNotFound)
			return
		}

		out, err := a.renderMode(nil, file, true)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				web.RespondError(env.Logf, w, fmt.Errorf("%s: %w", file, web.ErrNotFound))
				return
			}
			web.RespondError(env.Logf, w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(out)
	})

	env.Logf("Previewing %s.", file)

	return web.ListenAndServe(ctx, &web.ListenAndServeConfig{
		Addr: a.addr,
		Mux:  mux,
		Logf: env.Logf,
	})
}
