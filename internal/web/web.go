// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package web contains what's needed to serve the documentation preview
// over HTTP.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.astrophena.name/srcdoc/internal/logger"
)

// StatusErr is a sentinel error type used to represent HTTP status code errors.
type StatusErr int

// Error implements the error interface.
// It returns a lowercase representation of the HTTP status text for the wrapped code.
func (se StatusErr) Error() string { return strings.ToLower(http.StatusText(int(se))) }

const (
	// ErrBadRequest represents a bad request error (HTTP 400).
	ErrBadRequest StatusErr = http.StatusBadRequest
	// ErrNotFound represents a not found error (HTTP 404).
	ErrNotFound StatusErr = http.StatusNotFound
	// ErrMethodNotAllowed represents a method not allowed error (HTTP 405).
	ErrMethodNotAllowed StatusErr = http.StatusMethodNotAllowed
	// ErrInternalServerError represents an internal server error (HTTP 500).
	ErrInternalServerError StatusErr = http.StatusInternalServerError
)

const errorTmpl = `<!doctype html>
<meta charset="utf-8">
<title>%d %s</title>
<h1>%d %s</h1>
`

// RespondError writes an error response in HTML format to w and logs it
// using logf if it's an internal server error.
//
// If the error is a [StatusErr] or wraps it, the HTTP status code is taken
// from it; otherwise the response is an internal server error.
//
// You can wrap any error with [fmt.Errorf] to set a specific status code:
//
//	// This will set the status code to 404 (Not Found).
//	web.RespondError(logf, w, fmt.Errorf("resource %w", web.ErrNotFound))
func RespondError(logf logger.Logf, w http.ResponseWriter, err error) {
	var se StatusErr
	if !errors.As(err, &se) {
		se = ErrInternalServerError
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(int(se))
	if se == ErrInternalServerError {
		logf("Error %d (%s): %v", int(se), http.StatusText(int(se)), err)
	}
	fmt.Fprintf(w, errorTmpl, int(se), http.StatusText(int(se)), int(se), http.StatusText(int(se)))
}
