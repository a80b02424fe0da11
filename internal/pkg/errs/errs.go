// Package errs is the thin error layer the rest of the codebase goes through
// instead of importing cockroachdb/errors directly. Sentinel matching uses
// Mark so wrapped errors stay matchable with errors.Is.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap annotates err with msg, keeping the original chain. Nil in, nil out.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

// Mark attaches markErr as a sentinel so Is(err, markErr) holds while err's
// own message and stack survive. With a nil err the sentinel itself is
// returned.
func Mark(err, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is matches sentinels through both wrap chains and marks. Marked sentinels
// are invisible to the standard library's errors.Is, so every sentinel check
// in this codebase goes through here.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders the verbose form of err and returns at most
// maxLines lines of it, for structured log fields.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
