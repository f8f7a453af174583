// Package report turns a resolved dependency list into the tool's output:
// a small enriched model rendered as human-readable text or JSON. It never
// reorders or deduplicates the list; output order is the declaration order
// the parser guarantees.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Format selects the rendering of a report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}

// Category is a coarse classification of a dependency, inferred from its
// name alone.
type Category string

const (
	CategorySystem  Category = "system"
	CategoryLibrary Category = "library"
)

// Library is one declared dependency. Name is the exact string from the
// binary's string table; BaseName and Version are a best-effort split of
// the common "libfoo.so.N" versioning pattern (Version is empty when the
// name carries none).
type Library struct {
	Name     string   `json:"name"`
	BaseName string   `json:"base_name"`
	Version  string   `json:"version,omitempty"`
	Category Category `json:"category"`
}

// Report is the complete result for one binary.
type Report struct {
	BinaryPath       string    `json:"binary_path"`
	Libraries        []Library `json:"libraries"`
	Count            int       `json:"count"`
	StaticallyLinked bool      `json:"statically_linked"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// New builds a report from the ordered name list the parser produced. A
// nil list marks the binary as statically linked; an empty one means a
// dynamic object that declares nothing.
func New(binaryPath string, names []string) Report {
	r := Report{
		BinaryPath:       binaryPath,
		Libraries:        make([]Library, 0, len(names)),
		Count:            len(names),
		StaticallyLinked: names == nil,
		GeneratedAt:      time.Now().UTC(),
	}
	for _, name := range names {
		r.Libraries = append(r.Libraries, describeLibrary(name))
	}
	return r
}

// baseSystemLibraries are the sonames whose presence says "base system",
// not "third-party dependency".
var baseSystemLibraries = map[string]bool{
	"libc.so":            true,
	"libm.so":            true,
	"libdl.so":           true,
	"librt.so":           true,
	"libpthread.so":      true,
	"libresolv.so":       true,
	"libutil.so":         true,
	"ld-linux-x86-64.so": true,
}

func describeLibrary(name string) Library {
	lib := Library{
		Name:     name,
		BaseName: name,
		Category: CategoryLibrary,
	}

	// Split the "libfoo.so.1.2" pattern into soname base and version.
	if idx := strings.Index(name, ".so."); idx >= 0 {
		lib.BaseName = name[:idx+len(".so")]
		lib.Version = name[idx+len(".so."):]
	}
	if baseSystemLibraries[lib.BaseName] {
		lib.Category = CategorySystem
	}
	return lib
}

// Render writes the report to w in the requested format.
func (r Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		return r.renderJSON(w)
	case FormatText:
		return r.renderText(w)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func (r Report) renderJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r)
}

func (r Report) renderText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s:\n", r.BinaryPath); err != nil {
		return err
	}
	if r.StaticallyLinked {
		_, err := fmt.Fprintln(w, "\tstatically linked")
		return err
	}
	if r.Count == 0 {
		_, err := fmt.Fprintln(w, "\tno shared library dependencies")
		return err
	}
	for _, lib := range r.Libraries {
		if _, err := fmt.Fprintf(w, "\t%s\n", lib.Name); err != nil {
			return err
		}
	}
	return nil
}
