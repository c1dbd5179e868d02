// Package report summarizes which components a build loaded, from where, and at which revision.
package report

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/mrdocs/mrdocs/internal/component"
	"github.com/mrdocs/mrdocs/internal/loader"
)

const shortRevisionLength = 6

// Entry describes one loaded component.
type Entry struct {
	Revision string
	Path     string
	Dirty    bool
}

// String renders the entry as `abc123 path (DIRTY)`.
func (e Entry) String() string {
	s := e.Revision + " " + e.Path
	if e.Dirty {
		s += " (DIRTY)"
	}

	return s
}

// Group holds the components whose repositories live in the same lookup directory.
type Group struct {
	Dir     string
	Entries []Entry
}

// Report is the build summary.
type Report struct {
	BuildID     string
	ConfigPath  string
	OutputDir   string
	LookupPaths []string
	Groups      []*Group
	Missing     []string
	Total       int
}

// New groups the loaded components by the parent directory of their repository,
// in first-seen order.
func New(result *loader.LoadResult, configPath string, lookupPaths []string, outputDir string) *Report {
	r := &Report{
		ConfigPath:  configPath,
		LookupPaths: lookupPaths,
		OutputDir:   outputDir,
		Missing:     result.MissingNames(),
		Total:       len(result.All),
	}

	for _, comp := range result.Loaded {
		r.add(filepath.Dir(comp.RepositoryDir), Entry{
			Revision: ShortRevision(comp.GitRevision),
			Path:     comp.Spec.Path,
			Dirty:    comp.GitDirty,
		})
	}

	return r
}

func (r *Report) add(dir string, entry Entry) {
	for _, group := range r.Groups {
		if group.Dir == dir {
			group.Entries = append(group.Entries, entry)
			return
		}
	}

	r.Groups = append(r.Groups, &Group{Dir: dir, Entries: []Entry{entry}})
}

// Loaded returns the number of loaded components.
func (r *Report) Loaded() int {
	n := 0

	for _, group := range r.Groups {
		n += len(group.Entries)
	}

	return n
}

// ShortRevision abbreviates a commit hash. Unknown revisions are kept as is.
func ShortRevision(revision string) string {
	if revision == component.Unknown || len(revision) <= shortRevisionLength {
		return revision
	}

	return revision[:shortRevisionLength]
}

type jsonReport struct {
	LoadedComponents map[string][]string `json:"loaded_components"`
	BuildID          string              `json:"build_id,omitempty"`
	Config           string              `json:"config"`
	BuildOutput      string              `json:"build_output,omitempty"`
	Path             []string            `json:"path"`
	Missing          []string            `json:"missing"`
}

// MarshalJSON renders the report keyed by repository directory.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := jsonReport{
		BuildID:          r.BuildID,
		Config:           r.ConfigPath,
		BuildOutput:      r.OutputDir,
		Path:             r.LookupPaths,
		Missing:          r.Missing,
		LoadedComponents: make(map[string][]string, len(r.Groups)),
	}

	if out.Missing == nil {
		out.Missing = []string{}
	}

	if out.Path == nil {
		out.Path = []string{}
	}

	for _, group := range r.Groups {
		for _, entry := range group.Entries {
			out.LoadedComponents[group.Dir] = append(out.LoadedComponents[group.Dir], entry.String())
		}
	}

	return json.Marshal(out)
}

// WriteJSON writes the indented JSON report.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")

	return encoder.Encode(r)
}
