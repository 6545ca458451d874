package merge

// SourceReport counts the lines copied from one source. Skipped sources that
// failed mid-file still report the lines gathered before the failure.
type SourceReport struct {
	Path  string `json:"path"`
	Lines int    `json:"lines"`
}

// Skip records a source the best-effort policy could not fully read.
type Skip struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// Report describes a finished merge.
type Report struct {
	Destination string         `json:"destination"`
	Policy      Policy         `json:"policy"`
	Sources     []SourceReport `json:"sources"`
	Skipped     []Skip         `json:"skipped,omitempty"`
	Lines       int            `json:"lines"`
	Bytes       int            `json:"bytes"`
}

// Partial reports whether any source was skipped.
func (r Report) Partial() bool {
	return len(r.Skipped) > 0
}

// SourcePaths lists the merged sources in order.
func (r Report) SourcePaths() []string {
	paths := make([]string, 0, len(r.Sources))
	for _, src := range r.Sources {
		paths = append(paths, src.Path)
	}
	return paths
}
