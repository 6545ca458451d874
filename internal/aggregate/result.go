package aggregate

// Result holds the counters produced by one finished pass. Counters a mode
// does not compute stay zero.
type Result struct {
	Path       string   `json:"path,omitempty"`
	Mode       ModeKind `json:"mode"`
	Target     string   `json:"target,omitempty"`
	MatchCount int      `json:"match_count"`
	TotalWords int      `json:"total_words"`
	TotalChars int      `json:"total_chars"`
	TotalLines int      `json:"total_lines"`
}

// Add returns the counter-wise sum of r and other. Path is cleared because the
// sum no longer describes one source.
func (r Result) Add(other Result) Result {
	return Result{
		Mode:       r.Mode,
		Target:     r.Target,
		MatchCount: r.MatchCount + other.MatchCount,
		TotalWords: r.TotalWords + other.TotalWords,
		TotalChars: r.TotalChars + other.TotalChars,
		TotalLines: r.TotalLines + other.TotalLines,
	}
}

// Sum folds results with Add. The zero Result is returned for no input.
func Sum(results []Result) Result {
	var total Result
	for i, r := range results {
		if i == 0 {
			total.Mode = r.Mode
			total.Target = r.Target
		}
		total = total.Add(r)
	}
	return total
}
