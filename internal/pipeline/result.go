package pipeline

// RatioAssets lists the asset paths recorded for one aspect ratio.
type RatioAssets struct {
	Label   string   `json:"aspect_ratio"`
	Paths   []string `json:"paths"`
	Skipped bool     `json:"skipped,omitempty"`
}

// Result maps display aspect-ratio labels to asset paths, in processing order.
type Result struct {
	Ratios []RatioAssets `json:"results"`
}

func (r *Result) add(label string, paths []string, skipped bool) {
	if paths == nil {
		paths = []string{}
	}
	r.Ratios = append(r.Ratios, RatioAssets{Label: label, Paths: paths, Skipped: skipped})
}

// Labels returns the display labels in processing order.
func (r Result) Labels() []string {
	out := make([]string, 0, len(r.Ratios))
	for _, ra := range r.Ratios {
		out = append(out, ra.Label)
	}
	return out
}

// Paths returns the asset paths recorded for label.
func (r Result) Paths(label string) []string {
	for _, ra := range r.Ratios {
		if ra.Label == label {
			return ra.Paths
		}
	}
	return nil
}

// Total counts every recorded asset.
func (r Result) Total() int {
	n := 0
	for _, ra := range r.Ratios {
		n += len(ra.Paths)
	}
	return n
}

// AllPaths flattens the result in processing order.
func (r Result) AllPaths() []string {
	out := make([]string, 0, r.Total())
	for _, ra := range r.Ratios {
		out = append(out, ra.Paths...)
	}
	return out
}
