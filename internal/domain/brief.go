package domain

import "strings"

// DefaultProduct names the output directory when a brief omits its product.
const DefaultProduct = "unknown_product"

// Brief is the campaign description a run is generated from. Every key is
// optional; accessors supply the placeholders used in prompts and paths.
type Brief struct {
	Product         string   `json:"product" yaml:"product"`
	TargetAudience  string   `json:"target_audience" yaml:"target_audience"`
	CampaignMessage string   `json:"campaign_message" yaml:"campaign_message"`
	TargetRegion    string   `json:"target_region" yaml:"target_region"`
	KeyFeatures     []string `json:"key_features" yaml:"key_features"`
}

// ProductKey returns the product identifier used for directories and file names.
func (b Brief) ProductKey() string {
	if p := strings.TrimSpace(b.Product); p != "" {
		return p
	}
	return DefaultProduct
}

// Audience returns the target audience, falling back to a generic audience.
func (b Brief) Audience() string {
	if a := strings.TrimSpace(b.TargetAudience); a != "" {
		return b.TargetAudience
	}
	return "general audience"
}

// Region returns the target market, falling back to "global".
func (b Brief) Region() string {
	if r := strings.TrimSpace(b.TargetRegion); r != "" {
		return b.TargetRegion
	}
	return "global"
}
