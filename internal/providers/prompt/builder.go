package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"creativegen/internal/domain"
)

// VariantStyles are cycled across variants so each one reads differently.
var VariantStyles = []string{
	"lifestyle shot with natural lighting",
	"close-up product detail with premium aesthetic",
	"environmental context showing product in use",
}

var visualRequirements = []string{
	"Product prominently displayed and clearly visible",
	"Professional studio-quality lighting",
	"Clean, modern composition",
	"Brand-appropriate colors and aesthetic",
	"High-quality, photo-realistic rendering",
}

// maxHighlightedFeatures caps how many key features make it into a prompt.
const maxHighlightedFeatures = 2

// Builder renders image prompts from a campaign brief.
type Builder struct {
	IncludeFeatures bool
}

// NewBuilder returns a Builder that highlights key features.
func NewBuilder() Builder {
	return Builder{IncludeFeatures: true}
}

// Build renders a prompt with the default builder.
func Build(b domain.Brief, ratio domain.AspectRatio, variant int) string {
	return NewBuilder().Build(b, ratio, variant)
}

// StyleIndex maps a 1-based variant number onto VariantStyles.
func StyleIndex(variant int) int {
	n := len(VariantStyles)
	return ((variant-1)%n + n) % n
}

// StyleCue returns the style description for a 1-based variant number.
func StyleCue(variant int) string {
	return VariantStyles[StyleIndex(variant)]
}

// DisplayName turns a product key such as "shoe_x" into "Shoe X".
func DisplayName(product string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(product, "_", " "))
}

// Build renders the prompt for one variant of one aspect ratio.
func (pb Builder) Build(b domain.Brief, ratio domain.AspectRatio, variant int) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Create a professional marketing photograph for %s.\n\n", DisplayName(b.Product))
	fmt.Fprintf(sb, "Style: %s\n", StyleCue(variant))
	fmt.Fprintf(sb, "Target audience: %s\n", b.Audience())
	fmt.Fprintf(sb, "Message: %s\n", b.CampaignMessage)
	fmt.Fprintf(sb, "Market: %s\n\n", b.Region())

	sb.WriteString("Visual requirements:\n")
	for _, req := range visualRequirements {
		fmt.Fprintf(sb, "- %s\n", req)
	}
	fmt.Fprintf(sb, "- Suitable for %s social media format\n\n", ratio.Display())

	if pb.IncludeFeatures && len(b.KeyFeatures) > 0 {
		features := b.KeyFeatures
		if len(features) > maxHighlightedFeatures {
			features = features[:maxHighlightedFeatures]
		}
		fmt.Fprintf(sb, "Key features to highlight: %s\n\n", strings.Join(features, ", "))
	}

	sb.WriteString("Create an eye-catching, professional marketing image that would perform well in social media advertising.")
	return sb.String()
}
