package prompt

import (
	"strings"
	"testing"

	"creativegen/internal/domain"
)

func TestStyleIndexCycles(t *testing.T) {
	for v := 1; v <= 12; v++ {
		if got, want := StyleIndex(v), (v-1)%3; got != want {
			t.Fatalf("StyleIndex(%d) = %d, want %d", v, got, want)
		}
	}
	if StyleCue(4) != VariantStyles[0] || StyleCue(5) != VariantStyles[1] || StyleCue(6) != VariantStyles[2] {
		t.Fatalf("style cues do not cycle past the third variant")
	}
	if got := StyleIndex(0); got != 2 {
		t.Fatalf("StyleIndex(0) = %d, want 2", got)
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"shoe_x":           "Shoe X",
		"eco_water_BOTTLE": "Eco Water Bottle",
		"":                 "",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Fatalf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildContainsBriefFields(t *testing.T) {
	b := domain.Brief{
		Product:         "shoe_x",
		TargetAudience:  "runners",
		CampaignMessage: "Run faster",
		TargetRegion:    "US",
		KeyFeatures:     []string{"lightweight", "breathable", "durable"},
	}

	for _, ratio := range domain.AspectRatios() {
		got := Build(b, ratio, 2)
		checks := []string{
			"Shoe X",
			"Target audience: runners",
			"Message: Run faster",
			"Market: US",
			"Style: " + VariantStyles[1],
			"Suitable for " + ratio.Display() + " social media format",
			"Key features to highlight: lightweight, breathable",
		}
		for _, expect := range checks {
			if !strings.Contains(got, expect) {
				t.Fatalf("prompt for %s missing %q:\n%s", ratio, expect, got)
			}
		}
		if strings.Contains(got, "durable") {
			t.Fatalf("prompt should only highlight the first two features:\n%s", got)
		}
	}
}

func TestBuildDefaultsAndFeatureToggle(t *testing.T) {
	b := domain.Brief{Product: "lamp", KeyFeatures: []string{"dimmable"}}

	got := Builder{IncludeFeatures: false}.Build(b, domain.AspectLandscape, 1)
	if strings.Contains(got, "Key features") {
		t.Fatalf("features should be omitted when disabled:\n%s", got)
	}
	for _, expect := range []string{"Lamp", "Target audience: general audience", "Market: global", "16:9"} {
		if !strings.Contains(got, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, got)
		}
	}

	if got := Build(domain.Brief{Product: "lamp"}, domain.AspectSquare, 1); strings.Contains(got, "Key features") {
		t.Fatalf("features line should be absent without features:\n%s", got)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	b := domain.Brief{Product: "shoe_x", TargetAudience: "runners"}
	if Build(b, domain.AspectStory, 3) != Build(b, domain.AspectStory, 3) {
		t.Fatalf("prompt builder must be deterministic")
	}
}
