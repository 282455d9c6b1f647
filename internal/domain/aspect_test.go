package domain

import "testing"

func TestAspectRatiosOrderAndSizes(t *testing.T) {
	want := []struct {
		ratio   AspectRatio
		display string
		size    Size
	}{
		{AspectSquare, "1:1", Size{1024, 1024}},
		{AspectStory, "9:16", Size{576, 1024}},
		{AspectLandscape, "16:9", Size{1024, 576}},
	}
	got := AspectRatios()
	if len(got) != len(want) {
		t.Fatalf("ratio count = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w.ratio {
			t.Fatalf("ratio[%d] = %q, want %q", i, got[i], w.ratio)
		}
		if got[i].Display() != w.display {
			t.Fatalf("display(%s) = %q, want %q", w.ratio, got[i].Display(), w.display)
		}
		if got[i].Size() != w.size {
			t.Fatalf("size(%s) = %+v, want %+v", w.ratio, got[i].Size(), w.size)
		}
	}
}

func TestUnknownAspectRatioFallsBack(t *testing.T) {
	r := AspectRatio("4x5")
	if r.Display() != "4x5" {
		t.Fatalf("display = %q, want 4x5", r.Display())
	}
	if r.Size() != (Size{1024, 1024}) {
		t.Fatalf("size = %+v, want 1024x1024", r.Size())
	}
}

func TestBriefPlaceholders(t *testing.T) {
	var b Brief
	if b.ProductKey() != DefaultProduct {
		t.Fatalf("product key = %q, want %q", b.ProductKey(), DefaultProduct)
	}
	if b.Audience() != "general audience" {
		t.Fatalf("audience = %q", b.Audience())
	}
	if b.Region() != "global" {
		t.Fatalf("region = %q", b.Region())
	}

	b = Brief{Product: "shoe_x", TargetAudience: "runners", TargetRegion: "US"}
	if b.ProductKey() != "shoe_x" || b.Audience() != "runners" || b.Region() != "US" {
		t.Fatalf("unexpected accessors: %q %q %q", b.ProductKey(), b.Audience(), b.Region())
	}
}
