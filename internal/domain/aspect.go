package domain

// AspectRatio is the directory label of an output shape, e.g. "9x16".
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1x1"
	AspectStory     AspectRatio = "9x16"
	AspectLandscape AspectRatio = "16x9"
)

// Size is a target pixel resolution.
type Size struct {
	Width  int
	Height int
}

var aspectSizes = map[AspectRatio]Size{
	AspectSquare:    {Width: 1024, Height: 1024}, // feed posts
	AspectStory:     {Width: 576, Height: 1024},  // stories
	AspectLandscape: {Width: 1024, Height: 576},  // display ads
}

var aspectDisplay = map[AspectRatio]string{
	AspectSquare:    "1:1",
	AspectStory:     "9:16",
	AspectLandscape: "16:9",
}

// AspectRatios returns the fixed processing order of output shapes.
func AspectRatios() []AspectRatio {
	return []AspectRatio{AspectSquare, AspectStory, AspectLandscape}
}

// Size returns the target resolution; unknown labels resolve to a square.
func (a AspectRatio) Size() Size {
	if s, ok := aspectSizes[a]; ok {
		return s
	}
	return Size{Width: 1024, Height: 1024}
}

// Display returns the colon form used in prompts and summaries.
func (a AspectRatio) Display() string {
	if d, ok := aspectDisplay[a]; ok {
		return d
	}
	return string(a)
}

func (a AspectRatio) String() string {
	return string(a)
}
