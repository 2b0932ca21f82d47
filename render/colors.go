package render

import "image/color"

var (
	// regionColors is a list of distinct colors used to paint each
	// region's range points in the top view
	regionColors = []color.RGBA{
		{R: 255, G: 56, B: 56, A: 255},   // #FF3838
		{R: 255, G: 178, B: 29, A: 255},  // #FFB21D
		{R: 72, G: 249, B: 10, A: 255},   // #48F90A
		{R: 26, G: 147, B: 52, A: 255},   // #1A9334
		{R: 0, G: 212, B: 187, A: 255},   // #00D4BB
		{R: 0, G: 194, B: 255, A: 255},   // #00C2FF
		{R: 52, G: 69, B: 147, A: 255},   // #344593
		{R: 132, G: 56, B: 255, A: 255},  // #8438FF
		{R: 255, G: 55, B: 199, A: 255},  // #FF37C7
		{R: 44, G: 153, B: 168, A: 255},  // #2C99A8
		{R: 61, G: 219, B: 134, A: 255},  // #3DDB86
		{R: 146, G: 204, B: 23, A: 255},  // #92CC17
	}

	// markerColor is the color of the distance marker lines
	markerColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// outlineColor is the color of the enclosing rectangles
	outlineColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// colorForRegion picks a stable color for a region by its ID
func colorForRegion(id int) color.RGBA {

	if id < 0 {
		id = -id
	}

	return regionColors[id%len(regionColors)]
}
