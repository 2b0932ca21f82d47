/*
render provides debug visualization of the TTC pipeline's intermediate
state using gocv.  It is not part of the estimation core.
*/
package render

import (
	"fmt"
	"image"

	"github.com/edgefuse/go-camttc"
	"gocv.io/x/gocv"
)

// markerSpacing is the gap between distance marker lines in the range
// sensor's distance units
const markerSpacing = 2.0

// TopView renders a bird's-eye view of the clustered range points of each
// region.  worldWidth and worldHeight are the extents of the plotted area
// in sensor distance units (x forward up the image, y left), imgSize the
// pixel size of the output image.  Each region's points are drawn in a
// stable per-region color with an enclosing rectangle and an annotation of
// the region ID, point count and closest forward distance.
//
// The caller owns the returned Mat and must Close it
func TopView(regions []*camttc.Region, worldWidth, worldHeight float64,
	imgSize image.Point) gocv.Mat {

	img := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(255, 255, 255, 255),
		imgSize.Y, imgSize.X, gocv.MatTypeCV8UC3)

	for _, region := range regions {

		if len(region.Points) == 0 {
			continue
		}

		useClr := colorForRegion(region.ID)

		// plot each range point and track the enclosing rectangle and
		// world extents while doing so
		top, left := imgSize.Y, imgSize.X
		bottom, right := 0, 0
		xwMin := region.Points[0].Pos.X
		ywMin := region.Points[0].Pos.Y
		ywMax := region.Points[0].Pos.Y

		for _, pt := range region.Points {

			xw := pt.Pos.X
			yw := pt.Pos.Y

			if xw < xwMin {
				xwMin = xw
			}

			if yw < ywMin {
				ywMin = yw
			}

			if yw > ywMax {
				ywMax = yw
			}

			x, y := topViewPixel(xw, yw, worldWidth, worldHeight, imgSize)

			if y < top {
				top = y
			}

			if x < left {
				left = x
			}

			if y > bottom {
				bottom = y
			}

			if x > right {
				right = x
			}

			gocv.Circle(&img, image.Pt(x, y), 4, useClr, -1)
		}

		// enclosing rectangle
		gocv.Rectangle(&img, image.Rect(left, top, right, bottom),
			outlineColor, 2)

		// annotate with region key data
		text1 := fmt.Sprintf("id=%d, #pts=%d", region.ID, len(region.Points))
		gocv.PutText(&img, text1, image.Pt(left, bottom+20),
			gocv.FontHersheyPlain, 1.2, useClr, 1)

		text2 := fmt.Sprintf("xmin=%.2f, yw=%.2f", xwMin, ywMax-ywMin)
		gocv.PutText(&img, text2, image.Pt(left, bottom+40),
			gocv.FontHersheyPlain, 1.2, useClr, 1)
	}

	// plot distance markers
	nMarkers := int(worldHeight / markerSpacing)

	for i := 0; i < nMarkers; i++ {
		_, y := topViewPixel(float64(i)*markerSpacing, 0, worldWidth,
			worldHeight, imgSize)
		gocv.Line(&img, image.Pt(0, y), image.Pt(imgSize.X, y),
			markerColor, 1)
	}

	return img
}

// topViewPixel maps sensor world coordinates (x forward, y left) to top
// view pixel coordinates with the sensor at the bottom center
func topViewPixel(xw, yw, worldWidth, worldHeight float64,
	imgSize image.Point) (x, y int) {

	y = int(-xw*float64(imgSize.Y)/worldHeight) + imgSize.Y
	x = int(-yw*float64(imgSize.X)/worldWidth) + imgSize.X/2

	return x, y
}
