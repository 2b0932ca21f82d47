package camttc

// ClusterRangePoints assigns range sensor returns to the detected regions
// whose rectangle encloses their camera projection, appending each assigned
// point to that region's Points collection.
//
// Each region rectangle is shrunk symmetrically by shrinkFactor before the
// containment test to keep outlier returns near the box edges out of the
// cluster.  A point is assigned only when exactly one shrunk rectangle
// encloses its projection, points enclosed by zero or several regions are
// discarded since they carry no unambiguous object assignment.  Points that
// project behind the camera plane are dropped
func ClusterRangePoints(regions []*Region, points []RangePoint,
	shrinkFactor float32, calib *Calibration) {

	for _, pt := range points {

		u, v, ok := calib.Project(pt)

		if !ok {
			continue
		}

		// collect every region whose shrunk rectangle encloses the
		// projected pixel
		var enclosing []*Region

		for _, region := range regions {

			smaller := region.Rect.Shrink(shrinkFactor)

			if smaller.Contains(u, v) {
				enclosing = append(enclosing, region)
			}
		}

		// assign on unique enclosure only
		if len(enclosing) == 1 {
			enclosing[0].Points = append(enclosing[0].Points, pt)
		}
	}
}
