/*
go-camttc estimates time-to-collision (TTC) for objects ahead of a moving
sensor platform by fusing 3D range sensor returns with 2D keypoint tracking
across consecutive camera frames.

The package operates on one frame pair at a time.  Range points are projected
into the image and clustered into detected object regions, keypoint
correspondences are filtered per region and used to vote on region identity
between the previous and current frame, and two independent TTC estimates are
produced per associated region pair: one from in-lane range distances and one
from the relative scale change of keypoint constellations.

Object detection, keypoint extraction/matching and camera calibration are
external collaborators.  Adapters for OpenCV (gocv) keypoints, matches and
rectangles are provided in convert.go.

See example code and usage in the example subdirectory.
*/
package camttc
