package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"strconv"

	"github.com/edgefuse/go-camttc"
	"github.com/edgefuse/go-camttc/render"
	"gocv.io/x/gocv"
)

// detection is the JSON schema of one external detector result.  ID may be
// omitted for detectors without identifiers of their own, in which case one
// is generated
type detection struct {
	ID     *int    `json:"id,omitempty"`
	Left   int     `json:"left"`
	Top    int     `json:"top"`
	Right  int     `json:"right"`
	Bottom int     `json:"bottom"`
	Label  int     `json:"label"`
	Prob   float32 `json:"prob"`
}

func main() {

	// read in cli flags
	prevImg := flag.String("previmg", "prev.png", "Previous camera frame image file")
	currImg := flag.String("currimg", "curr.png", "Current camera frame image file")
	prevCloud := flag.String("prevcloud", "prev.csv", "Previous frame range point CSV file (x,y,z,reflectivity)")
	currCloud := flag.String("currcloud", "curr.csv", "Current frame range point CSV file (x,y,z,reflectivity)")
	prevDet := flag.String("prevdet", "prev.json", "Previous frame detections JSON file")
	currDet := flag.String("currdet", "curr.json", "Current frame detections JSON file")
	calibFile := flag.String("calib", "calib.json", "Calibration matrices JSON file")
	paramsFile := flag.String("params", "", "Optional tuning params JSON file")
	frameRate := flag.Float64("rate", 10, "Sensor frame rate in frames per second")
	topview := flag.String("topview", "", "Optional output image file of the current frame top view")

	flag.Parse()

	calib, err := camttc.LoadCalibration(*calibFile)

	if err != nil {
		log.Fatalf("Error loading calibration: %v", err)
	}

	params := camttc.DefaultParams()

	if *paramsFile != "" {
		params, err = camttc.LoadParams(*paramsFile)

		if err != nil {
			log.Fatalf("Error loading params: %v", err)
		}
	}

	prev, prevDesc, err := loadFrame(0, *prevImg, *prevCloud, *prevDet)

	if err != nil {
		log.Fatalf("Error loading previous frame: %v", err)
	}

	defer prevDesc.Close()

	curr, currDesc, err := loadFrame(1, *currImg, *currCloud, *currDet)

	if err != nil {
		log.Fatalf("Error loading current frame: %v", err)
	}

	defer currDesc.Close()

	// match descriptors between the two frames, the previous frame is the
	// query set and the current frame the train set
	matcher := gocv.NewBFMatcherWithParams(gocv.NormHamming, true)
	defer matcher.Close()

	matches := camttc.CorrespondencesFromOCV(matcher.Match(prevDesc, currDesc))

	log.Printf("Matched %d keypoint correspondences", len(matches))

	proc, err := camttc.NewProcessor(calib, *frameRate, params)

	if err != nil {
		log.Fatalf("Error creating processor: %v", err)
	}

	results := proc.ProcessFramePair(prev, curr, matches)

	for _, res := range results {
		fmt.Printf("region %d <- %d (votes=%d, iou=%.2f): TTC range=%.3fs, camera=%.3fs\n",
			res.CurrID, res.PrevID, res.Votes, res.IoU, res.TTCRange, res.TTCCamera)
	}

	if *topview != "" {

		img := render.TopView(curr.Regions, 10, 20, image.Pt(1000, 2000))
		defer img.Close()

		if ok := gocv.IMWrite(*topview, img); !ok {
			log.Fatalf("Error writing top view image to %s", *topview)
		}

		log.Printf("Wrote top view to %s", *topview)
	}
}

// loadFrame reads one frame's image, range point cloud and detections, runs
// ORB keypoint detection on the image and returns the assembled frame along
// with the keypoint descriptors for matching
func loadFrame(index int, imgFile, cloudFile, detFile string) (*camttc.Frame, gocv.Mat, error) {

	img := gocv.IMRead(imgFile, gocv.IMReadGrayScale)
	defer img.Close()

	if img.Empty() {
		return nil, gocv.Mat{}, fmt.Errorf("failed to read image %s", imgFile)
	}

	orb := gocv.NewORB()
	defer orb.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	kpts, desc := orb.DetectAndCompute(img, mask)

	points, err := loadCloud(cloudFile)

	if err != nil {
		desc.Close()
		return nil, gocv.Mat{}, err
	}

	regions, err := loadDetections(detFile)

	if err != nil {
		desc.Close()
		return nil, gocv.Mat{}, err
	}

	frame := &camttc.Frame{
		Index:     index,
		Keypoints: camttc.KeypointsFromOCV(kpts),
		Regions:   regions,
		Points:    points,
	}

	return frame, desc, nil
}

// loadCloud reads range points from a CSV file with one x,y,z,reflectivity
// record per line
func loadCloud(path string) ([]camttc.RangePoint, error) {

	f, err := os.Open(path)

	if err != nil {
		return nil, fmt.Errorf("failed to open cloud file: %w", err)
	}

	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()

	if err != nil {
		return nil, fmt.Errorf("failed to parse cloud file: %w", err)
	}

	var points []camttc.RangePoint

	for i, rec := range records {

		if len(rec) != 4 {
			return nil, fmt.Errorf("cloud record %d needs 4 fields, got %d", i, len(rec))
		}

		var vals [4]float64

		for j, field := range rec {
			vals[j], err = strconv.ParseFloat(field, 64)

			if err != nil {
				return nil, fmt.Errorf("cloud record %d field %d: %w", i, j, err)
			}
		}

		points = append(points,
			camttc.NewRangePoint(vals[0], vals[1], vals[2], vals[3]))
	}

	return points, nil
}

// loadDetections reads the external detector's regions from a JSON file
func loadDetections(path string) ([]*camttc.Region, error) {

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("failed to read detections file: %w", err)
	}

	var dets []detection

	if err := json.Unmarshal(data, &dets); err != nil {
		return nil, fmt.Errorf("failed to parse detections file: %w", err)
	}

	var regions []*camttc.Region

	gen := camttc.NewRegionIDGenerator()

	for _, det := range dets {

		id := gen.GetNext()

		if det.ID != nil {
			id = *det.ID
		}

		regions = append(regions, camttc.RegionFromRect(id,
			image.Rect(det.Left, det.Top, det.Right, det.Bottom),
			det.Label, det.Prob))
	}

	return regions, nil
}
