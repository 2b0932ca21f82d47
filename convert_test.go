package camttc

import (
	"image"
	"sync"
	"testing"
)

func TestRegionFromRect(t *testing.T) {

	region := RegionFromRect(5, image.Rect(100, 50, 300, 150), 2, 0.9)

	if region.ID != 5 || region.Label != 2 || region.Prob != 0.9 {
		t.Errorf("region meta = (%d, %d, %v), want (5, 2, 0.9)",
			region.ID, region.Label, region.Prob)
	}

	r := region.Rect

	if r.X() != 100 || r.Y() != 50 || r.Width() != 200 || r.Height() != 100 {
		t.Errorf("region rect = %v, want (100, 50, 200, 100)", r.Tlwh)
	}
}

func TestRegionsFromRects(t *testing.T) {

	rects := []image.Rectangle{
		image.Rect(0, 0, 100, 100),
		image.Rect(200, 0, 300, 100),
		image.Rect(0, 200, 100, 300),
	}

	regions := RegionsFromRects(rects, 2, 0.8, NewRegionIDGenerator())

	if len(regions) != len(rects) {
		t.Fatalf("got %d regions, want %d", len(regions), len(rects))
	}

	// generated IDs are unique within the frame
	seen := make(map[int]bool)

	for i, region := range regions {

		if seen[region.ID] {
			t.Errorf("region %d reuses ID %d", i, region.ID)
		}

		seen[region.ID] = true

		if region.Rect.X() != float32(rects[i].Min.X) ||
			region.Rect.Y() != float32(rects[i].Min.Y) {
			t.Errorf("region %d rect origin = (%v, %v), want (%d, %d)",
				i, region.Rect.X(), region.Rect.Y(),
				rects[i].Min.X, rects[i].Min.Y)
		}
	}
}

func TestRegionIDGeneratorConcurrent(t *testing.T) {

	const (
		workers    = 8
		perWorker  = 200
		totalCount = workers * perWorker
	)

	gen := NewRegionIDGenerator()

	var wg sync.WaitGroup
	ids := make(chan int, totalCount)

	for w := 0; w < workers; w++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := 0; i < perWorker; i++ {
				ids <- gen.GetNext()
			}
		}()
	}

	wg.Wait()
	close(ids)

	seen := make(map[int]bool)

	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate ID %d generated", id)
		}
		seen[id] = true
	}

	if len(seen) != totalCount {
		t.Errorf("generated %d unique IDs, want %d", len(seen), totalCount)
	}
}
