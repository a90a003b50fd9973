package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
	"sort"
)

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxIterations  int
	convergence    float64
	alphaThreshold uint8
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor() *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		// Sprite artwork sits on a transparent canvas; pixels below this
		// alpha are background, not subject.
		alphaThreshold: 16,
	}
}

// Extract extracts the count most dominant colours from an image using
// k-means clustering. The result is ordered by dominance (cluster weight,
// descending), so slot 0 is the primary colour.
func (e *KMeansExtractor) Extract(img image.Image, count int) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 16 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 16)", count)
	}

	// Sample opaque pixels from the image.
	pixels := e.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	// Get unique colours first.
	uniqueColors := make([]RGB, 0, len(pixels))
	seen := make(map[RGB]bool)
	for _, p := range pixels {
		if !seen[p] {
			uniqueColors = append(uniqueColors, p)
			seen[p] = true
		}
	}

	// If we want more colours than unique colours exist, return all unique colours.
	if count >= len(uniqueColors) {
		return NewPalette(uniqueColors), nil
	}

	// Run k-means clustering and get cluster weights.
	centroids, weights := e.kmeans(pixels, count)

	// Convert centroids to colours ordered by dominance.
	type weighted struct {
		c RGB
		w float64
	}
	ranked := make([]weighted, len(centroids))
	for i, c := range centroids {
		ranked[i] = weighted{
			c: RGB{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B)},
			w: weights[i],
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].w > ranked[j].w })

	colors := make([]RGB, len(ranked))
	ordered := make([]float64, len(ranked))
	for i, rw := range ranked {
		colors[i] = rw.c
		ordered[i] = rw.w
	}

	return NewPaletteWithWeights(colors, ordered), nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples opaque pixels from the image.
// For large images, we sample a grid subset to improve performance.
func (e *KMeansExtractor) samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	totalPixels := width * height

	const maxSamples = 2000

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			c := img.At(x, y)
			_, _, _, a := c.RGBA()
			if uint8(a>>8) < e.alphaThreshold {
				continue
			}
			pixels = append(pixels, ToRGB(c))
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}

	return pixels
}

// kmeans performs k-means clustering on the pixel data.
// Returns centroids and their weights (relative cluster sizes).
func (e *KMeansExtractor) kmeans(pixels []RGB, k int) ([]point3D, []float64) {
	// Convert colours to 3D points.
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = point3D{
			R: float64(c.R),
			G: float64(c.G),
			B: float64(c.B),
		}
	}

	// Initialize centroids using the k-means++ algorithm.
	centroids := e.initializeCentroidsKMeansPlusPlus(points, k)

	// Track cluster assignments.
	assignments := make([]int, len(points))

	// Iterate until convergence or max iterations.
	for iter := 0; iter < e.maxIterations; iter++ {
		// Assign each point to the nearest centroid.
		changed := 0
		for i, point := range points {
			nearest := e.findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If very few assignments changed (< 1%), we've converged.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		// Recalculate centroids.
		newCentroids := e.recalculateCentroids(points, assignments, k)

		// Check for convergence based on centroid movement.
		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		avgMovement := totalMovement / float64(k)

		centroids = newCentroids

		// If centroids barely moved, we've converged.
		if avgMovement < e.convergence {
			break
		}
	}

	// Calculate cluster weights (relative sizes).
	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}

	// Normalize weights to sum to 1.0.
	totalPixels := float64(len(assignments))
	for i := range weights {
		weights[i] /= totalPixels
	}

	return centroids, weights
}

// initializeCentroidsKMeansPlusPlus initializes centroids using the k-means++
// algorithm, which provides better initial centroids than random selection.
func (e *KMeansExtractor) initializeCentroidsKMeansPlusPlus(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return []point3D{}
	}

	centroids := make([]point3D, 0, k)

	// Choose the first centroid randomly.
	firstIdx := rand.Intn(len(points))
	centroids = append(centroids, points[firstIdx])

	// Choose the remaining centroids.
	for len(centroids) < k {
		// Calculate distances from each point to its nearest centroid.
		distances := make([]float64, len(points))
		totalDistance := 0.0

		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				dist := point.distance(centroid)
				if dist < minDist {
					minDist = dist
				}
			}
			// Square the distance for k-means++.
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		// Choose the next centroid with probability proportional to squared distance.
		if totalDistance == 0 {
			// All remaining points are identical to existing centroids.
			// Duplicate the last centroid slightly perturbed.
			lastCentroid := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{
				R: lastCentroid.R + 0.1,
				G: lastCentroid.G + 0.1,
				B: lastCentroid.B + 0.1,
			})
			continue
		}

		target := rand.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func (e *KMeansExtractor) findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		dist := point.distance(centroid)
		if dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions based on assigned points.
func (e *KMeansExtractor) recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	// Sum up all points assigned to each cluster.
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	// Calculate averages.
	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			// Empty cluster - reinitialize randomly.
			centroids[i] = points[rand.Intn(len(points))]
		}
	}

	return centroids
}
