package visualization

import "math"

// rescale centers coordinates on the origin and scales them so the largest
// absolute coordinate equals scale.
func rescale(xs, ys []float64, scale float64) {
	n := len(xs)
	if n == 0 {
		return
	}

	meanX, meanY := 0.0, 0.0
	for i := 0; i < n; i++ {
		meanX += xs[i]
		meanY += ys[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	limit := 0.0
	for i := 0; i < n; i++ {
		xs[i] -= meanX
		ys[i] -= meanY
		limit = math.Max(limit, math.Max(math.Abs(xs[i]), math.Abs(ys[i])))
	}

	if limit == 0 {
		return
	}
	factor := scale / limit
	for i := 0; i < n; i++ {
		xs[i] *= factor
		ys[i] *= factor
	}
}

// FitToCanvas scales positions to fit a width × height canvas, leaving padding
// on every side. Layouts are translation free, so renderers call this last.
func FitToCanvas(positions map[string]Position, width, height, padding float64) map[string]Position {
	if len(positions) == 0 {
		return positions
	}

	// Find bounds
	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, pos := range positions {
		minX = math.Min(minX, pos.X)
		maxX = math.Max(maxX, pos.X)
		minY = math.Min(minY, pos.Y)
		maxY = math.Max(maxY, pos.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY

	if rangeX < 0.01 {
		rangeX = 1
	}
	if rangeY < 0.01 {
		rangeY = 1
	}

	// Scale to fit bounds with padding
	targetWidth := width - 2*padding
	targetHeight := height - 2*padding

	normalized := make(map[string]Position, len(positions))
	for label, pos := range positions {
		normalized[label] = Position{
			X: padding + ((pos.X-minX)/rangeX)*targetWidth,
			Y: padding + ((pos.Y-minY)/rangeY)*targetHeight,
		}
	}

	return normalized
}
