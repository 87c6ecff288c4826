package builder

// NoiseMap is a width×height grid of float64 values stored row-major.
// Reads outside the grid return 0 and writes outside it are dropped, so
// consumers can scan with loose margins without guarding every access.
type NoiseMap struct {
	width  int
	height int
	values []float64
}

// NewNoiseMap allocates a zeroed width×height map. It returns ErrMapSize
// when either dimension is not positive.
func NewNoiseMap(width, height int) (*NoiseMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrMapSize
	}
	return &NoiseMap{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}, nil
}

// Width reports the number of columns.
func (m *NoiseMap) Width() int { return m.width }

// Height reports the number of rows.
func (m *NoiseMap) Height() int { return m.height }

// Get returns the value at (x, y), or 0 when the cell is out of range.
func (m *NoiseMap) Get(x, y int) float64 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.values[y*m.width+x]
}

// Set stores v at (x, y). Out-of-range cells are ignored.
func (m *NoiseMap) Set(x, y int, v float64) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.values[y*m.width+x] = v
}

// Values returns the backing row-major slice. The slice aliases the map;
// callers that need isolation should copy it.
func (m *NoiseMap) Values() []float64 { return m.values }
