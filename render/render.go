package render

import (
	"errors"
	"image"
	"image/color"

	"github.com/yalue/image_utils"

	"github.com/joonaspessi/path-finding/grid"
	"github.com/joonaspessi/path-finding/pathfind"
)

// ErrNilGrid is returned by NewSnapshot when no grid is given.
var ErrNilGrid = errors.New("render: grid must not be nil")

// ErrBadCellSize is returned by Scaled for a non-positive cell size.
var ErrBadCellSize = errors.New("render: cell size must be positive")

// Cell and overlay colors.
var (
	floorColor   = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	wallColor    = color.RGBA{A: 0xff}
	startColor   = color.RGBA{G: 0xa0, A: 0xff}
	endColor     = color.RGBA{R: 0xc8, A: 0xff}
	pathColor    = color.RGBA{R: 0x32, G: 0xcd, B: 0x32, A: 0xff}
	visitedColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	inQueueColor = color.RGBA{R: 0xff, G: 0xd7, A: 0xff}
)

// Snapshot is a one-pixel-per-cell view of a grid and, optionally, the
// current state of a search over it. It implements image.Image, so it can be
// passed directly to png.Encode or any other consumer of standard images.
//
// The snapshot reads the grid and algorithm lazily on each At call; it stays
// current as the search advances, but must not be read concurrently with
// Step.
type Snapshot struct {
	g   *grid.Grid
	alg pathfind.Algorithm
}

// NewSnapshot wraps g and alg for drawing. alg may be nil to draw terrain
// only. Returns ErrNilGrid when g is nil.
func NewSnapshot(g *grid.Grid, alg pathfind.Algorithm) (*Snapshot, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	return &Snapshot{g: g, alg: alg}, nil
}

func (s *Snapshot) ColorModel() color.Model {
	return color.RGBAModel
}

func (s *Snapshot) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.g.Width(), s.g.Height())
}

func (s *Snapshot) At(x, y int) color.Color {
	c, ok := s.g.Get(x, y)
	if !ok {
		return color.Transparent
	}
	// Start and end stay visible above any overlay.
	switch c {
	case grid.Wall:
		return wallColor
	case grid.Start:
		return startColor
	case grid.End:
		return endColor
	}
	if s.alg != nil {
		switch s.alg.NodeStateAt(x, y) {
		case pathfind.Path:
			return pathColor
		case pathfind.Visited:
			return visitedColor
		case pathfind.InQueue:
			return inQueueColor
		}
	}
	return floorColor
}

// Scaled renders the snapshot at cellSize pixels per cell and returns the
// result as an *image.RGBA. Returns ErrBadCellSize when cellSize < 1.
func (s *Snapshot) Scaled(cellSize int) (*image.RGBA, error) {
	if cellSize < 1 {
		return nil, ErrBadCellSize
	}
	scaled := image_utils.ResizeImage(s, s.g.Width()*cellSize,
		s.g.Height()*cellSize)
	return image_utils.ToRGBA(scaled), nil
}
