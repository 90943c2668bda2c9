// Package visualize renders augmented bundles to image files for debugging.
//
// The renderer draws the raster grid as a heat map with bounding boxes and
// keypoints overlaid, in the raster's pixel coordinate system (row 0 at the
// top). It exists to answer "what did that transform actually do" without
// wiring a full viewer; nothing in the engine depends on it.
package visualize

import (
	"log/slog"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/augmentgo/core/artifact"
	"github.com/YuminosukeSato/augmentgo/pkg/errors"
	"github.com/YuminosukeSato/augmentgo/pkg/log"
)

// denseGrid adapts a mat.Dense to plotter.GridXYZ. Rows are flipped so that
// row 0 renders at the top, matching image conventions.
type denseGrid struct {
	m    *mat.Dense
	rows int
	cols int
}

func newDenseGrid(m *mat.Dense) denseGrid {
	r, c := m.Dims()
	return denseGrid{m: m, rows: r, cols: c}
}

func (g denseGrid) Dims() (c, r int) { return g.cols, g.rows }
func (g denseGrid) X(c int) float64  { return float64(c) }
func (g denseGrid) Y(r int) float64  { return float64(r) }
func (g denseGrid) Z(c, r int) float64 {
	return g.m.At(g.rows-1-r, c)
}

// SaveOverlay renders the raster with optional box and keypoint overlays to
// the given file. The output format follows the file extension (.png, .svg,
// .pdf). Boxes and keypoints may be nil.
func SaveOverlay(path string, raster *artifact.Raster, boxes *artifact.BoxList, keypoints *artifact.KeypointList) error {
	if raster == nil || raster.Data == nil {
		return errors.NewInvalidArgumentError("raster", "must not be nil", raster)
	}
	grid := newDenseGrid(raster.Data)

	p := plot.New()
	p.Add(plotter.NewHeatMap(grid, palette.Heat(12, 1)))

	if boxes != nil {
		for _, box := range boxes.Items {
			head, err := box.Head()
			if err != nil {
				return err
			}
			outline, err := plotter.NewLine(boxOutline(head, grid.rows))
			if err != nil {
				return errors.Wrap(err, "failed to build box outline")
			}
			p.Add(outline)
		}
	}

	if keypoints != nil {
		pts := make(plotter.XYs, 0, len(keypoints.Items))
		for _, kp := range keypoints.Items {
			head, err := kp.Head()
			if err != nil {
				return err
			}
			pts = append(pts, plotter.XY{X: head[0], Y: plotY(head[1], grid.rows)})
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return errors.Wrap(err, "failed to build keypoint scatter")
		}
		p.Add(scatter)
	}

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.Wrap(err, "failed to save overlay")
	}

	slog.Debug("saved bundle overlay",
		log.OperationKey, "visualize",
		log.RowsKey, grid.rows,
		log.ColsKey, grid.cols,
	)
	return nil
}

// plotY converts a pixel-space y coordinate (row 0 at the top) to the
// plot's upward-growing axis.
func plotY(y float64, rows int) float64 {
	return float64(rows-1) - y
}

func boxOutline(head artifact.Geometry, rows int) plotter.XYs {
	x1, y1 := head[0], plotY(head[1], rows)
	x2, y2 := head[2], plotY(head[3], rows)
	return plotter.XYs{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
		{X: x1, Y: y1},
	}
}
