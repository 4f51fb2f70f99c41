package visualize

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/notargets/shocktube/analytic"
	"github.com/notargets/shocktube/snapshot"
	"github.com/notargets/shocktube/types"
	"github.com/notargets/shocktube/validation"
)

type Series struct {
	Run     types.RunConfig
	Profile *snapshot.Profile
}

// Panel is one quantity: the analytic curve and the profile of every present run
type Panel struct {
	Quantity string
	Analytic *analytic.Curve
	Series   []Series
}

type legendCorner struct{ top, left bool }

var legendCorners = map[string]legendCorner{
	types.Sigma:       {top: true, left: false},
	types.Energy:      {top: true, left: false},
	types.Vrad:        {top: true, left: true},
	types.Temperature: {top: false, left: true},
}

const (
	Columns = 2
	Width   = 6 * vg.Inch
	Height  = 8 * vg.Inch
)

// Collect loads the analytic curves and the profiles of every run with output. Runs without an
// output directory are left out.
func Collect(ref *analytic.Reference, runs []types.RunConfig, qs []types.Quantity, snap int,
	logger *zap.Logger) (panels []Panel, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var present []types.RunConfig
	for _, run := range runs {
		var ok bool
		if ok, err = run.Present(); err != nil {
			return
		}
		if !ok {
			logger.Debug("not plotting missing run", zap.String("run", run.Name))
			continue
		}
		present = append(present, run)
	}
	panels = make([]Panel, len(qs))
	for i, q := range qs {
		panels[i].Quantity = q.Name
		if panels[i].Analytic, err = ref.Curve(q); err != nil {
			return nil, err
		}
		for _, run := range present {
			var p *snapshot.Profile
			if p, err = validation.LoadProfile(run, q, snap); err != nil {
				return nil, fmt.Errorf("run %s: %w", run.Name, err)
			}
			panels[i].Series = append(panels[i].Series, Series{Run: run, Profile: p})
		}
	}
	return
}

// Render draws all panels into one raster image, the format following the file extension
func Render(filename string, panels []Panel) (err error) {
	var (
		f *os.File
	)
	if len(panels) == 0 {
		return fmt.Errorf("nothing to plot")
	}
	if f, err = os.Create(filename); err != nil {
		return
	}
	defer f.Close()
	if err = Write(f, filepath.Ext(filename), panels); err != nil {
		return fmt.Errorf("rendering %s: %w", filename, err)
	}
	return f.Close()
}

func Write(w io.Writer, ext string, panels []Panel) (err error) {
	var (
		rows  = (len(panels) + Columns - 1) / Columns
		plots = make([][]*plot.Plot, rows)
	)
	for j := range plots {
		plots[j] = make([]*plot.Plot, Columns)
		for i := range plots[j] {
			n := j*Columns + i
			if n >= len(panels) {
				plots[j][i] = plot.New()
				continue
			}
			if plots[j][i], err = newPanelPlot(panels[n]); err != nil {
				return
			}
		}
	}
	img := vgimg.New(Width, Height)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: rows,
		Cols: Columns,
		PadX: vg.Millimeter,
		PadY: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		for i := range plots[j] {
			plots[j][i].Draw(canvases[j][i])
		}
	}
	switch strings.ToLower(ext) {
	case ".png":
		pc := vgimg.PngCanvas{Canvas: img}
		_, err = pc.WriteTo(w)
	case ".jpg", ".jpeg":
		jc := vgimg.JpegCanvas{Canvas: img}
		_, err = jc.WriteTo(w)
	default:
		err = fmt.Errorf("unsupported image format %q", ext)
	}
	return
}

func newPanelPlot(pn Panel) (p *plot.Plot, err error) {
	var (
		l *plotter.Line
	)
	p = plot.New()
	p.Title.Text = pn.Quantity
	p.X.Label.Text = "r"
	corner, ok := legendCorners[pn.Quantity]
	if !ok {
		corner = legendCorner{top: true}
	}
	p.Legend.Top, p.Legend.Left = corner.top, corner.left
	if pn.Analytic != nil {
		if l, err = plotter.NewLine(toXYs(pn.Analytic.X, pn.Analytic.Y)); err != nil {
			return
		}
		l.LineStyle.Color = color.Black
		l.LineStyle.Width = vg.Points(2)
		p.Add(l)
		p.Legend.Add("Analytic", l)
	}
	for _, s := range pn.Series {
		if l, err = plotter.NewLine(toXYs(s.Profile.Radius, s.Profile.Values)); err != nil {
			return nil, fmt.Errorf("run %s: %w", s.Run.Name, err)
		}
		l.LineStyle.Color = RunColor(s.Run.Color)
		l.LineStyle.Width = vg.Points(2.5)
		l.LineStyle.Dashes = Dashes(s.Run.LineStyle)
		p.Add(l)
		p.Legend.Add(s.Run.Name, l)
	}
	return
}

func toXYs(x, y []float64) (xys plotter.XYs) {
	xys = make(plotter.XYs, len(x))
	for i := range xys {
		xys[i].X, xys[i].Y = x[i], y[i]
	}
	return
}

// RunColor looks up an SVG color name, falling back to gray
func RunColor(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return colornames.Gray
}

// Dashes converts a matplotlib style line spec into a dash pattern
func Dashes(ls string) []vg.Length {
	switch ls {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case "-.":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(2)}
	}
	return nil
}
