package audio

import (
	"fmt"
	"image"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotWaveform draws samples against time as a step plot, returning an
// image of the given size in pixels.
func PlotWaveform(samples []int16, sampleRate int, width, height int) (image.Image, error) {
	p := plot.New()
	p.Title.Text = "Channel 1 (Square)"
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Amplitude"

	xys := make(plotter.XYs, len(samples))
	for i, s := range samples {
		xys[i].X = float64(i) * 1000 / float64(sampleRate)
		xys[i].Y = float64(s)
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("plot: %w", err)
	}
	line.StepStyle = plotter.PreStep
	p.Add(line)

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(width)*vg.Inch/96, vg.Length(height)*vg.Inch/96),
		vgimg.UseDPI(96),
	)
	p.Draw(draw.New(c))

	return c.Image(), nil
}
