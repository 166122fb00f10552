package seqmap

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// WriteGelPlot renders a simulated agarose gel lane of the digest
// fragments to an image file (format from the file extension). Each
// fragment is drawn as a band at its estimated migration distance
func WriteGelPlot(filename string, fragments []DigestFragment) error {
	p, err := newGelPlot(fragments)
	if err != nil {
		return err
	}
	return p.Save(3*vg.Inch, 6*vg.Inch, filename)
}

// newGelPlot builds the gel lane plot: one band per fragment at its
// migration distance, on an inverted Y axis so the wells sit at the top
// like a real gel
func newGelPlot(fragments []DigestFragment) (*plot.Plot, error) {
	if len(fragments) == 0 {
		return nil, fmt.Errorf("failed to plot gel: no fragments")
	}

	lengths := make([]float64, len(fragments))
	for i, frag := range fragments {
		lengths[i] = float64(frag.Length)
	}
	maxLength := int(floats.Max(lengths))

	p := plot.New()
	p.Title.Text = "Simulated digest"
	p.X.Label.Text = "lane"
	p.Y.Label.Text = "migration"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = -0.05, 1.05
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	bandColor := color.RGBA{R: 40, G: 40, B: 120, A: 255}
	var labelXYs plotter.XYs
	var labels []string

	for _, frag := range fragments {
		migration := GelMigration(frag.Length, maxLength)

		band, err := plotter.NewLine(plotter.XYs{
			{X: 0.3, Y: migration},
			{X: 0.7, Y: migration},
		})
		if err != nil {
			return nil, err
		}
		band.LineStyle.Color = bandColor
		band.LineStyle.Width = vg.Points(3)
		p.Add(band)

		labelXYs = append(labelXYs, plotter.XY{X: 0.72, Y: migration})
		labels = append(labels, fmt.Sprintf("%d bp", frag.Length))
	}

	bandLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labels})
	if err != nil {
		return nil, err
	}
	p.Add(bandLabels)

	return p, nil
}
