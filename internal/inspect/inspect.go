package inspect

import (
	"fmt"
	"io"
	"math"
	"sort"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/orbitgen/internal/celestial"
	"github.com/san-kum/orbitgen/internal/vec"
)

var (
	header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	label  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

type Summary struct {
	Bodies       int
	TotalMass    float64
	CenterOfMass vec.Vec3
	Momentum     vec.Vec3
	MinSpeed     float64
	MaxSpeed     float64
}

func Summarize(doc *celestial.Document) Summary {
	s := Summary{Bodies: len(doc.Bodies)}
	if s.Bodies == 0 {
		return s
	}

	s.MinSpeed = math.Inf(1)
	var weighted vec.Vec3
	for _, b := range doc.Bodies {
		s.TotalMass += b.Mass
		weighted = weighted.Add(b.Pos.Scale(b.Mass))
		s.Momentum = s.Momentum.Add(b.Momentum())

		v := b.Velocity.Norm()
		s.MinSpeed = math.Min(s.MinSpeed, v)
		s.MaxSpeed = math.Max(s.MaxSpeed, v)
	}
	if s.TotalMass > 0 {
		s.CenterOfMass = weighted.Scale(1 / s.TotalMass)
	}
	return s
}

func WriteSummary(w io.Writer, title string, doc *celestial.Document) {
	s := Summarize(doc)
	fmt.Fprintln(w, header.Render(title))
	fmt.Fprintf(w, "%s %g\n", label.Render("dt_multiplier:"), doc.DtMultiplier)
	fmt.Fprintf(w, "%s %d\n", label.Render("bodies:       "), s.Bodies)
	fmt.Fprintf(w, "%s %.6g\n", label.Render("total mass:   "), s.TotalMass)
	fmt.Fprintf(w, "%s %v\n", label.Render("center of mass:"), s.CenterOfMass)
	fmt.Fprintf(w, "%s %v\n", label.Render("net momentum: "), s.Momentum)
	if s.Bodies > 0 {
		fmt.Fprintf(w, "%s %.6g .. %.6g\n", label.Render("speed range:  "), s.MinSpeed, s.MaxSpeed)
	}
}

// WriteTable lists up to limit bodies; limit <= 0 lists all.
func WriteTable(w io.Writer, doc *celestial.Document, limit int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tMASS\tPOS\tVELOCITY\tSPEED")

	for i, b := range doc.Bodies {
		if limit > 0 && i >= limit {
			fmt.Fprintf(tw, "...\t%d more\t\t\t\n", len(doc.Bodies)-limit)
			break
		}
		fmt.Fprintf(tw, "%d\t%.4g\t%v\t%v\t%.4g\n", i, b.Mass, b.Pos, b.Velocity, b.Velocity.Norm())
	}

	return tw.Flush()
}

type ProfilePoint struct {
	Index    int
	Distance float64
	Speed    float64
}

// SpeedProfile returns each body's distance and speed relative to the body
// at center, sorted by distance.
func SpeedProfile(doc *celestial.Document, center int) ([]ProfilePoint, error) {
	if center < 0 || center >= len(doc.Bodies) {
		return nil, celestial.Invalid("center", center, fmt.Sprintf("document has %d bodies", len(doc.Bodies)))
	}

	c := doc.Bodies[center]
	points := make([]ProfilePoint, 0, len(doc.Bodies)-1)
	for i, b := range doc.Bodies {
		if i == center {
			continue
		}
		d := b.Pos.Sub(c.Pos).Norm()
		if d == 0 {
			continue
		}
		points = append(points, ProfilePoint{
			Index:    i,
			Distance: d,
			Speed:    b.Velocity.Sub(c.Velocity).Norm(),
		})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Distance < points[j].Distance })
	return points, nil
}

// Plot draws speed against increasing distance.
func Plot(points []ProfilePoint, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = p.Speed
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("relative speed by distance (%.3g .. %.3g)",
			points[0].Distance, points[len(points)-1].Distance)),
	)
}
