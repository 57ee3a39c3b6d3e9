// Package chart turns parsed records into a required-vs-current grouped
// bar comparison and renders it.
package chart

import (
	"math"

	"github.com/alexanderramin/izof/internal/domain"
)

// ScaleMax is the top of the conventional 0–10 score scale.
const ScaleMax = 10

// Fixed two-color palette, one color per score kind.
const (
	ColorRequired = "#636EFA"
	ColorCurrent  = "#FFA15A"
)

// Title is the chart heading.
const Title = "필요 점수 vs 현재 점수 비교"

// Bar is one plotted bar.
type Bar struct {
	Kind  domain.ScoreKind
	Value int
	Color string
}

// Group is the pair of bars drawn for one record.
type Group struct {
	Label string
	Bars  [2]Bar
}

// Comparison is the render-independent chart model.
type Comparison struct {
	Title  string
	Groups []Group
	YMin   int
	YMax   int
}

// Build creates one group per record, in record order. Repeated labels
// produce repeated groups. The vertical axis always covers at least
// 0..ScaleMax+1 and grows to fit larger values.
func Build(records []domain.Record) Comparison {
	c := Comparison{
		Title:  Title,
		Groups: make([]Group, 0, len(records)),
		YMin:   0,
		YMax:   ScaleMax + 1,
	}
	for _, r := range records {
		c.Groups = append(c.Groups, Group{
			Label: r.Label,
			Bars: [2]Bar{
				{Kind: domain.ScoreRequired, Value: r.Required, Color: ColorFor(domain.ScoreRequired)},
				{Kind: domain.ScoreCurrent, Value: r.Current, Color: ColorFor(domain.ScoreCurrent)},
			},
		})
		c.YMax = max(c.YMax, axisTop(r.Required), axisTop(r.Current))
	}
	return c
}

// axisTop is the smallest axis top that leaves headroom above v. It
// saturates at math.MaxInt.
func axisTop(v int) int {
	if v >= math.MaxInt {
		return math.MaxInt
	}
	return v + 1
}

// ColorFor returns the palette color of a score kind.
func ColorFor(kind domain.ScoreKind) string {
	if kind == domain.ScoreRequired {
		return ColorRequired
	}
	return ColorCurrent
}

// Bars returns every bar in plotting order: required then current for
// each group.
func (c Comparison) Bars() []Bar {
	out := make([]Bar, 0, len(c.Groups)*2)
	for _, g := range c.Groups {
		out = append(out, g.Bars[0], g.Bars[1])
	}
	return out
}

// Ticks returns at most maxTicks+1 evenly spaced axis values from YMin
// up to YMax. YMax is always the last tick.
func (c Comparison) Ticks(maxTicks int) []int {
	if maxTicks < 1 {
		maxTicks = 1
	}
	span := uint64(c.YMax - c.YMin)
	step := max((span+uint64(maxTicks)-1)/uint64(maxTicks), 1)

	ticks := make([]int, 0, maxTicks+2)
	for i := uint64(0); i*step < span; i++ {
		ticks = append(ticks, c.YMin+int(i*step))
	}
	return append(ticks, c.YMax)
}

// BarCount is always twice the number of groups.
func (c Comparison) BarCount() int {
	return len(c.Groups) * 2
}

// Empty reports whether there is nothing to plot.
func (c Comparison) Empty() bool {
	return len(c.Groups) == 0
}
