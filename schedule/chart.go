package schedule

import "math"

// chartOffset rotates the chart so that the first slice starts at
// 12 o'clock instead of 3 o'clock.
const chartOffset = -math.Pi / 2

// Slice is one category's share of the proportional chart. Angles are in
// radians, measured clockwise from 12 o'clock.
type Slice struct {
	Category   string
	Minutes    int
	Fraction   float64
	StartAngle float64
	SweepAngle float64
}

// Slices converts category totals into chart geometry. Categories are laid
// out in the order given by CategoryOrder, each starting where the
// previous one ended. A zero grand total produces no slices.
func (s Summary) Slices(categories []string) []Slice {
	if s.GrandTotal == 0 {
		return nil
	}

	var (
		out        []Slice
		cumulative float64
	)

	for _, cat := range s.CategoryOrder(categories) {
		val := s.CategoryTotals[cat]
		if val == 0 {
			continue
		}

		fraction := float64(val) / float64(s.GrandTotal)

		out = append(out, Slice{
			Category:   cat,
			Minutes:    val,
			Fraction:   fraction,
			StartAngle: chartOffset + 2*math.Pi*cumulative,
			SweepAngle: 2 * math.Pi * fraction,
		})

		cumulative += fraction
	}

	return out
}
