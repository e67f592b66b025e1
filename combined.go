package astrochart

import (
	"context"
	"time"

	"github.com/thurmanmarka/astrochart/internal/degree"
)

// CombinedChart pairs two independent charts, e.g. natal and transit, and
// answers questions that span both. It holds no state of its own.
type CombinedChart struct {
	primary    *Chart
	comparator *Chart
}

// NewCombinedChart pairs primary with comparator.
func NewCombinedChart(primary, comparator *Chart) (*CombinedChart, error) {
	if primary == nil || comparator == nil {
		return nil, invalidInput("combined chart needs two charts")
	}
	return &CombinedChart{primary: primary, comparator: comparator}, nil
}

// NewComparatorChart builds a comparator chart for moment from p and pairs
// it with primary. opts apply to the comparator only.
func NewComparatorChart(ctx context.Context, primary *Chart, moment time.Time, p Provider, opts ...Option) (*CombinedChart, error) {
	if primary == nil {
		return nil, invalidInput("combined chart needs a primary chart")
	}
	comparator, err := NewChart(ctx, moment, p, opts...)
	if err != nil {
		return nil, err
	}
	return NewCombinedChart(primary, comparator)
}

// Primary returns the primary chart.
func (cc *CombinedChart) Primary() *Chart { return cc.primary }

// Comparator returns the comparator chart.
func (cc *CombinedChart) Comparator() *Chart { return cc.comparator }

// AngleBetween is the signed angle from comparatorObject (in the comparator
// chart) to primaryObject (in the primary chart), in [-180, 180).
func (cc *CombinedChart) AngleBetween(primaryObject, comparatorObject Object) (float64, error) {
	p, err := cc.primary.PositionOf(primaryObject)
	if err != nil {
		return 0, err
	}
	q, err := cc.comparator.PositionOf(comparatorObject)
	if err != nil {
		return 0, err
	}
	return degree.SignedDifference(p.Longitude, q.Longitude), nil
}

// AngleGrid returns AngleBetween for every primary/comparator object pair,
// keyed [primary][comparator].
func (cc *CombinedChart) AngleGrid() map[Object]map[Object]float64 {
	return angleGrid(cc.primary, cc.comparator)
}

// HouseOfComparator places a comparator object in the primary chart's
// houses.
func (cc *CombinedChart) HouseOfComparator(o Object) (House, error) {
	p, err := cc.comparator.PositionOf(o)
	if err != nil {
		return 0, err
	}
	if cc.primary.houses == nil {
		return 0, housesUnavailable("HouseOfComparator")
	}
	return HouseOf(degree.Normalize(p.Longitude), *cc.primary.houses), nil
}
