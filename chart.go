package astrochart

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thurmanmarka/astrochart/internal/degree"
	"github.com/thurmanmarka/astrochart/internal/observability"
)

const tracerName = "github.com/thurmanmarka/astrochart"

// Option configures NewChart.
type Option func(*chartOptions)

type chartOptions struct {
	objects        []Object
	location       *Coordinates
	houseSystem    HouseSystem
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
}

// WithObjects restricts the chart to objs, in that order. Duplicates are
// dropped. Without this option (or with an empty list) the chart holds
// DefaultObjects.
func WithObjects(objs ...Object) Option {
	return func(o *chartOptions) {
		o.objects = slices.Clone(objs)
	}
}

// WithLocation makes the chart resolve house cusps for an observer at
// lat, lon (degrees, north and east positive).
func WithLocation(lat, lon float64) Option {
	return func(o *chartOptions) {
		o.location = &Coordinates{Lat: lat, Lon: lon}
	}
}

// WithHouseSystem selects the house system; Placidus by default.
func WithHouseSystem(hs HouseSystem) Option {
	return func(o *chartOptions) {
		o.houseSystem = hs
	}
}

// WithLogger sets the logger used during construction; slog.Default()
// otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(o *chartOptions) {
		o.logger = l
	}
}

// WithTracerProvider sets the tracer provider used for construction spans;
// the global otel provider otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *chartOptions) {
		o.tracerProvider = tp
	}
}

// Chart is an immutable snapshot of object positions, optional house data
// and the ayanamsa for one moment. All queries are pure reads.
type Chart struct {
	id           ulid.ULID
	moment       time.Time
	providerName string
	objects      []Object
	positions    map[Object]Position
	ayanamsa     float64
	houseSystem  HouseSystem
	location     *Coordinates
	houses       *HouseCusps
}

// NewChart resolves every supported object's position, the ayanamsa and,
// when a location is given, the house cusps for moment. moment is converted
// to UTC before any provider call. Any provider error aborts construction;
// no partial chart is returned.
func NewChart(ctx context.Context, moment time.Time, p Provider, opts ...Option) (*Chart, error) {
	o := chartOptions{houseSystem: Placidus}
	for _, opt := range opts {
		opt(&o)
	}
	if p == nil {
		return nil, invalidInput("ephemeris provider is nil")
	}
	objects, err := supportedObjects(o.objects)
	if err != nil {
		return nil, err
	}
	if !o.houseSystem.Valid() {
		return nil, invalidInput("unsupported house system %d", int(o.houseSystem))
	}
	if o.location != nil {
		if o.location.Lat < -90 || o.location.Lat > 90 || o.location.Lon < -180 || o.location.Lon > 180 {
			return nil, invalidInput("location lat=%v lon=%v out of range", o.location.Lat, o.location.Lon)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.tracerProvider == nil {
		o.tracerProvider = otel.GetTracerProvider()
	}

	c := &Chart{
		id:           ulid.Make(),
		moment:       moment.UTC(),
		providerName: p.Name(),
		objects:      objects,
		positions:    make(map[Object]Position, len(objects)),
		houseSystem:  o.houseSystem,
		location:     o.location,
	}

	r := resolver{
		provider: p,
		tracer:   o.tracerProvider.Tracer(tracerName),
		logger:   o.logger.With(slog.String("chart_id", c.id.String()), slog.String("provider", c.providerName)),
	}

	start := time.Now()
	err = c.resolve(ctx, r)
	observability.ChartBuildDuration.Observe(time.Since(start).Seconds())
	observability.ChartsBuiltTotal.WithLabelValues(observability.Result(err)).Inc()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func supportedObjects(requested []Object) ([]Object, error) {
	if len(requested) == 0 {
		return DefaultObjects(), nil
	}
	out := make([]Object, 0, len(requested))
	for _, o := range requested {
		if !o.Valid() {
			return nil, invalidInput("unsupported celestial object %d", int(o))
		}
		if !slices.Contains(out, o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (c *Chart) resolve(ctx context.Context, r resolver) error {
	ctx, span := r.tracer.Start(ctx, "astrochart.NewChart", trace.WithAttributes(
		attribute.String("chart.id", c.id.String()),
		attribute.String("chart.provider", c.providerName),
		attribute.String("chart.moment", c.moment.Format(time.RFC3339Nano)),
		attribute.Int("chart.objects", len(c.objects)),
		attribute.Bool("chart.houses", c.location != nil),
	))
	defer span.End()

	err := c.resolveAll(ctx, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (c *Chart) resolveAll(ctx context.Context, r resolver) error {
	for _, obj := range c.objects {
		var pos Position
		err := r.call(ctx, "position", []attribute.KeyValue{attribute.String("object", obj.String())}, func(ctx context.Context) error {
			var err error
			pos, err = r.provider.PositionOf(ctx, obj, c.moment, ModeTropic)
			return err
		})
		if err != nil {
			return providerFailure(c.providerName, "position of "+obj.String(), err).WithContext(CtxObject, obj.String())
		}
		c.positions[obj] = pos
	}

	err := r.call(ctx, "ayanamsa", nil, func(ctx context.Context) error {
		var err error
		c.ayanamsa, err = r.provider.Ayanamsa(ctx, c.moment)
		return err
	})
	if err != nil {
		return providerFailure(c.providerName, "ayanamsa", err)
	}

	if c.location == nil {
		return nil
	}
	var hc HouseCusps
	err = r.call(ctx, "houses", []attribute.KeyValue{attribute.String("house_system", c.houseSystem.String())}, func(ctx context.Context) error {
		var err error
		hc, err = r.provider.HousesOf(ctx, c.moment, *c.location, c.houseSystem, ModeTropic)
		return err
	})
	if err != nil {
		return providerFailure(c.providerName, c.houseSystem.String()+" houses", err)
	}
	c.houses = &hc
	return nil
}

// resolver instruments provider calls made while building a chart.
type resolver struct {
	provider Provider
	tracer   trace.Tracer
	logger   *slog.Logger
}

func (r resolver) call(ctx context.Context, name string, attrs []attribute.KeyValue, fn func(context.Context) error) error {
	ctx, span := r.tracer.Start(ctx, "provider."+name, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	providerName := r.provider.Name()
	observability.ProviderCallDuration.WithLabelValues(providerName, name).Observe(elapsed.Seconds())
	observability.ProviderCallsTotal.WithLabelValues(providerName, name, observability.Result(err)).Inc()

	logAttrs := []any{slog.String("call", name), slog.Duration("elapsed", elapsed)}
	for _, a := range attrs {
		logAttrs = append(logAttrs, slog.String(string(a.Key), a.Value.Emit()))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		r.logger.Warn("ephemeris provider call failed", append(logAttrs, slog.Any("error", err))...)
		return err
	}
	r.logger.Debug("ephemeris provider call", logAttrs...)
	return nil
}

// ID is a unique, time-sortable identifier for this snapshot.
func (c *Chart) ID() string { return c.id.String() }

// Moment is the chart's instant, in UTC.
func (c *Chart) Moment() time.Time { return c.moment }

// ProviderName names the provider the chart was resolved from.
func (c *Chart) ProviderName() string { return c.providerName }

// Objects returns the supported objects in resolution order.
func (c *Chart) Objects() []Object { return slices.Clone(c.objects) }

// Supports reports whether o has a position in this chart.
func (c *Chart) Supports(o Object) bool {
	_, ok := c.positions[o]
	return ok
}

// Ayanamsa is the precession offset, in degrees, at the chart's moment.
func (c *Chart) Ayanamsa() float64 { return c.ayanamsa }

// HouseSystem is the house system requested for this chart.
func (c *Chart) HouseSystem() HouseSystem { return c.houseSystem }

// Location returns the observer location, if the chart has one.
func (c *Chart) Location() (Coordinates, bool) {
	if c.location == nil {
		return Coordinates{}, false
	}
	return *c.location, true
}

// Houses returns a copy of the house data.
func (c *Chart) Houses() (HouseCusps, error) {
	if c.houses == nil {
		return HouseCusps{}, housesUnavailable("Houses")
	}
	return *c.houses, nil
}

// PositionOf returns the stored tropical position of o.
func (c *Chart) PositionOf(o Object) (Position, error) {
	p, ok := c.positions[o]
	if !ok {
		return Position{}, objectNotSupported(o)
	}
	return p, nil
}

// SiderealPositionOf returns the position of o with the ayanamsa removed
// from its longitude. The stored position is left untouched.
func (c *Chart) SiderealPositionOf(o Object) (Position, error) {
	p, err := c.PositionOf(o)
	if err != nil {
		return Position{}, err
	}
	p.Longitude = c.sidereal(p.Longitude)
	return p, nil
}

func (c *Chart) sidereal(longitude float64) float64 {
	return degree.Subtract(longitude, c.ayanamsa)
}

// AngleBetween is the signed tropical angle from b to a, in [-180, 180).
func (c *Chart) AngleBetween(a, b Object) (float64, error) {
	pa, err := c.PositionOf(a)
	if err != nil {
		return 0, err
	}
	pb, err := c.PositionOf(b)
	if err != nil {
		return 0, err
	}
	return degree.SignedDifference(pa.Longitude, pb.Longitude), nil
}

// AngleGrid returns the signed angle between every ordered pair of the
// chart's objects, keyed [a][b] = AngleBetween(a, b).
func (c *Chart) AngleGrid() map[Object]map[Object]float64 {
	return angleGrid(c, c)
}

func angleGrid(first, second *Chart) map[Object]map[Object]float64 {
	grid := make(map[Object]map[Object]float64, len(first.objects))
	for _, a := range first.objects {
		row := make(map[Object]float64, len(second.objects))
		for _, b := range second.objects {
			row[b] = degree.SignedDifference(first.positions[a].Longitude, second.positions[b].Longitude)
		}
		grid[a] = row
	}
	return grid
}

// SignOf returns the zodiac sign of o's tropical longitude.
func (c *Chart) SignOf(o Object) (Sign, error) {
	p, err := c.PositionOf(o)
	if err != nil {
		return 0, err
	}
	return SignOf(p.Longitude), nil
}

// ConstellationOf returns the sign of o's sidereal longitude.
func (c *Chart) ConstellationOf(o Object) (Sign, error) {
	p, err := c.PositionOf(o)
	if err != nil {
		return 0, err
	}
	return SignOf(c.sidereal(p.Longitude)), nil
}

func (c *Chart) crossLongitude(d Cross, op string) (float64, error) {
	if c.houses == nil {
		return 0, housesUnavailable(op)
	}
	return c.houses.Point(d)
}

func (c *Chart) cuspLongitude(h House, op string) (float64, error) {
	if c.houses == nil {
		return 0, housesUnavailable(op)
	}
	return c.houses.Cusp(h)
}

// SignOfCross returns the zodiac sign of the cross point d.
func (c *Chart) SignOfCross(d Cross) (Sign, error) {
	lon, err := c.crossLongitude(d, "SignOfCross")
	if err != nil {
		return 0, err
	}
	return SignOf(lon), nil
}

// SignOfHouse returns the zodiac sign of h's cusp.
func (c *Chart) SignOfHouse(h House) (Sign, error) {
	lon, err := c.cuspLongitude(h, "SignOfHouse")
	if err != nil {
		return 0, err
	}
	return SignOf(lon), nil
}

// ConstellationOfCross returns the sidereal sign of the cross point d.
func (c *Chart) ConstellationOfCross(d Cross) (Sign, error) {
	lon, err := c.crossLongitude(d, "ConstellationOfCross")
	if err != nil {
		return 0, err
	}
	return SignOf(c.sidereal(lon)), nil
}

// ConstellationOfHouse returns the sidereal sign of h's cusp.
func (c *Chart) ConstellationOfHouse(h House) (Sign, error) {
	lon, err := c.cuspLongitude(h, "ConstellationOfHouse")
	if err != nil {
		return 0, err
	}
	return SignOf(c.sidereal(lon)), nil
}

// MotionOf reports whether o is retrograde at the chart's moment.
func (c *Chart) MotionOf(o Object) (Motion, error) {
	p, err := c.PositionOf(o)
	if err != nil {
		return 0, err
	}
	return MotionOf(p), nil
}

// StateOf applies rule to o and its sign (Tropical) or constellation
// (Sidereal). A nil rule means DefaultDignity.
func (c *Chart) StateOf(o Object, ref Reference, rule DignityRule) (State, error) {
	if rule == nil {
		rule = DefaultDignity
	}

	var (
		s   Sign
		err error
	)
	switch ref {
	case Tropical:
		s, err = c.SignOf(o)
	case Sidereal:
		s, err = c.ConstellationOf(o)
	default:
		return None, invalidInput("unsupported zodiac reference %d", int(ref))
	}
	if err != nil {
		return None, err
	}
	return rule(o, s), nil
}

// HouseOf returns the house o falls in.
func (c *Chart) HouseOf(o Object) (House, error) {
	p, err := c.PositionOf(o)
	if err != nil {
		return 0, err
	}
	if c.houses == nil {
		return 0, housesUnavailable("HouseOf")
	}
	return HouseOf(degree.Normalize(p.Longitude), *c.houses), nil
}

// HouseOfCross returns the house the cross point d belongs to. A point on
// a cusp belongs to the house that cusp opens, so the Ascendant of a
// quadrant system is in House1.
func (c *Chart) HouseOfCross(d Cross) (House, error) {
	lon, err := c.crossLongitude(d, "HouseOfCross")
	if err != nil {
		return 0, err
	}
	return HouseOfPoint(degree.Normalize(lon), *c.houses), nil
}

// HousePlacements maps every supported object to its house.
func (c *Chart) HousePlacements() (map[Object]House, error) {
	if c.houses == nil {
		return nil, housesUnavailable("HousePlacements")
	}
	out := make(map[Object]House, len(c.objects))
	for _, o := range c.objects {
		out[o] = HouseOf(degree.Normalize(c.positions[o].Longitude), *c.houses)
	}
	return out, nil
}
