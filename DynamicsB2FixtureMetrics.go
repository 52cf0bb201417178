package box2d

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/ByteArena/box2d-builder"

var fixtureMetrics struct {
	once  sync.Once
	built metric.Int64Counter
}

// fixturesBuilt lazily creates the counter from the global meter provider,
// so a provider installed by the application before the first build is used.
func fixturesBuilt() metric.Int64Counter {
	fixtureMetrics.once.Do(func() {
		counter, err := otel.Meter(instrumentationName).Int64Counter(
			"box2d.fixtures.built",
			metric.WithDescription("Fixture definitions appended to body definitions"),
		)
		if err != nil {
			counter, _ = noop.Meter{}.Int64Counter("box2d.fixtures.built")
		}
		fixtureMetrics.built = counter
	})
	return fixtureMetrics.built
}

func recordFixtureBuilt(shapeType uint8) {
	fixturesBuilt().Add(context.Background(), 1,
		metric.WithAttributes(attribute.String("shape", B2ShapeTypeName(shapeType))))
}
