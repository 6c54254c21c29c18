package metrics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/spacerush-go/internal/adapters/metrics"
	"github.com/andrescamacho/spacerush-go/internal/application/common"
	"github.com/andrescamacho/spacerush-go/internal/application/game"
	"github.com/andrescamacho/spacerush-go/internal/application/game/commands"
	"github.com/andrescamacho/spacerush-go/internal/application/mediator"
	"github.com/andrescamacho/spacerush-go/internal/domain/ledger"
	"github.com/andrescamacho/spacerush-go/internal/domain/shared"
)

type pingCommand struct{ fail error }

// gathered sums every series of a metric family whose labels include match
func gathered(t *testing.T, name string, match map[string]string) (float64, int) {
	t.Helper()
	families, err := metrics.Registry.Gather()
	require.NoError(t, err)
	sum, series := 0.0, 0
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metricLoop:
		for _, m := range f.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			for k, v := range match {
				if labels[k] != v {
					continue metricLoop
				}
			}
			series++
			switch {
			case m.GetCounter() != nil:
				sum += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				sum += m.GetGauge().GetValue()
			}
		}
	}
	return sum, series
}

func withRegistry(t *testing.T) {
	t.Helper()
	metrics.InitRegistry()
	t.Cleanup(func() { metrics.Registry = nil })
}

func TestPrometheusMiddleware_RecordsOutcome(t *testing.T) {
	// Arrange
	withRegistry(t)
	collector := metrics.NewCommandMetricsCollector()
	require.NoError(t, collector.Register())

	med := common.NewMediator()
	med.RegisterMiddleware(metrics.PrometheusMiddleware(collector))
	require.NoError(t, mediator.RegisterHandler[*pingCommand](med, mediator.HandlerFunc(
		func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
			return nil, request.(*pingCommand).fail
		})))
	ctx := context.Background()

	// Act
	_, _ = med.Send(ctx, &pingCommand{})
	_, _ = med.Send(ctx, &pingCommand{fail: commands.ErrDeclined})
	_, _ = med.Send(ctx, &pingCommand{fail: errors.New("boom")})

	// Assert
	total, series := gathered(t, "spacerush_commands_total", map[string]string{"command": "pingCommand"})
	assert.Equal(t, 3.0, total)
	assert.Equal(t, 3, series, "accepted, declined and error series")
	declined, _ := gathered(t, "spacerush_commands_total", map[string]string{"status": metrics.StatusDeclined})
	assert.Equal(t, 1.0, declined)
}

func TestPrometheusMiddleware_NilCollectorPassesThrough(t *testing.T) {
	mw := metrics.PrometheusMiddleware(nil)

	resp, err := mw(context.Background(), &pingCommand{}, func(ctx context.Context, request mediator.Request) (mediator.Response, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

type fakeSource struct{ status game.Status }

func (f *fakeSource) Status() game.Status { return f.status }

func TestSimulationMetricsCollector_Update(t *testing.T) {
	// Arrange
	withRegistry(t)
	source := &fakeSource{status: game.Status{
		Credits:    1500,
		FleetLevel: 2,
		Resources: []ledger.ResourceRecord{
			{Type: shared.ResourceIron, Quantity: 40, MarketValue: 11},
		},
		Sites:  []game.SiteStatus{{ID: "MOON", Stored: 12}},
		Totals: game.Totals{ProducedUnits: 10, CreditsEarned: 200, Saves: 1},
	}}
	collector := metrics.NewSimulationMetricsCollector(source, 0)
	require.NoError(t, collector.Register())

	// Act
	collector.Update()
	source.status.Totals.ProducedUnits = 25
	collector.Update()

	// Assert
	credits, _ := gathered(t, "spacerush_simulation_credits", nil)
	iron, _ := gathered(t, "spacerush_simulation_resource_quantity", map[string]string{"resource": "IRON"})
	stored, _ := gathered(t, "spacerush_simulation_site_stockpile_units", map[string]string{"site": "MOON"})
	produced, _ := gathered(t, "spacerush_simulation_units_total", map[string]string{"stage": "produced"})
	earned, _ := gathered(t, "spacerush_simulation_credits_total", map[string]string{"direction": "earned"})
	assert.Equal(t, 1500.0, credits)
	assert.Equal(t, 40.0, iron)
	assert.Equal(t, 12.0, stored)
	assert.Equal(t, 25.0, produced)
	assert.Equal(t, 200.0, earned)
}

func TestSimulationMetricsCollector_StartStop(t *testing.T) {
	source := &fakeSource{status: game.Status{Credits: 42}}
	collector := metrics.NewSimulationMetricsCollector(source, time.Hour)

	collector.Start(context.Background())
	collector.Stop()

	assert.NotPanics(t, collector.Stop)
}

func TestNewServer_RequiresRegistry(t *testing.T) {
	metrics.Registry = nil

	_, err := metrics.NewServer("localhost", 9090, "", nil)

	assert.Error(t, err)
}
