package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SBN-BookingService/internal/domain"
)

func TestEngine_Compute_Scenarios(t *testing.T) {
	engine := NewEngine(DefaultTables())

	tests := []struct {
		name        string
		serviceType domain.ServiceType
		surface     float64
		frequency   domain.Frequency
		addOns      []string
		want        Estimate
	}{
		{
			name:        "bureau weekly without add-ons",
			serviceType: domain.ServiceBureau,
			surface:     200,
			frequency:   domain.FrequencyHebdomadaire,
			want: Estimate{
				BasePrice:           500,
				DiscountedBasePrice: 400,
				AdditionalCost:      0,
				DiscountPercent:     20,
				TotalPrice:          400,
			},
		},
		{
			name:        "industriel one-off with windows and carpets",
			serviceType: domain.ServiceIndustriel,
			surface:     100,
			frequency:   domain.FrequencyUnique,
			addOns:      []string{"vitres", "tapis"},
			want: Estimate{
				BasePrice:           400,
				DiscountedBasePrice: 400,
				AdditionalCost:      110,
				DiscountPercent:     0,
				TotalPrice:          510,
			},
		},
		{
			name:        "commerce monthly",
			serviceType: domain.ServiceCommerce,
			surface:     150,
			frequency:   domain.FrequencyMensuel,
			addOns:      []string{"sanitaires"},
			want: Estimate{
				BasePrice:           450,
				DiscountedBasePrice: 405,
				AdditionalCost:      30,
				DiscountPercent:     10,
				TotalPrice:          435,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Compute(tt.serviceType, tt.surface, tt.frequency, tt.addOns)

			assert.InDelta(t, tt.want.BasePrice, got.BasePrice, 1e-9)
			assert.InDelta(t, tt.want.DiscountedBasePrice, got.DiscountedBasePrice, 1e-9)
			assert.Equal(t, tt.want.AdditionalCost, got.AdditionalCost)
			assert.Equal(t, tt.want.DiscountPercent, got.DiscountPercent)
			assert.Equal(t, tt.want.TotalPrice, got.TotalPrice)
		})
	}
}

func TestEngine_Compute_IsTotal(t *testing.T) {
	engine := NewEngine(DefaultTables())

	got := engine.Compute(domain.ServiceBureau, 0, domain.FrequencyUnique, nil)
	assert.Equal(t, 0.0, got.TotalPrice)

	got = engine.Compute("garage", 100, "quotidien", []string{"unknown"})
	assert.Equal(t, 0.0, got.TotalPrice)
}

func TestEngine_Compute_Idempotent(t *testing.T) {
	engine := NewEngine(DefaultTables())
	addOns := []string{"vitres", "dechets"}

	first := engine.Compute(domain.ServiceCommerce, 333, domain.FrequencyBihebdomadaire, addOns)
	second := engine.Compute(domain.ServiceCommerce, 333, domain.FrequencyBihebdomadaire, addOns)

	assert.Equal(t, first, second)
}

func TestEngine_Compute_MonotonicInSurface(t *testing.T) {
	engine := NewEngine(DefaultTables())

	for _, st := range domain.ServiceTypes {
		for _, fr := range domain.Frequencies {
			prev := -1.0
			for surface := domain.MinSurface; surface <= domain.MaxSurface; surface += 7.5 {
				total := engine.Compute(st, surface, fr, nil).TotalPrice
				assert.GreaterOrEqual(t, total, 0.0)
				assert.GreaterOrEqual(t, total, prev, "service=%s frequency=%s surface=%v", st, fr, surface)
				prev = total
			}
		}
	}
}

func TestEngine_Compute_DiscountOrdering(t *testing.T) {
	engine := NewEngine(DefaultTables())
	addOns := []string{"vitres"}

	for _, st := range domain.ServiceTypes {
		for _, surface := range []float64{10, 57, 200, 1234.5, 5000} {
			weekly := engine.Compute(st, surface, domain.FrequencyHebdomadaire, addOns).TotalPrice
			twice := engine.Compute(st, surface, domain.FrequencyBihebdomadaire, addOns).TotalPrice
			monthly := engine.Compute(st, surface, domain.FrequencyMensuel, addOns).TotalPrice
			once := engine.Compute(st, surface, domain.FrequencyUnique, addOns).TotalPrice

			assert.LessOrEqual(t, weekly, twice)
			assert.LessOrEqual(t, twice, monthly)
			assert.LessOrEqual(t, monthly, once)
		}
	}
}

func TestEngine_CustomTables(t *testing.T) {
	engine := NewEngine(Tables{
		Rates:     map[domain.ServiceType]float64{domain.ServiceBureau: 1},
		Discounts: map[domain.Frequency]float64{domain.FrequencyMensuel: 50},
		AddOns:    map[string]float64{"vitres": 5},
	})

	got := engine.Compute(domain.ServiceBureau, 100, domain.FrequencyMensuel, []string{"vitres"})
	assert.Equal(t, 55.0, got.TotalPrice)
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, RoundHalfUp(2.5))
	assert.Equal(t, 2.0, RoundHalfUp(2.49))
	assert.Equal(t, 0.0, RoundHalfUp(0))
}

func TestEngine_ApplyPromo(t *testing.T) {
	engine := NewEngine(DefaultTables())

	assert.Equal(t, 360.0, engine.ApplyPromo(400, 10))
	assert.Equal(t, 400.0, engine.ApplyPromo(400, 0))
}
