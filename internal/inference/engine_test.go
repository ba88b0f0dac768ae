package inference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/beliefnet/beliefnet/internal/domain"
	"github.com/beliefnet/beliefnet/internal/montyhall"
	"github.com/beliefnet/beliefnet/internal/network"
	apperrors "github.com/beliefnet/beliefnet/internal/pkg/errors"
)

func bakedMontyHall(t *testing.T) *network.Network {
	t.Helper()
	net, err := montyhall.NewNetwork()
	require.NoError(t, err)
	require.NoError(t, net.Bake())
	return net
}

func TestNewEngine(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		eng := NewEngine(Config{}, nil)

		require.NotNil(t, eng)
		assert.Equal(t, DefaultMaxStates, eng.maxStates)
		assert.NotNil(t, eng.logger)
	})

	t.Run("honors configured limit", func(t *testing.T) {
		eng := NewEngine(Config{MaxStates: 42}, zap.NewNop())

		assert.Equal(t, uint64(42), eng.maxStates)
	})
}

func TestEngine_Query_MontyHall(t *testing.T) {
	eng := NewEngine(Config{}, zap.NewNop())
	net := bakedMontyHall(t)
	ctx := context.Background()

	t.Run("no evidence leaves every door uniform", func(t *testing.T) {
		set, err := eng.Query(ctx, net, nil)

		require.NoError(t, err)
		require.NotNil(t, set)
		assert.Equal(t, []string{"guest", "price", "monty"}, set.Names())

		for _, name := range set.Names() {
			dist, ok := set.Get(name)
			require.True(t, ok)
			for _, door := range montyhall.Doors().Values() {
				assert.InDelta(t, 1.0/3.0, dist.Probability(door), domain.ProbabilityTolerance, "%s=%s", name, door)
			}
		}
	})

	t.Run("guest pick fixes guest and splits the host", func(t *testing.T) {
		set, err := eng.Query(ctx, net, domain.Evidence{"guest": montyhall.DoorA})

		require.NoError(t, err)

		guest, ok := set.Get("guest")
		require.True(t, ok)
		assert.Equal(t, 1.0, guest.Probability(montyhall.DoorA))
		assert.Equal(t, 0.0, guest.Probability(montyhall.DoorB))

		price, ok := set.Get("price")
		require.True(t, ok)
		for _, door := range montyhall.Doors().Values() {
			assert.InDelta(t, 1.0/3.0, price.Probability(door), domain.ProbabilityTolerance)
		}

		monty, ok := set.Get("monty")
		require.True(t, ok)
		assert.InDelta(t, 0.0, monty.Probability(montyhall.DoorA), domain.ProbabilityTolerance)
		assert.InDelta(t, 0.5, monty.Probability(montyhall.DoorB), domain.ProbabilityTolerance)
		assert.InDelta(t, 0.5, monty.Probability(montyhall.DoorC), domain.ProbabilityTolerance)
	})

	t.Run("switching doubles the odds after the reveal", func(t *testing.T) {
		set, err := eng.Query(ctx, net, domain.Evidence{
			"guest": montyhall.DoorA,
			"monty": montyhall.DoorB,
		})

		require.NoError(t, err)

		price, ok := set.Get("price")
		require.True(t, ok)
		assert.InDelta(t, 1.0/3.0, price.Probability(montyhall.DoorA), domain.ProbabilityTolerance)
		assert.InDelta(t, 0.0, price.Probability(montyhall.DoorB), domain.ProbabilityTolerance)
		assert.InDelta(t, 2.0/3.0, price.Probability(montyhall.DoorC), domain.ProbabilityTolerance)
	})

	t.Run("impossible evidence fails instead of dividing by zero", func(t *testing.T) {
		set, err := eng.Query(ctx, net, domain.Evidence{
			"guest": montyhall.DoorA,
			"monty": montyhall.DoorA,
		})

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsZeroEvidenceProbability(err))
	})

	t.Run("fully observed consistent world is accepted", func(t *testing.T) {
		set, err := eng.Query(ctx, net, domain.Evidence{
			"guest": montyhall.DoorA,
			"price": montyhall.DoorB,
			"monty": montyhall.DoorC,
		})

		require.NoError(t, err)
		for _, name := range set.Names() {
			dist, ok := set.Get(name)
			require.True(t, ok)
			assert.InDelta(t, 1.0, floats.Max(dist.Probabilities()), domain.ProbabilityTolerance)
		}
	})

	t.Run("posteriors always sum to one", func(t *testing.T) {
		set, err := eng.Query(ctx, net, domain.Evidence{"monty": montyhall.DoorC})

		require.NoError(t, err)
		for _, name := range set.Names() {
			dist, ok := set.Get(name)
			require.True(t, ok)
			assert.InDelta(t, 1.0, floats.Sum(dist.Probabilities()), domain.ProbabilityTolerance)
		}
	})

	t.Run("identical queries give identical posteriors", func(t *testing.T) {
		ev := domain.Evidence{"guest": montyhall.DoorA, "monty": montyhall.DoorB}

		first, err := eng.Query(ctx, net, ev)
		require.NoError(t, err)
		second, err := eng.Query(ctx, net, ev)
		require.NoError(t, err)

		require.Equal(t, first.Names(), second.Names())
		for _, name := range first.Names() {
			a, _ := first.Get(name)
			b, _ := second.Get(name)
			assert.Equal(t, a.Probabilities(), b.Probabilities())
		}
	})

	t.Run("re-baking the network does not change the answers", func(t *testing.T) {
		ev := domain.Evidence{"guest": montyhall.DoorA, "monty": montyhall.DoorB}

		before, err := eng.Query(ctx, net, ev)
		require.NoError(t, err)
		require.NoError(t, net.Bake())
		after, err := eng.Query(ctx, net, ev)
		require.NoError(t, err)

		require.Equal(t, before.Names(), after.Names())
		for _, name := range before.Names() {
			a, _ := before.Get(name)
			b, _ := after.Get(name)
			assert.Equal(t, a.Probabilities(), b.Probabilities())
		}
	})
}

func TestEngine_Query_UpwardInference(t *testing.T) {
	// Child copies its parent with certainty, so observing the child
	// pins the parent as well.
	weather, err := domain.NewDomain("sunny", "rainy")
	require.NoError(t, err)
	grass, err := domain.NewDomain("dry", "wet")
	require.NoError(t, err)
	table, err := domain.NewConditionalTable([]*domain.Domain{weather}, grass, []domain.Row{
		{Parents: []domain.Value{"sunny"}, Child: "dry", P: 1},
		{Parents: []domain.Value{"sunny"}, Child: "wet", P: 0},
		{Parents: []domain.Value{"rainy"}, Child: "dry", P: 0},
		{Parents: []domain.Value{"rainy"}, Child: "wet", P: 1},
	})
	require.NoError(t, err)

	prior, err := domain.NewDistribution(weather, map[domain.Value]float64{"sunny": 0.8, "rainy": 0.2})
	require.NoError(t, err)
	root, err := network.NewRootNode("weather", prior)
	require.NoError(t, err)
	child, err := network.NewDerivedNode("grass", table, "weather")
	require.NoError(t, err)

	net := network.New("garden")
	require.NoError(t, net.AddNode(root))
	require.NoError(t, net.AddNode(child))
	require.NoError(t, net.Bake())

	eng := NewEngine(Config{}, zap.NewNop())

	t.Run("prior flows downward without evidence", func(t *testing.T) {
		set, err := eng.Query(context.Background(), net, nil)

		require.NoError(t, err)
		dist, ok := set.Get("grass")
		require.True(t, ok)
		assert.InDelta(t, 0.2, dist.Probability("wet"), domain.ProbabilityTolerance)
	})

	t.Run("observing the child pins the parent", func(t *testing.T) {
		set, err := eng.Query(context.Background(), net, domain.Evidence{"grass": "wet"})

		require.NoError(t, err)
		dist, ok := set.Get("weather")
		require.True(t, ok)
		assert.InDelta(t, 1.0, dist.Probability("rainy"), domain.ProbabilityTolerance)
	})
}

func TestEngine_Query_Preconditions(t *testing.T) {
	eng := NewEngine(Config{}, zap.NewNop())
	ctx := context.Background()

	t.Run("rejects nil network", func(t *testing.T) {
		set, err := eng.Query(ctx, nil, nil)

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects unbaked network", func(t *testing.T) {
		net, err := montyhall.NewNetwork()
		require.NoError(t, err)

		set, err := eng.Query(ctx, net, nil)

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsUnbakedNetwork(err))
	})

	t.Run("rejects evidence for unknown node", func(t *testing.T) {
		set, err := eng.Query(ctx, bakedMontyHall(t), domain.Evidence{"ghost": montyhall.DoorA})

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsUnknownNode(err))
	})

	t.Run("rejects evidence value outside the domain", func(t *testing.T) {
		set, err := eng.Query(ctx, bakedMontyHall(t), domain.Evidence{"guest": "D"})

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsInvalidValue(err))
	})

	t.Run("rejects state space above the limit", func(t *testing.T) {
		small := NewEngine(Config{MaxStates: 10}, zap.NewNop())

		set, err := small.Query(ctx, bakedMontyHall(t), nil)

		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, apperrors.IsStateSpaceTooLarge(err))
	})

	t.Run("rejects cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		set, err := eng.Query(cancelled, bakedMontyHall(t), nil)

		require.Error(t, err)
		assert.Nil(t, set)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestEngine_Query_ConcurrentAccess(t *testing.T) {
	eng := NewEngine(Config{}, zap.NewNop())
	net := bakedMontyHall(t)
	ctx := context.Background()

	t.Run("handles concurrent queries on a shared network", func(t *testing.T) {
		done := make(chan bool, 100)

		for i := 0; i < 100; i++ {
			go func(i int) {
				ev := domain.Evidence{"guest": montyhall.DoorA}
				if i%2 == 0 {
					ev["monty"] = montyhall.DoorB
				}
				set, err := eng.Query(ctx, net, ev)
				assert.NoError(t, err)
				assert.NotNil(t, set)
				done <- true
			}(i)
		}

		for i := 0; i < 100; i++ {
			<-done
		}
	})
}
