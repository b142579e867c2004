package pricing

import (
	"testing"

	"sparklean/models"

	"github.com/stretchr/testify/require"
)

func TestTeamRequired(t *testing.T) {
	t.Parallel()

	require.True(t, TeamRequired(ServiceDeep))
	require.True(t, TeamRequired(ServiceMoveInOut))
	require.False(t, TeamRequired(ServiceStandard))
	require.False(t, TeamRequired(ServiceAirbnb))
}

func TestPruneExtrasDropsOtherGroup(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{
		Service:          ServiceDeep,
		Extras:           []string{"Carpet Cleaning", "Inside Oven", "Garage Cleaning"},
		ExtrasQuantities: map[string]int{"Carpet Cleaning": 2},
	}

	pruned := PruneExtras(ServiceStandard, sel)
	require.Equal(t, ServiceStandard, pruned.Service)
	require.Empty(t, pruned.Extras) // none of the deep extras survive
	require.Empty(t, pruned.ExtrasQuantities)

	kept := PruneExtras(ServiceDeep, sel)
	require.Equal(t, []string{"Carpet Cleaning", "Garage Cleaning"}, kept.Extras)
	require.Equal(t, map[string]int{"Carpet Cleaning": 2}, kept.ExtrasQuantities)
}

func TestPruneExtrasClampsQuantities(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{
		Service:          ServiceDeep,
		Extras:           []string{"Couch Cleaning"},
		ExtrasQuantities: map[string]int{"Couch Cleaning": 12},
	}

	pruned := PruneExtras(ServiceDeep, sel)
	require.Equal(t, MaxExtraQuantity, pruned.ExtrasQuantities["Couch Cleaning"])
}

func TestPruneExtrasDropsQuantityForNonQuantityExtras(t *testing.T) {
	t.Parallel()

	sel := models.ServiceSelection{
		Service:          ServiceDeep,
		Extras:           []string{"Garage Cleaning"},
		ExtrasQuantities: map[string]int{"Garage Cleaning": 3},
	}

	pruned := PruneExtras(ServiceDeep, sel)
	require.NotContains(t, pruned.ExtrasQuantities, "Garage Cleaning")
}
