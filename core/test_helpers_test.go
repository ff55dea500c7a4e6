package core_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/core"
)

// node builds a node record with the three required keys.
func node(id int, name, typ string) core.Record {
	return core.Record{"id": strconv.Itoa(id), "name": name, "type": typ}
}

// edge builds an edge record; accessible and directed are "Y"/"N".
func edge(u, v int, weight, accessible, directed string) core.Record {
	return core.Record{
		"u_node":        strconv.Itoa(u),
		"v_node":        strconv.Itoa(v),
		"weight":        weight,
		"if_accessible": accessible,
		"if_directed":   directed,
	}
}

// entranceCoasterShop is the three-attraction park used across tests:
//
//	1 Entrance --100(Y, one-way)--> 2 Coaster <--50(N, both ways)--> 3 Shop
func entranceCoasterShop(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Construct(
		[]core.Record{
			node(1, "Entrance", "E"),
			node(2, "Coaster", "E"),
			node(3, "Shop", "S"),
		},
		[]core.Record{
			edge(1, 2, "100", "Y", "Y"),
			edge(2, 3, "50", "N", "N"),
		},
	)
	require.NoError(t, err)

	return g
}
