package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/render"
)

func TestColor(t *testing.T) {
	assert.Equal(t, "red", render.Color(core.Entertainment))
	assert.Equal(t, "green", render.Color(core.Store))
	assert.Equal(t, "yellow", render.Color(core.FoodStation))
	assert.Equal(t, "gray", render.Color(core.Category("?")))
}

func TestWriteDOT(t *testing.T) {
	g, err := core.Construct(
		[]core.Record{
			{"id": "1", "name": "Entrance", "type": "E"},
			{"id": "2", "name": `Riddler's "Revenge"`, "type": "E"},
			{"id": "3", "name": "Shop", "type": "S"},
			{"id": "4", "name": "Lodge", "type": "F"},
		},
		[]core.Record{
			{"u_node": "1", "v_node": "2", "weight": "100", "if_accessible": "Y", "if_directed": "Y"},
			{"u_node": "3", "v_node": "2", "weight": "50.5", "if_accessible": "N", "if_directed": "N"},
			{"u_node": "3", "v_node": "4", "weight": "10", "if_accessible": "Y", "if_directed": "N"},
		},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, g, render.WithWeights(), render.WithRoute([]int64{1, 2, 3})))

	want := `digraph "magicmap" {
  node [style=filled];
  1 [label="Entrance" fillcolor=red];
  2 [label="Riddler's \"Revenge\"" fillcolor=red];
  3 [label="Shop" fillcolor=green];
  4 [label="Lodge" fillcolor=yellow];
  1 -> 2 [label="100" penwidth=3];
  2 -> 3 [dir=both style=dashed label="50.5" penwidth=3];
  3 -> 4 [dir=both label="10"];
}
`
	assert.Equal(t, want, buf.String())
}

func TestWriteDOT_Name(t *testing.T) {
	g, err := core.Construct([]core.Record{{"id": "7", "name": "Gate", "type": "S"}}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.WriteDOT(&buf, g, render.WithName("north lot")))
	assert.Equal(t, "digraph \"north lot\" {\n  node [style=filled];\n  7 [label=\"Gate\" fillcolor=green];\n}\n", buf.String())
}
