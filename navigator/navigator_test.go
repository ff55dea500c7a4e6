package navigator_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/navigator"
	"github.com/katalvlaran/magicmap/routing"
)

func park(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.Construct(
		[]core.Record{
			{"id": "1", "name": "Entrance", "type": "E", "minimum_height": "0"},
			{"id": "2", "name": "Coaster", "type": "E", "minimum_height": "48"},
			{"id": "3", "name": "Shop", "type": "S", "minimum_height": "0"},
		},
		[]core.Record{
			{"u_node": "1", "v_node": "2", "weight": "100", "if_accessible": "Y", "if_directed": "Y"},
			{"u_node": "2", "v_node": "3", "weight": "50", "if_accessible": "N", "if_directed": "N"},
		},
	)
	require.NoError(t, err)

	return g
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, navigator.New(park(t), strings.NewReader(input), &out).Run())

	return out.String()
}

func TestRun_PlainQueries(t *testing.T) {
	// Query 1→3, then reuse 3 as the start for 3→2, then stop.
	out := run(t, "n\n1\n3\ny\n\n2\nn\n")

	assert.Contains(t, out, "The shortest distance from 1(Entrance) to 3(Shop) is 150 feet")
	assert.Contains(t, out, "1(Entrance) ----> 2(Coaster)\n2(Coaster) ----> 3(Shop)\n")
	assert.Contains(t, out, "The shortest distance from 3(Shop) to 2(Coaster) is 50 feet")
	assert.True(t, strings.HasSuffix(out, "End navigation!\n"))
}

func TestRun_AccessibleQuery(t *testing.T) {
	out := run(t, "Y\n1\n3\nN\n")
	assert.Contains(t, out, "Sorry, there is no path from 1(Entrance) to 3(Shop) for you.")

	out = run(t, "y\n1\n2\nn\n")
	assert.Contains(t, out, "The shortest distance from 1(Entrance) to 2(Coaster) is 100 feet")
}

func TestRun_BadInputIsRetried(t *testing.T) {
	// Invalid Y/N, empty start, non-numeric start, empty end, unknown target, invalid Y/N.
	out := run(t, "maybe\nn\n\nabc\n1\n\n1\n9\nx\nn\n")

	assert.Contains(t, out, "Invalid input! Try again!")
	assert.Contains(t, out, "You must enter the start point!")
	assert.Contains(t, out, `Invalid input "abc"! Try again!`)
	assert.Contains(t, out, "You must enter the end point!")
	assert.Contains(t, out, "There is no attraction with ID 9 (end) here. Try again!")
	assert.NotContains(t, out, "ID 1 (start)")
	assert.True(t, strings.HasSuffix(out, "End navigation!\n"))
}

func TestRun_UnknownEndpointIsNamed(t *testing.T) {
	// Unknown start, then both unknown, then the same unknown ID twice.
	out := run(t, "n\n7\n2\ny\n7\n8\ny\n5\n5\nn\n")

	assert.Contains(t, out, "There is no attraction with ID 7 (start) here. Try again!")
	assert.Contains(t, out, "There are no attractions with ID 7 (start) or 8 (end) here. Try again!")
	assert.Contains(t, out, "There is no attraction with ID 5 (start) here. Try again!")
	assert.Equal(t, 1, strings.Count(out, "(end) here"))
}

func TestRun_EndOfInput(t *testing.T) {
	out := run(t, "n\n1\n")
	assert.NotContains(t, out, "End navigation!")
}

func TestListAttractions(t *testing.T) {
	var out bytes.Buffer
	navigator.ListAttractions(&out, park(t))

	want := "Attraction ID: 2\nName: Coaster\nType: Entertainment\nMinimum Height: 48\n" +
		"=================================\n"
	assert.True(t, strings.HasPrefix(out.String(), want), out.String())
	assert.Equal(t, 3, strings.Count(out.String(), "Attraction ID:"))
}

func TestFormatRoute_SameNode(t *testing.T) {
	route, err := routing.FindShortestPath(park(t), 2, 2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, navigator.FormatRoute(&out, route))
	assert.Equal(t, "The shortest distance from 2(Coaster) to 2(Coaster) is 0 feet\nYou are already there!\n", out.String())
}
