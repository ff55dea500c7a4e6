// Package routing computes turn-by-turn walking routes on a park map.
//
// Overview:
//
//   - FindShortestPath returns the minimum-weight directed route between two
//     attractions, as a distance plus the ordered hops with node names for
//     presentation.
//   - FindShortestPathAccessible does the same for visitors who cannot use
//     inaccessible paths: those paths are weighted at BlockedWeight (100000)
//     on a derived copy of the graph, and any route reaching that total is
//     reported as not found.
//
// Outcomes:
//
//   - Found route:    Route.Found == true, Distance and Hops set.
//   - No usable path: Route.Found == false; Route.Err() yields a *NoPathError
//     naming both endpoints (errors.Is(err, ErrNoPathFound)). This is an
//     ordinary result, not a failure of the call.
//   - Unknown node:   the call fails with an error wrapping ErrInvalidNodeReference.
//
// Thread safety:
//
//   - Queries only read the caller's graph, so they may run concurrently.
//
// Example:
//
//	route, err := routing.FindShortestPath(g, 1, 3)
//	if err != nil {
//	    return err
//	}
//	if !route.Found {
//	    fmt.Println(route.Err())
//	}
package routing
