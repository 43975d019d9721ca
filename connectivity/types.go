// SPDX-License-Identifier: MIT

package connectivity

import "errors"

// ErrGraphNil is returned when a nil *core.Graph is passed in.
var ErrGraphNil = errors.New("connectivity: graph is nil")

// minTriconnectedOrder is the smallest vertex count of a 3-connected graph.
const minTriconnectedOrder = 4

// ErrStartVertexNotFound is returned when Reach starts from a missing vertex.
var ErrStartVertexNotFound = errors.New("connectivity: start vertex not found")
