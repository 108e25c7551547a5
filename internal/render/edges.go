package render

import "wirecube/internal/geom"

// Edge is a pair of cube vertex indices.
type Edge [2]int

// Edges returns the twelve cube edges in draw order: for each of the four
// front-face corners, its front edge, the matching back edge and the connector.
func Edges() []Edge {
	edges := make([]Edge, 0, 12)
	for i := 0; i < 4; i++ {
		next := (i + 1) % 4
		edges = append(edges,
			Edge{i, next},
			Edge{i + 4, next + 4},
			Edge{i, i + 4},
		)
	}
	return edges
}

// DrawEdges projects the cube vertices and draws all twelve edges in the
// foreground color. There is no depth test; hidden edges are drawn too.
func DrawEdges(dst LineDrawer, vs *[8]geom.Vertex3D) {
	for _, e := range Edges() {
		p1 := Project(vs[e[0]])
		p2 := Project(vs[e[1]])
		dst.DrawLine(p1.X, p1.Y, p2.X, p2.Y, Foreground)
	}
}
