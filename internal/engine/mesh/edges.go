package mesh

import (
	stdmath "math"

	"github.com/hydroavia/showcase/pkg/math"
)

// DefaultEdgeThreshold is the crease angle, in degrees, above which an edge
// between two faces is kept as a feature line.
const DefaultEdgeThreshold = 1.0

// edgePrecision quantizes positions when matching shared edges, so vertices
// written separately per face still weld.
const edgePrecision = 1e4

type pointKey [3]int64

type edgeKey struct{ a, b pointKey }

type halfEdge struct {
	a, b   [3]float32
	normal math.Vec3
}

// Edges returns feature lines: edges between faces whose normals differ by
// more than thresholdDeg, plus open boundary edges. Output is [x, y, z]
// pairs, six floats per segment. Degenerate faces are skipped.
func (g *Geometry) Edges(thresholdDeg float64) []float32 {
	cosThreshold := float32(stdmath.Cos(thresholdDeg * stdmath.Pi / 180))

	open := make(map[edgeKey]halfEdge)
	var out []float32

	for i := 0; i+2 < len(g.Vertices); i += 3 {
		pos := [3][3]float32{g.Vertices[i].Position, g.Vertices[i+1].Position, g.Vertices[i+2].Position}
		keys := [3]pointKey{quantize(pos[0]), quantize(pos[1]), quantize(pos[2])}
		if keys[0] == keys[1] || keys[1] == keys[2] || keys[2] == keys[0] {
			continue
		}

		normal := faceNormal(vec(pos[0]), vec(pos[1]), vec(pos[2]))
		for j := 0; j < 3; j++ {
			next := (j + 1) % 3
			fwd := edgeKey{keys[j], keys[next]}
			rev := edgeKey{keys[next], keys[j]}

			other, ok := open[rev]
			key := rev
			if !ok {
				// Same direction twice means the neighbour is wound the other
				// way; flip its normal before comparing.
				if other, ok = open[fwd]; ok {
					other.normal = other.normal.Scale(-1)
					key = fwd
				}
			}
			if ok {
				if normal.Dot(other.normal) <= cosThreshold {
					out = appendSegment(out, other.a, other.b)
				}
				delete(open, key)
				continue
			}
			open[fwd] = halfEdge{a: pos[j], b: pos[next], normal: normal}
		}
	}

	for _, e := range open {
		out = appendSegment(out, e.a, e.b)
	}
	return out
}

func quantize(p [3]float32) pointKey {
	return pointKey{
		int64(stdmath.Round(float64(p[0]) * edgePrecision)),
		int64(stdmath.Round(float64(p[1]) * edgePrecision)),
		int64(stdmath.Round(float64(p[2]) * edgePrecision)),
	}
}
