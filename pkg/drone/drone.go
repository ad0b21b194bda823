// Package drone builds the HydroAvia 14" drone frame mesh procedurally.
// All dimensions are millimeters, Z up.
package drone

import (
	"math"

	"github.com/hydroavia/showcase/pkg/stl"
)

// Header is the binary STL header written for the frame.
const Header = `HydroAvia 14" Drone Frame`

// ArmLength is the distance from the frame center to each motor axis.
const ArmLength = 125.0

// Diagonal angles of the four arms, degrees.
var armAngles = [4]float64{45, 135, 225, 315}

type vec [3]float64

type tri [3]vec

// boxFaces indexes the 8 corners of a box (bottom ring then top ring).
var boxFaces = [12][3]int{
	{0, 3, 1}, {1, 3, 2}, {4, 5, 7}, {5, 6, 7}, {0, 1, 5}, {0, 5, 4},
	{2, 3, 7}, {2, 7, 6}, {0, 4, 7}, {0, 7, 3}, {1, 2, 6}, {1, 6, 5},
}

// Part is one named component of the frame, for reporting.
type Part struct {
	Name      string
	Triangles int
}

// Frame returns the full frame as an STL model plus a per-part breakdown.
func Frame() (*stl.Model, []Part) {
	var (
		tris  []tri
		parts []Part
	)
	add := func(name string, t []tri) {
		tris = append(tris, t...)
		parts = append(parts, Part{Name: name, Triangles: len(t)})
	}

	add("electronics housing", box(80, 80, 30, vec{0, 0, 0}))

	var arms, motors, guards, gear []tri
	for _, deg := range armAngles {
		rad := deg * math.Pi / 180
		mx, my := ArmLength*math.Cos(rad), ArmLength*math.Sin(rad)

		arms = append(arms, arm(ArmLength, 25, 10, deg, vec{0, 0, -5})...)
		motors = append(motors, cylinder(12, 8, 16, vec{mx, my, -5})...)

		guards = append(guards, ring(60, 4, 40, 24, vec{mx, my, -5})...)
		for _, strut := range [3]float64{0, 120, 240} {
			sr := strut * math.Pi / 180
			guards = append(guards, box(3, 3, 40, vec{mx + 58*math.Cos(sr), my + 58*math.Sin(sr), 15})...)
		}

		gx, gy := 50*math.Cos(rad), 50*math.Sin(rad)
		gear = append(gear, cylinder(6, 60, 8, vec{gx, gy, -75})...)
		gear = append(gear, cylinder(15, 5, 12, vec{gx, gy, -135})...)
	}
	add("arms", arms)
	add("motor mounts", motors)

	var cams []tri
	cams = append(cams, box(15, 15, 20, vec{-20, 50, 5})...)
	cams = append(cams, box(15, 15, 20, vec{20, 50, 5})...)
	cams = append(cams, box(55, 8, 8, vec{0, 50, 15})...)
	add("stereo cameras", cams)

	var leds []tri
	for _, p := range [4][2]float64{{30, 30}, {-30, 30}, {30, -30}, {-30, -30}} {
		leds = append(leds, cylinder(3, 15, 8, vec{p[0], p[1], 15})...)
	}
	add("LED mounts", leds)
	add("prop guards", guards)
	add("landing gear", gear)

	model := &stl.Model{Name: Header, Triangles: make([]stl.Triangle, len(tris))}
	for i, t := range tris {
		model.Triangles[i] = toSTL(t)
	}
	return model, parts
}

// toSTL stores the raw (unnormalized) face normal, as the frame has always
// been exported.
func toSTL(t tri) stl.Triangle {
	e1 := vec{t[1][0] - t[0][0], t[1][1] - t[0][1], t[1][2] - t[0][2]}
	e2 := vec{t[2][0] - t[0][0], t[2][1] - t[0][1], t[2][2] - t[0][2]}
	n := vec{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}

	var out stl.Triangle
	out.Normal = f32(n)
	for i, v := range t {
		out.Vertices[i] = f32(v)
	}
	return out
}

func f32(v vec) [3]float32 {
	return [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
}

func facesOf(corners [8]vec) []tri {
	out := make([]tri, len(boxFaces))
	for i, f := range boxFaces {
		out[i] = tri{corners[f[0]], corners[f[1]], corners[f[2]]}
	}
	return out
}

func box(sx, sy, sz float64, c vec) []tri {
	dx, dy, dz := sx/2, sy/2, sz/2
	return facesOf([8]vec{
		{c[0] - dx, c[1] - dy, c[2] - dz}, {c[0] + dx, c[1] - dy, c[2] - dz},
		{c[0] + dx, c[1] + dy, c[2] - dz}, {c[0] - dx, c[1] + dy, c[2] - dz},
		{c[0] - dx, c[1] - dy, c[2] + dz}, {c[0] + dx, c[1] - dy, c[2] + dz},
		{c[0] + dx, c[1] + dy, c[2] + dz}, {c[0] - dx, c[1] + dy, c[2] + dz},
	})
}

// arm is a box running from the origin along +X for length, then rotated
// about Z by deg and moved to c.
func arm(length, width, height, deg float64, c vec) []tri {
	rad := deg * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	hw, hh := width/2, height/2

	local := [8]vec{
		{0, -hw, -hh}, {length, -hw, -hh}, {length, hw, -hh}, {0, hw, -hh},
		{0, -hw, hh}, {length, -hw, hh}, {length, hw, hh}, {0, hw, hh},
	}
	var corners [8]vec
	for i, v := range local {
		corners[i] = vec{v[0]*cos - v[1]*sin + c[0], v[0]*sin + v[1]*cos + c[1], v[2] + c[2]}
	}
	return facesOf(corners)
}

func circle(r, z float64, segments int, c vec) []vec {
	pts := make([]vec, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = vec{c[0] + r*math.Cos(a), c[1] + r*math.Sin(a), z}
	}
	return pts
}

// cylinder has its base at c and extends height along +Z.
func cylinder(r, height float64, segments int, c vec) []tri {
	bottom := circle(r, c[2], segments, c)
	top := circle(r, c[2]+height, segments, c)
	bc, tc := c, vec{c[0], c[1], c[2] + height}

	out := make([]tri, 0, 4*segments)
	for i := 0; i < segments; i++ {
		out = append(out, tri{bc, bottom[i], bottom[(i+1)%segments]})
	}
	for i := 0; i < segments; i++ {
		out = append(out, tri{tc, top[(i+1)%segments], top[i]})
	}
	for i := 0; i < segments; i++ {
		j := (i + 1) % segments
		out = append(out, tri{bottom[i], bottom[j], top[i]}, tri{bottom[j], top[j], top[i]})
	}
	return out
}

// ring is a hollow cylinder of the given mid radius and wall thickness.
func ring(radius, thickness, height float64, segments int, c vec) []tri {
	outerR, innerR := radius+thickness/2, radius-thickness/2
	at := func(r, a, z float64) vec {
		return vec{c[0] + r*math.Cos(a), c[1] + r*math.Sin(a), z}
	}

	out := make([]tri, 0, 8*segments)
	z0, z1 := c[2], c[2]+height
	for i := 0; i < segments; i++ {
		a1 := 2 * math.Pi * float64(i) / float64(segments)
		a2 := 2 * math.Pi * float64(i+1) / float64(segments)

		o1b, o2b, o1t, o2t := at(outerR, a1, z0), at(outerR, a2, z0), at(outerR, a1, z1), at(outerR, a2, z1)
		i1b, i2b, i1t, i2t := at(innerR, a1, z0), at(innerR, a2, z0), at(innerR, a1, z1), at(innerR, a2, z1)

		out = append(out,
			tri{o1b, o2b, o1t}, tri{o2b, o2t, o1t}, // outer wall
			tri{i1b, i1t, i2b}, tri{i2b, i1t, i2t}, // inner wall
			tri{o1b, i1b, o2b}, tri{o2b, i1b, i2b}, // bottom
			tri{o1t, o2t, i1t}, tri{o2t, i2t, i1t}, // top
		)
	}
	return out
}
