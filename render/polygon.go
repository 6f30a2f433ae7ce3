// Package render draws lander bodies and terrain with Ebitengine.
//
// All functions map world coordinates through a lander.Viewport and perform
// no physics.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/lander"
)

// --- White pixel singleton ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used as the source texture for untextured polygons.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.White)
	}
	return whitePixelImage
}

// Polygon fills a convex mesh with clr. Meshes with fewer than three
// vertices draw nothing.
func Polygon(dst *ebiten.Image, mesh []lander.Position, vp *lander.Viewport, clr color.Color) {
	verts, inds := buildPolygonFan(mesh, vp, clr)
	if verts == nil {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(verts, inds, ensureWhitePixel(), op)
}

// Polyline strokes consecutive points, e.g. the terrain surface.
func Polyline(dst *ebiten.Image, points []lander.Position, vp *lander.Viewport, width float32, clr color.Color) {
	for i := 0; i+1 < len(points); i++ {
		p1 := vp.TranslatePos(points[i])
		p2 := vp.TranslatePos(points[i+1])
		vector.StrokeLine(dst, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), width, clr, true)
	}
}

// Bodies fills every body's mesh, using fixedClr for fixed bodies and clr
// for the rest. Bodies entirely outside the screen are skipped.
func Bodies(dst *ebiten.Image, bodies []*lander.RigidBody, vp *lander.Viewport, clr, fixedClr color.Color) {
	b := dst.Bounds()
	visible := vp.VisibleBounds(float64(b.Dx()), float64(b.Dy()))
	for _, body := range bodies {
		if !visible.Intersects(body.Bounds()) {
			continue
		}
		c := clr
		if body.Fixed() {
			c = fixedClr
		}
		Polygon(dst, body.Mesh(), vp, c)
	}
}

// buildPolygonFan generates screen-space vertices and indices for a
// fan-triangulated polygon. N vertices, 3*(N-2) indices.
func buildPolygonFan(mesh []lander.Position, vp *lander.Viewport, clr color.Color) ([]ebiten.Vertex, []uint16) {
	n := len(mesh)
	if n < 3 {
		return nil, nil
	}

	r, g, b, a := clr.RGBA()
	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, p := range mesh {
		s := vp.TranslatePos(p)
		verts[i] = ebiten.Vertex{
			DstX: float32(s.X),
			DstY: float32(s.Y),
			// Untextured: map to center of white pixel (0.5, 0.5)
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}
