package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/lander"
)

// HUD holds an offscreen image for the telemetry readout. The text is
// refreshed every ~0.25 seconds.
type HUD struct {
	img        *ebiten.Image
	lastUpdate float64
}

// NewHUD creates a telemetry widget.
func NewHUD() *HUD {
	// 180x84 is enough for five lines of debug font.
	return &HUD{img: ebiten.NewImage(180, 84), lastUpdate: 1}
}

// Update redraws the readout for body if enough time has passed.
func (h *HUD) Update(dt float64, body *lander.RigidBody, colliding bool) {
	h.lastUpdate += dt
	if h.lastUpdate < 0.25 {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, Telemetry(body, colliding))
}

// Draw paints the readout at the top-left corner of dst.
func (h *HUD) Draw(dst *ebiten.Image) {
	dst.DrawImage(h.img, nil)
}

// Telemetry formats the body's state for display.
func Telemetry(body *lander.RigidBody, colliding bool) string {
	if body == nil {
		return "no body"
	}
	c := body.Centroid()
	v := body.Velocity()
	status := "flying"
	if colliding {
		status = "CONTACT"
	}
	return fmt.Sprintf("ALT: %6.2f m\nVX:  %6.2f m/s\nVY:  %6.2f m/s\n%s\nFPS: %.1f",
		c.Y, v.X, v.Y, status, ebiten.ActualFPS())
}
