package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, scale float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, hudFace, op)
}

func drawTextCentered(screen *ebiten.Image, s string, cx, y float64, clr color.Color, scale float64) {
	w, _ := ebtext.Measure(s, hudFace, 0)
	drawText(screen, s, cx-w*scale/2, y, clr, scale)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.snapshot

	drawText(screen, fmt.Sprintf("Score: %d", snap.Stats.Score), 20, 16, color.White, 2)
	drawText(screen, fmt.Sprintf("Kills: %d", snap.Stats.Kills), 20, 44, color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}, 1.5)

	cx := g.cfg.Arena.Width / 2
	if snap.Combo.Streak > 1 {
		clr := color.NRGBA{R: 0xff, G: 0xe6, B: 0x00, A: 0xff}
		if snap.Combo.Streak >= 10 {
			clr = color.NRGBA{R: 0xff, G: 0x32, B: 0x32, A: 0xff}
		}
		drawTextCentered(screen, fmt.Sprintf("%d COMBO!", snap.Combo.Streak), cx, 80, clr, 3)
		if snap.Combo.Window > 0 {
			barW := float32(200 * snap.Combo.Remaining / snap.Combo.Window)
			vector.DrawFilledRect(screen, float32(cx)-100, 120, barW, 8, clr, false)
		}
	}

	drawTextCentered(screen, "Shift: DASH | Space: ATTACK", cx, 40, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, 1)

	if g.debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
			"FPS: %.1f  TPS: %.1f  entities: %d  particles: %d  shake: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			len(snap.Entities), len(snap.Particles), snap.Shake,
		), 8, int(g.cfg.Arena.Height)-20)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w := float32(g.cfg.Arena.Width)
	h := float32(g.cfg.Arena.Height)
	vector.DrawFilledRect(screen, 0, 0, w, h, color.NRGBA{A: 200}, false)

	cx := g.cfg.Arena.Width / 2
	cy := g.cfg.Arena.Height / 2
	drawTextCentered(screen, "GAME OVER", cx, cy-80, color.White, 5)
	drawTextCentered(screen, fmt.Sprintf("Final Score: %d", g.session.FinalScore()), cx, cy, color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}, 2)
	if best := g.scores.Best(); best > 0 {
		drawTextCentered(screen, fmt.Sprintf("Best: %d", best), cx, cy+30, color.NRGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}, 2)
	}
	drawTextCentered(screen, "Press R to Restart", cx, cy+80, color.NRGBA{R: 0x96, G: 0x96, B: 0x96, A: 0xff}, 2)
}
