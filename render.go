package main

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/nightblade/sim"
)

var (
	colorBackground = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x32, A: 0xff}
	colorPlayer     = color.NRGBA{R: 0x64, G: 0x96, B: 0xff, A: 0xff}
	colorPlayerDash = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorPlayerHurt = color.NRGBA{R: 0x96, G: 0xc8, B: 0xff, A: 0xff}
	colorEnemy      = color.NRGBA{R: 0xc8, G: 0x32, B: 0x32, A: 0xff}
	colorEnemyDazed = color.NRGBA{R: 0xff, G: 0x78, B: 0x78, A: 0xff}
	colorBlood      = color.NRGBA{R: 0xdc, G: 0x28, B: 0x28, A: 0xff}
	colorDust       = color.NRGBA{R: 0xdc, G: 0xdc, B: 0xc8, A: 0xff}
	colorSpark      = color.NRGBA{R: 0xff, G: 0xe6, B: 0x64, A: 0xff}
)

const (
	playerRadius = 14
	enemyRadius  = 12
)

// drawWorld renders the snapshot with the current shake applied as a whole
// frame offset.
func (g *Game) drawWorld(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	var shakeX, shakeY float32
	if mag := g.snapshot.Shake; mag > 0 {
		shakeX = float32((rand.Float64()*2 - 1) * mag)
		shakeY = float32((rand.Float64()*2 - 1) * mag)
	}

	for _, p := range g.snapshot.Particles {
		g.drawParticle(screen, p, shakeX, shakeY)
	}
	for _, e := range g.snapshot.Entities {
		g.drawEntity(screen, e, shakeX, shakeY)
	}
}

func (g *Game) drawEntity(screen *ebiten.Image, e sim.EntityView, dx, dy float32) {
	if e.State == sim.StateDead && e.Kind == sim.KindEnemy {
		return
	}
	x := float32(e.Pos.X) + dx
	y := float32(e.Pos.Y) + dy

	switch e.Kind {
	case sim.KindPlayer:
		clr := colorPlayer
		switch {
		case e.State == sim.StateDashing:
			clr = colorPlayerDash
		case e.Invulnerable:
			clr = colorPlayerHurt
		}
		vector.DrawFilledCircle(screen, x, y, playerRadius, clr, true)
		// facing tick
		fx := x + float32(e.Facing.X)*playerRadius
		fy := y + float32(e.Facing.Y)*playerRadius
		vector.StrokeLine(screen, x, y, fx, fy, 2, color.White, true)
		g.drawHealthBar(screen, e, x, y-playerRadius-8)
	case sim.KindEnemy:
		clr := colorEnemy
		if e.State == sim.StateStaggered {
			clr = colorEnemyDazed
		}
		vector.DrawFilledCircle(screen, x, y, enemyRadius, clr, true)
	}
}

func (g *Game) drawHealthBar(screen *ebiten.Image, e sim.EntityView, x, y float32) {
	const barW, barH = float32(2 * playerRadius), float32(4)
	frac := float32(0)
	if e.MaxHealth > 0 {
		frac = float32(e.Health) / float32(e.MaxHealth)
	}
	vector.DrawFilledRect(screen, x-barW/2, y, barW, barH, color.NRGBA{R: 0x96, A: 0xff}, false)
	vector.DrawFilledRect(screen, x-barW/2, y, barW*frac, barH, color.NRGBA{G: 0xc8, A: 0xff}, false)
}

func (g *Game) drawParticle(screen *ebiten.Image, p sim.ParticleView, dx, dy float32) {
	var clr color.NRGBA
	switch p.Kind {
	case sim.ParticleBlood:
		clr = colorBlood
	case sim.ParticleDust:
		clr = colorDust
	default:
		clr = colorSpark
	}
	// fade and shrink with remaining life
	clr.A = uint8(255 * p.LifeFraction)
	r := float32(1 + 2*p.LifeFraction)
	vector.DrawFilledCircle(screen, float32(p.Pos.X)+dx, float32(p.Pos.Y)+dy, r, clr, false)
}
