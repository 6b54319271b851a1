package main

import (
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/milk9111/nightblade/config"
	"github.com/milk9111/nightblade/sim"
)

// Game is the ebiten shell around the simulation core. It feeds wall-clock
// deltas into the session's fixed-step accumulator each frame and renders the
// resulting snapshot; the core never sees ebiten.
type Game struct {
	cfg        config.Config
	configPath string
	debug      bool
	log        *zap.Logger

	session  *sim.Session
	snapshot sim.Snapshot
	lastTick time.Time

	paused  bool
	pauseUI *ebitenui.UI

	scores     *ScoreFile
	savedScore bool

	watcher    *config.Watcher
	pendingCfg *config.Config
}

func NewGame(cfg config.Config, configPath string, debug bool, logger *zap.Logger) (*Game, error) {
	session, err := sim.NewSession(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		configPath: configPath,
		debug:      debug,
		log:        logger,
		session:    session,
		snapshot:   session.Snapshot(),
		scores:     NewScoreFile(defaultScorePath, logger),
	}
	g.pauseUI = NewPauseUI(g)

	if configPath != "" {
		w, err := config.NewWatcher(configPath, cfg.ScriptPath)
		if err != nil {
			logger.Warn("config watcher unavailable", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.pollConfigReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.snapshot.Over {
		g.paused = !g.paused
		g.lastTick = time.Time{}
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.snapshot.Over {
		g.persistScore()
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			return g.restart()
		}
		return nil
	}

	now := time.Now()
	wallDt := 0.0
	if !g.lastTick.IsZero() {
		wallDt = now.Sub(g.lastTick).Seconds()
	}
	g.lastTick = now

	intent := PollIntent()
	if _, err := g.session.Advance(wallDt, intent); err != nil {
		// entity-table corruption is a resolver bug, not a recoverable state
		return err
	}
	g.snapshot = g.session.Snapshot()
	return nil
}

// restart starts a fresh session, applying any config picked up by the
// watcher since the last one.
func (g *Game) restart() error {
	if g.pendingCfg != nil {
		g.cfg = *g.pendingCfg
		g.pendingCfg = nil
		g.log.Info("applied reloaded config")
	}
	session, err := sim.NewSession(g.cfg, g.log)
	if err != nil {
		return err
	}
	g.session = session
	g.snapshot = session.Snapshot()
	g.savedScore = false
	g.lastTick = time.Time{}
	return nil
}

func (g *Game) persistScore() {
	if g.savedScore {
		return
	}
	g.savedScore = true
	g.scores.Record(g.session.FinalScore())
}

// pollConfigReload drains watcher events without blocking; a reloaded config
// applies to the next session, never mid-run.
func (g *Game) pollConfigReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(g.configPath)
			if err != nil {
				g.log.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
				continue
			}
			g.pendingCfg = &cfg
			g.log.Info("config reload staged for next session", zap.String("path", path))
		case err, ok := <-g.watcher.Errors:
			if ok && err != nil {
				g.log.Warn("config watcher error", zap.Error(err))
			}
			if !ok {
				g.watcher = nil
				return
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
	g.drawHUD(screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.snapshot.Over {
		g.drawGameOver(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.Arena.Width), int(g.cfg.Arena.Height)
}
