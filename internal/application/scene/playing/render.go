package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/masks/internal/application/level"
	"github.com/younwookim/masks/internal/application/state"
	"github.com/younwookim/masks/internal/domain/entity"
	"github.com/younwookim/masks/internal/infrastructure/asset"
	"github.com/younwookim/masks/internal/infrastructure/config"
)

// renderer draws a session. It only reads simulation state; world to screen
// is entity position minus camera position.
type renderer struct {
	cfg     *config.LevelConfig
	assets  *asset.Provider
	palette palette
}

func newRenderer(cfg *config.LevelConfig, assets *asset.Provider) *renderer {
	return &renderer{
		cfg:     cfg,
		assets:  assets,
		palette: newPalette(cfg.Theme),
	}
}

func (r *renderer) image(name string) (*ebiten.Image, bool) {
	if r.assets == nil {
		return nil, false
	}
	img, ok := r.assets.Image(name)
	return img, ok && img != nil
}

func (r *renderer) draw(screen *ebiten.Image, s *level.Session) {
	cam := s.Camera()
	lvl := s.Level()

	r.drawBackground(screen)

	for _, p := range lvl.Platforms {
		rect := p.Rect()
		if !cam.Visible(rect) {
			continue
		}
		r.drawSprite(screen, cam, rect, p.Sprite, r.palette.platform, false)
	}

	if !lvl.Goal.Collected {
		rect := lvl.Goal.DisplayRect(s.Frame())
		if cam.Visible(rect) {
			r.drawSprite(screen, cam, rect, r.cfg.Goal.Sprite, r.palette.goal, false)
		}
	}

	player := lvl.Player
	r.drawSprite(screen, cam, player.Rect(), r.cfg.Player.Sprite, r.palette.player, player.Facing == entity.FacingLeft)

	if r.palette.vignette.A > 0 {
		w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
		ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), r.palette.vignette)
	}
}

func (r *renderer) drawBackground(screen *ebiten.Image) {
	img, ok := r.image(r.cfg.Theme.Background)
	if !ok {
		screen.Fill(r.palette.sky)
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(b.Dx()), float64(h)/float64(b.Dy()))
	screen.DrawImage(img, op)
}

// drawSprite draws the named image stretched over rect, or a filled
// rectangle while the image is not ready
func (r *renderer) drawSprite(screen *ebiten.Image, cam *entity.Camera, rect entity.Rect, name string, fallback color.RGBA, flip bool) {
	sx, sy := cam.ToScreen(rect.X, rect.Y)

	img, ok := r.image(name)
	if !ok {
		ebitenutil.DrawRect(screen, sx, sy, rect.W, rect.H, fallback)
		return
	}

	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(rect.W/float64(b.Dx()), rect.H/float64(b.Dy()))
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(rect.W, 0)
	}
	op.GeoM.Translate(sx, sy)
	screen.DrawImage(img, op)
}

func (r *renderer) drawHUD(screen *ebiten.Image, s *level.Session) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Lives: %d", s.Lives()), 10, 10)
	ebitenutil.DebugPrintAt(screen, r.cfg.Name, 10, 26)
}

// overlayText returns the message for a halted session, or "" while running
func overlayText(s *level.Session, deathTitle string) string {
	switch s.State() {
	case state.StatePaused:
		return "PAUSED\n\nP/Esc: resume\nR: replay level\nM: main menu"
	case state.StateDead:
		if s.Exhausted() {
			return "GAME OVER\n\nEnter: MAIN MENU"
		}
		if deathTitle == "" {
			deathTitle = "YOU DIED"
		}
		return fmt.Sprintf("%s\n\nLives left: %d\n\nEnter: RETRY", deathTitle, s.Lives())
	case state.StateWon:
		return "MASK COLLECTED!"
	default:
		return ""
	}
}

func (r *renderer) drawOverlay(screen *ebiten.Image, s *level.Session) {
	text := overlayText(s, r.cfg.Theme.DeathTitle)
	if text == "" {
		return
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	bg := colorOverlay
	if s.State() == state.StateDead {
		bg = colorDead
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), bg)
	ebitenutil.DebugPrintAt(screen, text, w/2-60, h/2-30)
}
