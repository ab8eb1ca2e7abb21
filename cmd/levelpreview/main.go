// Command levelpreview renders a single generated level as a grid of
// colored tiles, for visually sanity-checking the platform procgen
// pipeline without wiring it into a full game client.
package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/ncruces/zenity"
	"github.com/opd-ai/venture/pkg/logging"
	"github.com/opd-ai/venture/pkg/procgen/platform"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"
)

const tileSize = 16

var (
	seed       = flag.Uint64("seed", 12345, "Run seed")
	biomeFlag  = flag.String("biome", "ocean_depths", "Biome id (ocean_depths, coral_reefs, tropical_shore, shipwreck, arctic_waters, volcanic_vents, sunken_ruins, abyss)")
	presetFlag = flag.String("preset", "standard", "Difficulty preset (casual, standard, challenge)")
	levelIndex = flag.Int("level", 0, "Level index within the run")
	roguelite  = flag.Bool("linked", true, "Generate a linked multi-segment level instead of a single archetype room")
)

func parsePreset(s string) platform.DifficultyPreset {
	switch s {
	case "casual":
		return platform.PresetCasual
	case "challenge":
		return platform.PresetChallenge
	default:
		return platform.PresetStandard
	}
}

// Game implements the Ebiten game interface for the level preview.
type Game struct {
	level  platform.GeneratedLevel
	biome  string
	preset string
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return fmt.Errorf("quit")
	}
	return nil
}

func tileColor(ch rune) color.Color {
	switch ch {
	case '#':
		return color.RGBA{R: 60, G: 60, B: 70, A: 255}
	case '_':
		return color.RGBA{R: 120, G: 90, B: 50, A: 255}
	case 'P':
		return color.RGBA{R: 60, G: 200, B: 90, A: 255}
	case '>':
		return color.RGBA{R: 220, G: 200, B: 40, A: 255}
	case '*':
		return color.RGBA{R: 230, G: 230, B: 60, A: 255}
	case 'O':
		return color.RGBA{R: 200, G: 80, B: 160, A: 255}
	case 'C':
		return color.RGBA{R: 200, G: 40, B: 40, A: 255}
	case '^':
		return color.RGBA{R: 255, G: 100, B: 30, A: 255}
	case '@':
		return color.RGBA{R: 60, G: 160, B: 220, A: 255}
	case ' ':
		return color.RGBA{R: 10, G: 20, B: 35, A: 255}
	default:
		return color.RGBA{R: 100, G: 100, B: 100, A: 255}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 5, G: 10, B: 20, A: 255})

	for y, row := range g.level.Tilemap {
		for x, ch := range row {
			tile := ebiten.NewImage(tileSize-1, tileSize-1)
			tile.Fill(tileColor(ch))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*tileSize), float64(y*tileSize)+20)
			screen.DrawImage(tile, op)
		}
	}

	label := fmt.Sprintf("%s | biome=%s preset=%s seed=%d completable=%v",
		g.level.Name, g.biome, g.preset, g.level.Seed, g.level.Result.IsCompletable)
	text.Draw(screen, label, basicfont.Face7x13, 4, 14, color.White)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	width, height := 800, 600
	if len(g.level.Tilemap) > 0 {
		height = len(g.level.Tilemap)*tileSize + 24
		width = len(g.level.Tilemap[0])*tileSize + 24
	}
	return width, height
}

func fatalDialog(logger *logrus.Logger, title string, err error) {
	logger.WithError(err).Error(title)
	if dialogErr := zenity.Error(err.Error(), zenity.Title(title)); dialogErr != nil {
		logger.WithError(dialogErr).Warn("failed to show error dialog")
	}
}

func main() {
	flag.Parse()
	logger := logging.TestUtilityLogger("levelpreview")

	biome, ok := platform.ParseBiomeID(*biomeFlag)
	if !ok {
		err := fmt.Errorf("unknown biome %q", *biomeFlag)
		fatalDialog(logger, "Level generation failed", err)
		logger.WithError(err).Fatal("invalid biome flag")
	}
	preset := parsePreset(*presetFlag)

	pool, err := platform.LoadEmbeddedPool()
	if err != nil {
		fatalDialog(logger, "Level generation failed", err)
		logger.WithError(err).Fatal("failed to load embedded segment pool")
	}

	manager := platform.NewGenerationManagerWithLogger(logger)
	manager.LoadPool(pool)
	manager.InitSequencer(*seed)

	var level platform.GeneratedLevel
	if *roguelite {
		level, err = manager.GenerateRogueliteLevel(biome, preset, *levelIndex, *seed)
	} else {
		level, err = manager.GenerateArchetypeLevel(biome, preset, *levelIndex, false, *seed)
	}
	if err != nil {
		fatalDialog(logger, "Level generation failed", err)
		logger.WithError(err).Fatal("level generation failed")
	}

	logger.WithFields(logrus.Fields{
		"biome":  biome.String(),
		"preset": preset.String(),
		"seed":   *seed,
		"name":   level.Name,
	}).Info("level generated")

	game := &Game{level: level, biome: biome.String(), preset: preset.String()}
	windowWidth, windowHeight := game.Layout(0, 0)
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Level Preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(game); err != nil && err.Error() != "quit" {
		logger.WithError(err).Fatal("game error")
	}
}
