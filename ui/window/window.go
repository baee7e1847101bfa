// Package window plays gomaze in a desktop window, drawn with pixel. Run must
// be called from within pixelgl.Run.
package window

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	log "github.com/sirupsen/logrus"
	"github.com/they4kman/gomaze/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	DefaultScale = 2.0

	// Height of the status bar below the maze, in unscaled pixels
	statusHeight = 16
	title        = "gomaze"
)

type Options struct {
	// Pixels per spritesheet pixel
	Scale float64
	// Optional PNG replacing the built-in spritesheet
	Spritesheet string
}

func Run(config game.GameConfig, options Options) error {
	scale := options.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	if config.Width == 0 || config.Height == 0 {
		monitorWidth, monitorHeight := pixelgl.PrimaryMonitor().Size()
		tile := game.TileSize * scale
		config = config.FitTo(int(monitorWidth/tile), int((monitorHeight-statusHeight*scale)/tile))
	}

	g, err := game.NewGame(config)
	if err != nil {
		return err
	}

	sheet, err := loadSpritesheet(options.Spritesheet)
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: windowBounds(g.Maze(), scale),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Destroy()
	win.SetMatrix(pixel.IM.Scaled(pixel.ZV, scale))

	batch := pixel.NewBatch(&pixel.TrianglesData{}, sheet.picture)
	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	statusText := text.New(pixel.V(4, 4), basicAtlas)

	buttons := buttonsFor(config.Bindings)
	ticks := game.TickAccumulator{Period: config.TickPeriod}

	resetGame := func(seed int64) {
		next := config
		next.Seed = seed
		ng, err := game.NewGame(next)
		if err != nil {
			log.WithError(err).Error("Could not start a new game")
			return
		}
		g = ng
		ticks.Reset()

		// Keys still held from the last game carry over
		for key, button := range buttons {
			if win.Pressed(button) {
				g.KeyDown(key)
			}
		}
	}

	var (
		frames = 0
		second = time.Tick(time.Second)
		last   = time.Now()
	)

	for !win.Closed() {
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		for key, button := range buttons {
			if win.JustPressed(button) {
				g.KeyDown(key)
			}
			if win.JustReleased(button) {
				g.KeyUp(key)
			}
		}

		if g.State() == game.Won {
			// Start a new maze with Enter
			if win.JustPressed(pixelgl.KeyEnter) {
				resetGame(g.Rand().Int63())
			}
		} else if _, bound := buttons[" "]; !bound && win.JustPressed(pixelgl.KeySpace) {
			g.TogglePaused()
		}

		now := time.Now()
		for n := ticks.Advance(now.Sub(last)); n > 0; n-- {
			if !g.Update() {
				break
			}
		}
		last = now

		snapshot := g.Snapshot()

		win.Clear(colornames.Black)
		batch.Clear()
		drawMaze(batch, sheet, snapshot)
		batch.Draw(win)

		statusText.Clear()
		statusText.Color = colornames.White
		switch snapshot.State {
		case game.Won:
			statusText.Color = colornames.Gold
			fmt.Fprintf(statusText, "Miam miam ! %d moves, %.1fs - Enter: new maze", snapshot.Moves, snapshot.Elapsed.Seconds())
		case game.Paused:
			fmt.Fprintf(statusText, "%d moves  %.1fs  PAUSED", snapshot.Moves, snapshot.Elapsed.Seconds())
		default:
			fmt.Fprintf(statusText, "%d moves  %.1fs", snapshot.Moves, snapshot.Elapsed.Seconds())
		}
		statusText.Draw(win, pixel.IM)
	}

	return nil
}

func windowBounds(maze *game.Maze, scale float64) pixel.Rect {
	return pixel.R(
		0, 0,
		float64(maze.Width()*game.TileSize)*scale,
		float64(maze.Height()*game.TileSize+statusHeight)*scale,
	)
}

// cellCenter is the centre of a cell in unscaled window coordinates, whose
// origin is the bottom-left corner, below the status bar
func cellCenter(height int, coord game.Coord) pixel.Vec {
	return pixel.V(
		float64(coord.X*game.TileSize)+game.TileSize/2.0,
		float64(statusHeight+(height-1-coord.Y)*game.TileSize)+game.TileSize/2.0,
	)
}

func drawMaze(batch *pixel.Batch, sheet *spritesheet, snapshot game.Snapshot) {
	for y, row := range snapshot.Cells {
		for x, cellType := range row {
			coord := game.C(x, y)
			pos := cellCenter(snapshot.Height, coord)
			sheet.tile(cellType).Draw(batch, pixel.IM.Moved(pos))
			if coord == snapshot.Goal {
				sheet.goal.Draw(batch, pixel.IM.Moved(pos))
			}
		}
	}

	actor := snapshot.Actor
	pos := cellCenter(snapshot.Height, actor.Cell).Add(pixel.V(float64(actor.OffsetX), -float64(actor.OffsetY)))
	sheet.actorFrame(actor.Frame).Draw(batch, pixel.IM.Moved(pos))
}
