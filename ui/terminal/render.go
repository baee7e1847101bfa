package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/gomaze/game"
)

// CellColumns is how many terminal columns one maze cell spans; terminal
// cells are about twice as tall as they are wide
const CellColumns = 2

var (
	wallStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	floorStyle   = tcell.StyleDefault
	visitedStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	goalStyle    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	actorStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	wonStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
)

const (
	wallRune    = '█'
	visitedRune = '·'
	goalRune    = '◆'
)

// Actor glyphs per facing row, for the stride frames and the middle frame
var actorRunes = [game.SpriteRows][2]rune{
	{'▼', '▾'},
	{'◀', '◂'},
	{'▶', '▸'},
	{'▲', '▴'},
}

// Draw paints a snapshot onto the screen: the maze from the top-left corner
// and a status line below it. It does not call Show.
func Draw(screen tcell.Screen, snapshot game.Snapshot) {
	screen.Clear()

	for y, row := range snapshot.Cells {
		for x, cellType := range row {
			drawCell(screen, game.C(x, y), cellType, snapshot.Goal)
		}
	}

	col, row := actorScreenPos(snapshot.Actor)
	screen.SetContent(col, row, actorRune(snapshot.Actor.Frame), nil, actorStyle)

	drawStatus(screen, snapshot)
}

func drawCell(screen tcell.Screen, coord game.Coord, cellType game.CellType, goal game.Coord) {
	col := coord.X * CellColumns

	var main rune
	style := floorStyle
	switch {
	case coord == goal:
		main, style = goalRune, goalStyle
	case cellType == game.VisitedFloor:
		main, style = visitedRune, visitedStyle
	case cellType == game.Floor:
		main = ' '
	default:
		main, style = wallRune, wallStyle
	}

	screen.SetContent(col, coord.Y, main, nil, style)
	if main == wallRune {
		screen.SetContent(col+1, coord.Y, wallRune, nil, style)
	} else {
		screen.SetContent(col+1, coord.Y, ' ', nil, floorStyle)
	}
}

func actorRune(frame game.SpriteFrame) rune {
	row := frame.Row
	if row < 0 || row >= game.SpriteRows {
		row = 0
	}
	if frame.Column == 1 {
		return actorRunes[row][1]
	}
	return actorRunes[row][0]
}

// actorScreenPos places the actor, rounding its slide offset to whole
// terminal cells
func actorScreenPos(actor game.ActorSnapshot) (col, row int) {
	col = actor.Cell.X*CellColumns + roundDiv(actor.OffsetX*CellColumns, game.TileSize)
	row = actor.Cell.Y + roundDiv(actor.OffsetY, game.TileSize)
	return col, row
}

// roundDiv divides, rounding half away from zero
func roundDiv(n, d int) int {
	if n < 0 {
		return -roundDiv(-n, d)
	}
	return (2*n + d) / (2 * d)
}

func drawStatus(screen tcell.Screen, snapshot game.Snapshot) {
	row := snapshot.Height
	seconds := snapshot.Elapsed.Seconds()

	switch snapshot.State {
	case game.Won:
		drawText(screen, 0, row, wonStyle,
			fmt.Sprintf("Miam miam ! Goal reached in %d moves (%.1fs)   [enter] new maze  [esc] quit", snapshot.Moves, seconds))
	case game.Paused:
		drawText(screen, 0, row, statusStyle,
			fmt.Sprintf("Moves: %d  Time: %.1fs  PAUSED  [space] resume  [esc] quit", snapshot.Moves, seconds))
	default:
		drawText(screen, 0, row, statusStyle,
			fmt.Sprintf("Moves: %d  Time: %.1fs  [space] pause  [esc] quit", snapshot.Moves, seconds))
	}
}

func drawText(screen tcell.Screen, col, row int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(col, row, r, nil, style)
		col++
	}
}
