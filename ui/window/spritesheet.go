package window

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	_ "image/png"

	"github.com/faiface/pixel"
	"github.com/they4kman/gomaze/game"
	"golang.org/x/image/colornames"
)

// Spritesheet layout, in tiles of game.TileSize pixels:
//
//	row 0:    wall, floor, visited floor, goal
//	rows 1-4: actor frames, one row per facing (see game.SpriteFrameFor),
//	          one column per walk-cycle frame
const (
	sheetColumns = 4
	sheetRows    = 1 + game.SpriteRows
)

type spritesheet struct {
	picture pixel.Picture
	tiles   map[game.CellType]*pixel.Sprite
	goal    *pixel.Sprite
	actor   [game.SpriteRows][game.SpriteFrames]*pixel.Sprite
}

func loadSpritesheet(path string) (*spritesheet, error) {
	var picture pixel.Picture
	if path == "" {
		picture = pixel.PictureDataFromImage(drawSpritesheet())
	} else {
		var err error
		picture, err = loadPicture(path)
		if err != nil {
			return nil, fmt.Errorf("loading spritesheet: %w", err)
		}
	}

	bounds := picture.Bounds()
	if bounds.W() < sheetColumns*game.TileSize || bounds.H() < sheetRows*game.TileSize {
		return nil, fmt.Errorf("spritesheet must be at least %dx%d pixels, got %vx%v",
			sheetColumns*game.TileSize, sheetRows*game.TileSize, bounds.W(), bounds.H())
	}

	sheet := &spritesheet{
		picture: picture,
		tiles: map[game.CellType]*pixel.Sprite{
			game.Wall:         pixel.NewSprite(picture, tileFrame(bounds, 0, 0)),
			game.Floor:        pixel.NewSprite(picture, tileFrame(bounds, 1, 0)),
			game.VisitedFloor: pixel.NewSprite(picture, tileFrame(bounds, 2, 0)),
		},
		goal: pixel.NewSprite(picture, tileFrame(bounds, 3, 0)),
	}
	for row := 0; row < game.SpriteRows; row++ {
		for col := 0; col < game.SpriteFrames; col++ {
			sheet.actor[row][col] = pixel.NewSprite(picture, tileFrame(bounds, col, 1+row))
		}
	}
	return sheet, nil
}

// tileFrame locates a tile counted from the top-left of the sheet; pixel
// pictures have their origin at the bottom-left
func tileFrame(bounds pixel.Rect, col, row int) pixel.Rect {
	x1 := bounds.Min.X + float64(col*game.TileSize)
	y2 := bounds.Max.Y - float64(row*game.TileSize)
	return pixel.R(x1, y2-game.TileSize, x1+game.TileSize, y2)
}

func (sheet *spritesheet) tile(cellType game.CellType) *pixel.Sprite {
	if sprite, ok := sheet.tiles[cellType]; ok {
		return sprite
	}
	return sheet.tiles[game.Wall]
}

func (sheet *spritesheet) actorFrame(frame game.SpriteFrame) *pixel.Sprite {
	row, col := frame.Row, frame.Column
	if row < 0 || row >= game.SpriteRows {
		row = 0
	}
	if col < 0 || col >= game.SpriteFrames {
		col = 0
	}
	return sheet.actor[row][col]
}

func loadPicture(path string) (pixel.Picture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	return pixel.PictureDataFromImage(img), nil
}

// drawSpritesheet paints the built-in tiles and actor frames
func drawSpritesheet() *image.RGBA {
	const t = game.TileSize
	img := image.NewRGBA(image.Rect(0, 0, sheetColumns*t, sheetRows*t))

	tileRect := func(col, row int) image.Rectangle {
		return image.Rect(col*t, row*t, (col+1)*t, (row+1)*t)
	}
	fill := func(r image.Rectangle, c color.Color) {
		draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}

	// Walls get a lighter top and left edge
	wall := tileRect(0, 0)
	fill(wall, colornames.Dimgray)
	fill(image.Rect(wall.Min.X, wall.Min.Y, wall.Max.X, wall.Min.Y+1), colornames.Gray)
	fill(image.Rect(wall.Min.X, wall.Min.Y, wall.Min.X+1, wall.Max.Y), colornames.Gray)

	fill(tileRect(1, 0), colornames.Beige)

	visited := tileRect(2, 0)
	fill(visited, colornames.Beige)
	center := visited.Min.Add(image.Pt(t/2, t/2))
	fill(image.Rect(center.X-1, center.Y-1, center.X+2, center.Y+2), colornames.Burlywood)

	// Goal: a wedge of cheese on the floor
	goal := tileRect(3, 0)
	fill(goal, colornames.Beige)
	for y := 3; y < t-3; y++ {
		width := y - 2
		fill(image.Rect(goal.Min.X+3, goal.Min.Y+y, goal.Min.X+3+width, goal.Min.Y+y+1), colornames.Gold)
	}

	facings := []game.Direction{game.Down, game.Left, game.Right, game.Up}
	for _, facing := range facings {
		row := game.SpriteFrameFor(facing, 0).Row
		for frame := 0; frame < game.SpriteFrames; frame++ {
			drawActor(img, tileRect(frame, 1+row), facing, frame)
		}
	}

	return img
}

// drawActor paints a round mouse facing dir, with its feet shifting through
// the walk cycle
func drawActor(img *image.RGBA, r image.Rectangle, dir game.Direction, frame int) {
	const radius = 5
	center := r.Min.Add(image.Pt(game.TileSize/2, game.TileSize/2))
	dx, dy := dir.Delta()

	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				img.Set(center.X+x, center.Y+y, colornames.Lightslategray)
			}
		}
	}

	nose := center.Add(image.Pt(dx*radius, dy*radius))
	img.Set(nose.X, nose.Y, colornames.Pink)
	img.Set(nose.X+dy, nose.Y+dx, colornames.Pink)

	eye := center.Add(image.Pt(dx*2, dy*2))
	img.Set(eye.X-dy, eye.Y-dx, colornames.Black)
	img.Set(eye.X+dy, eye.Y+dx, colornames.Black)

	// Feet sit across the direction of travel and stride along it
	stride := frame - 1
	for _, side := range []int{-1, 1} {
		foot := center.Add(image.Pt(dy*side*radius+dx*stride*side, dx*side*radius+dy*stride*side))
		img.Set(foot.X, foot.Y, colornames.Pink)
	}
}
