package game

// SpriteFrame locates an actor frame in a spritesheet: one row per facing,
// one column per walk-cycle frame
type SpriteFrame struct {
	Column, Row int
}

var spriteRows = map[Direction]int{
	Down:  0,
	Left:  1,
	Right: 2,
	Up:    3,
}

// SpriteRows is the number of facing rows in an actor spritesheet
const SpriteRows = 4

// SpriteFrameFor picks the frame for a facing direction and walk-cycle
// counter. Facing None uses the Down row.
func SpriteFrameFor(facing Direction, frame int) SpriteFrame {
	frame %= SpriteFrames
	if frame < 0 {
		frame += SpriteFrames
	}
	return SpriteFrame{Column: frame, Row: spriteRows[facing]}
}
