package game

// Director plays the game in place of a keyboard. It is only called from
// within Update, whenever the actor stands idle on a cell.
type Director interface {
	/**
	 * Initialize the director for a freshly created game
	 */
	Init(*Game)

	/**
	 * Decide the key presses and releases for the coming tick
	 */
	Act() []InputEvent

	/**
	 * Stop acting; called once the game is over
	 */
	End()
}
