package game

// Attr is a display attribute; the surface decides how it looks.
type Attr uint8

const (
	AttrDefault Attr = iota
	AttrStats
	AttrMenu
	AttrPopup
	// AttrFood is the first of the food colors, see FoodAttr.
	AttrFood
)

// FoodAttr returns the attribute of a food cell with color index c (1-based).
func FoodAttr(c int) Attr {
	if c < 1 {
		c = 1
	}
	return AttrFood + Attr(c-1)
}

// Surface is where the game draws and reads keys from.
type Surface interface {
	// Size returns the screen size in columns and rows.
	Size() (w, h int)
	DrawCell(row, col int, glyph rune, attr Attr)
	// Commit shows everything drawn since the last commit.
	Commit()
	Clear()
	Beep()

	// PollKey returns the next pending key without blocking.
	PollKey() (Key, bool)
	// WaitKey blocks until a key arrives.
	WaitKey() Key
}
