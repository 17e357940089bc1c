package data

// ClientColors is the (primary, secondary) pair used to mark a client.
type ClientColors struct {
	Primary   PaletteColor
	Secondary PaletteColor
}

// ClientIDToColors returns the marker colors for a client. Only IDs 1
// through 10 have colors; ok is false for every other ID.
func ClientIDToColors(id ClientID, p Palette) (colors ClientColors, ok bool) {
	var primary PaletteColor
	switch id {
	case 1:
		primary = p.Magenta
	case 2:
		primary = p.Blue
	case 3:
		primary = p.Purple
	case 4:
		primary = p.Yellow
	case 5:
		primary = p.Cyan
	case 6:
		primary = p.Gold
	case 7:
		primary = p.Red
	case 8:
		primary = p.Silver
	case 9:
		primary = p.Pink
	case 10:
		primary = p.Brown
	default:
		return ClientColors{}, false
	}
	return ClientColors{Primary: primary, Secondary: p.Black}, true
}

// SingleClientColor is used when only one client is attached.
func SingleClientColor(p Palette) ClientColors {
	return ClientColors{Primary: p.Green, Secondary: p.Black}
}
