package core

// Color is the role a screen cell plays. The platform layer maps roles to
// terminal colors, so a theme change never touches drawing code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDim           // floor, empty gauge segments, hints
	ColorWall
	ColorSpawn
	ColorPlayer
	ColorPolearm // player in the polearm stance
	ColorHurt    // staggered actors
	ColorSuitor
	ColorCorpse
	ColorArrow
	ColorHostile // arrows that hurt the player
	ColorFood
	ColorLightning
	ColorRescue
	ColorHP
	ColorShield
	ColorStamina
	ColorTitle
	ColorAlert
)
