package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

const (
	tileWidth  = 8 // Characters per tile
	tileHeight = 3 // Lines per tile
	tileGap    = 1 // Background gap between tiles
)

// Palette of the classic game.
var (
	colorBackground = lipgloss.Color("#b7b09d")
	colorWhite      = lipgloss.Color("#fbf9f0")
	colorScoreBg    = lipgloss.Color("#bbae9e")
	colorTitle      = lipgloss.Color("#7d7367")
	colorButton     = lipgloss.Color("#ff780d")
	colorDarkText   = lipgloss.Color("#776e66")
	colorLightText  = lipgloss.Color("#ffffff")
)

// tileColor is the background and text color of one tile value.
type tileColor struct {
	bg lipgloss.Color
	fg lipgloss.Color
}

var tileColors = map[int]tileColor{
	0:    {bg: "#ccc1b5", fg: "#000000"},
	2:    {bg: "#eee5db", fg: colorDarkText},
	4:    {bg: "#ede1ca", fg: colorDarkText},
	8:    {bg: "#f0b27f", fg: colorLightText},
	16:   {bg: "#f7975b", fg: colorLightText},
	32:   {bg: "#f87c62", fg: colorLightText},
	64:   {bg: "#f65e39", fg: colorLightText},
	128:  {bg: "#edce73", fg: colorLightText},
	256:  {bg: "#edca64", fg: colorLightText},
	512:  {bg: "#edc651", fg: colorLightText},
	1024: {bg: "#eec744", fg: colorLightText},
	2048: {bg: "#ecc230", fg: colorLightText},
	4096: {bg: "#fe3d3e", fg: colorLightText},
}

// maxTileColor is used for 8192 and above.
var maxTileColor = tileColor{bg: "#ff2021", fg: colorLightText}

// colorFor returns the colors for a tile value.
func colorFor(value int) tileColor {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return maxTileColor
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle)

	scoreBoxStyle = lipgloss.NewStyle().
			Background(colorScoreBg).
			Foreground(colorWhite).
			Padding(0, 2).
			Align(lipgloss.Center)

	boardStyle = lipgloss.NewStyle().
			Background(colorBackground).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorButton)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorTitle).
			Padding(1, 4).
			Align(lipgloss.Center)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// renderTile draws a single tile; empty cells show no number.
func renderTile(value int) string {
	c := colorFor(value)
	label := ""
	if value != 0 {
		label = strconv.Itoa(value)
	}

	return lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Background(c.bg).
		Foreground(c.fg).
		Render(label)
}

// RenderBoard draws a row-major grid of the given size.
func RenderBoard(cells []int, size int) string {
	gap := lipgloss.NewStyle().
		Background(colorBackground).
		Width(tileGap).
		Height(tileHeight).
		Render("")

	rows := make([]string, 0, size*2)
	for r := range size {
		tiles := make([]string, 0, size*2)
		for c := range size {
			if c > 0 {
				tiles = append(tiles, gap)
			}
			tiles = append(tiles, renderTile(cells[r*size+c]))
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
		if r > 0 {
			spacer := lipgloss.NewStyle().
				Background(colorBackground).
				Width(lipgloss.Width(row)).
				Render("")
			rows = append(rows, spacer)
		}
		rows = append(rows, row)
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderScoreBox draws a labeled score box.
func renderScoreBox(label string, value int) string {
	return scoreBoxStyle.Render(fmt.Sprintf("%s\n%d", label, value))
}

// renderHeader draws the title with the score and best score boxes.
func renderHeader(score, best int) string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("2048"),
		"   ",
		renderScoreBox("SCORE", score),
		" ",
		renderScoreBox("BEST", best),
	)
}

// boardWidth returns the rendered width of a board of the given size.
func boardWidth(size int) int {
	return lipgloss.Width(RenderBoard(make([]int, size*size), size))
}
