package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	short         string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "Red",
	short:         "r",
	colorFunction: color.New(color.FgHiRed, color.Bold).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "Blue",
	short:         "b",
	colorFunction: color.New(color.FgHiBlue, color.Bold).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "Green",
	short:         "g",
	colorFunction: color.New(color.FgHiGreen, color.Bold).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "Yellow",
	short:         "y",
	colorFunction: color.New(color.FgHiYellow, color.Bold).SprintfFunc(),
}

// Wild is the color carried by wild cards. It is never an active color.
var Wild = &colorStruct{
	name:          "Wild",
	short:         "w",
	colorFunction: color.New(color.FgHiMagenta, color.Bold).SprintfFunc(),
}

var Stdout io.Writer = color.Output

// All lists the playable colors in tie-break order.
var All = []Color{Red, Blue, Green, Yellow}

var colors = map[string]Color{}

func init() {
	for _, c := range All {
		named := c.(*colorStruct)
		colors[strings.ToLower(named.name)] = c
		colors[named.short] = c
	}
}

// ByName resolves a playable color from its name or initial, ignoring case.
func ByName(name string) (Color, error) {
	color := colors[strings.ToLower(strings.TrimSpace(name))]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// Real reports whether c is one of the four playable colors.
func Real(c Color) bool {
	for _, candidate := range All {
		if c == candidate {
			return true
		}
	}
	return false
}

// DisableOutputColors turns painting off, e.g. for clients that cannot render ANSI codes.
func DisableOutputColors() {
	color.NoColor = true
}
