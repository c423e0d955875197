package main

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func HexToF32(u uint32, id int) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b, id}
}

type GameColor struct {
	r  float64
	g  float64
	b  float64
	id int
}

var COLOR_BUTTON = HexToF32(0x2121de, 0)
var COLOR_BUTTON_HOVER = HexToF32(0x4a4aff, 0)

// adversary colours, indexed by spawn tag
var COLORS = []GameColor{
	HexToF32(0xff0000, 1),
	HexToF32(0xffb6c1, 2),
	HexToF32(0x00ffff, 3),
	HexToF32(0xffa500, 4),
}

func colorFor(tag int) GameColor {
	if tag < 0 {
		tag = -tag
	}
	return COLORS[tag%len(COLORS)]
}

type Faces struct {
	HUD, Title, Button font.Face
}

func loadFaces() (*Faces, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}
	return &Faces{HUD: face(24), Title: face(48), Button: face(32)}, nil
}
