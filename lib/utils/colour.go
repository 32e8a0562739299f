package utils

import (
	"fmt"
	"regexp"
)

// Colour is an RGBA colour with components in [0, 1], the form GL wants.
type Colour struct {
	R, G, B, A float32
}

func ColourValidate(c string) bool {
	match, err := regexp.MatchString(`^#[0-9A-Fa-f]{8}$`, c)
	if err != nil {
		panic(err)
	}
	return match
}

func ColourParse(s string) Colour {
	var r, g, b, a uint8
	fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	return Colour{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}
