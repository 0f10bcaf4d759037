package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
)

// FontName selects one of the menu's loaded faces.
type FontName string

const (
	Body  FontName = "body"
	Bold  FontName = "bold"
	Title FontName = "title"
	Small FontName = "small"
)

// Get returns the loaded face, panicking when the face was never loaded.
// Faces load once at startup before any scene draws.
func (f FontName) Get() font.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("font %s not loaded", f))
	}
	return face
}

var faces = map[FontName]font.Face{}

// LoadFont parses a TTF and registers it under name at the default body size.
func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

// LoadFontWithSize parses a TTF and registers it under name at a point size.
func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		panic(fmt.Sprintf("font %s: %v", name, err))
	}
	faces[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}
