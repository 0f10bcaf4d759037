package assets

import (
	"embed"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

//go:embed all:levels
var assetFS embed.FS

// SpotMarker is a showcase position authored in a backdrop map's MenuSpots
// object group.
type SpotMarker struct {
	Row       int
	Character string
	X, Y      float64
}

// Backdrop is a menu backdrop: the rendered map image plus its spot markers.
type Backdrop struct {
	Background *ebiten.Image
	Width      int
	Height     int
	Markers    []SpotMarker
}

// LoadBackdrop parses a TMX backdrop, renders its visible tile layers and
// extracts the MenuSpots object group. Markers come back sorted by row.
func LoadBackdrop(path string) (*Backdrop, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(assetFS))
	if err != nil {
		return nil, fmt.Errorf("load backdrop %s: %w", path, err)
	}

	b := &Backdrop{
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if b.Width < 1 || b.Height < 1 {
		return nil, fmt.Errorf("backdrop %s has no area (%dx%d)", path, b.Width, b.Height)
	}

	b.Background = ebiten.NewImage(b.Width, b.Height)
	b.Background.Fill(color.RGBA{16, 16, 28, 255})

	// Tile layers are optional; backdrops may be object-only maps.
	if len(levelMap.Layers) > 0 {
		renderer, err := render.NewRendererWithFileSystem(levelMap, assetFS)
		if err != nil {
			return nil, fmt.Errorf("backdrop renderer for %s: %w", path, err)
		}
		for i, layer := range levelMap.Layers {
			if !layer.Properties.GetBool("render") {
				continue
			}
			if err := renderer.RenderLayer(i); err != nil {
				log.Printf("[assets] skipping layer %d of %s: %v", i, path, err)
				continue
			}
			op := &ebiten.DrawImageOptions{}
			if layer.Opacity <= 0 {
				continue
			}
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
			layerImage := ebiten.NewImageFromImage(renderer.Result)
			b.Background.DrawImage(layerImage, op)
			layerImage.Deallocate()
		}
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "MenuSpots" {
			continue
		}
		for _, o := range og.Objects {
			b.Markers = append(b.Markers, SpotMarker{
				Row:       o.Properties.GetInt("rowIndex"),
				Character: o.Properties.GetString("character"),
				X:         o.X,
				Y:         o.Y,
			})
		}
	}
	sort.Slice(b.Markers, func(i, j int) bool {
		return b.Markers[i].Row < b.Markers[j].Row
	})

	return b, nil
}
