package render

import "github.com/hajimehoshi/ebiten/v2"

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

const whiteKey = "white"

// whiteImage returns a 1x1 white source image for untextured triangles.
// It is created lazily since images can only be made once the game runs.
func whiteImage() *ebiten.Image {
	if img := GetImage(whiteKey); img != nil {
		return img
	}
	base := ebiten.NewImage(3, 3)
	base.Fill(colorWhite)
	// sample from the centre pixel so filtering never reaches the border
	img := base.SubImage(base.Bounds().Inset(1)).(*ebiten.Image)
	RegisterImage(whiteKey, img)
	return img
}
