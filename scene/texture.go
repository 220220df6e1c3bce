package scene

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg" // JPEG decoding
	_ "image/png"  // PNG decoding
	"os"

	"go.uber.org/zap"
)

// Pixels is a decoded image ready for upload. Row 0 is the bottom row.
type Pixels struct {
	Width    int
	Height   int
	Channels int
	Data     []byte
}

// nearestRepeat is the sampler every scene texture uses.
var nearestRepeat = Sampling{Filter: FilterNearest, Wrap: WrapRepeat}

// DecodeImage reads an image file into tightly packed RGBA bytes, flipped so
// the first row in memory is the bottom of the image.
func DecodeImage(path string) (*Pixels, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture image %s: %w", path, err)
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	flipVertical(rgba.Pix, rgba.Stride, bounds.Dy())

	return &Pixels{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: 4,
		Data:     rgba.Pix,
	}, nil
}

func flipVertical(pix []byte, stride, height int) {
	row := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(row, a)
		copy(a, b)
		copy(b, row)
	}
}

// LoadTexture creates a texture and fills it from path. A file that cannot be
// decoded is logged and the texture is returned empty, so the scene still
// renders with whatever the driver samples from it.
func LoadTexture(dev Device, path string, log *zap.Logger) uint32 {
	tex := dev.CreateTexture(nearestRepeat)

	px, err := DecodeImage(path)
	if err != nil {
		log.Warn("failed to load texture", zap.String("path", path), zap.Error(err))
		return tex
	}

	dev.UploadTexture(tex, px)
	log.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", px.Width),
		zap.Int("height", px.Height))
	return tex
}
