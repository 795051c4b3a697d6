package photo

import (
	"bytes"
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noiseJPEG encodes a deterministic noise image; noise compresses
// poorly, which is what the ladder tests need.
func noiseJPEG(t *testing.T, width, height, quality int) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)))
	return buf.Bytes()
}

func TestCompressPassesThroughSmallPhotos(t *testing.T) {
	t.Parallel()

	data := noiseJPEG(t, 100, 100, 85)
	require.LessOrEqual(t, len(data), TargetBytes)

	out, err := Compress(data)
	require.NoError(t, err)
	assert.Equal(t, data, out, "photos at or under target must not be re-encoded")
}

func TestCompressShrinksLargePhotos(t *testing.T) {
	t.Parallel()

	data := noiseJPEG(t, 3000, 2000, 100)
	require.Greater(t, len(data), TargetBytes)

	out, err := Compress(data)
	require.NoError(t, err)
	assert.Less(t, len(out), len(data))

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), 1920)
	assert.LessOrEqual(t, img.Bounds().Dy(), 1080)
}

func TestCompressRejectsNonImageData(t *testing.T) {
	t.Parallel()

	big := bytes.Repeat([]byte("not a jpeg "), TargetBytes/8)
	_, err := Compress(big)
	assert.Error(t, err)
}

func TestCompressAllPreservesOrder(t *testing.T) {
	t.Parallel()

	small := noiseJPEG(t, 50, 50, 85)
	files := []File{
		{Name: "a.jpg", Data: small},
		{Name: "b.jpg", Data: small},
		{Name: "c.jpg", Data: small},
		{Name: "d.jpg", Data: small},
		{Name: "e.jpg", Data: small},
	}

	out, err := CompressAll(files)
	require.NoError(t, err)
	require.Len(t, out, len(files))
	for i := range files {
		assert.Equal(t, files[i].Name, out[i].Name)
		assert.Equal(t, files[i].Data, out[i].Data)
	}
}

func TestCompressAllReportsFailingFile(t *testing.T) {
	t.Parallel()

	small := noiseJPEG(t, 50, 50, 85)
	broken := bytes.Repeat([]byte{0xde, 0xad}, TargetBytes)
	files := []File{
		{Name: "ok.jpg", Data: small},
		{Name: "broken.jpg", Data: broken},
	}

	_, err := CompressAll(files)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.jpg")
}
