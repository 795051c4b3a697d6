// Package photo prepares uploaded photos for email delivery: JPEG
// compression toward a target size and EXIF capture-time extraction.
package photo

import (
	"bytes"
	"fmt"
	"image"
	"sync"

	"github.com/disintegration/imaging"
)

const (
	// TargetBytes is the size under which a photo is passed through
	// untouched.
	TargetBytes = 300 * 1024

	maxWidth  = 1920
	maxHeight = 1080

	batchSize = 3
)

// Quality ladder for re-encode attempts, strictly decreasing.
var qualitySteps = []int{85, 75, 65, 55, 45}

type File struct {
	Name string
	Data []byte
}

// Compress returns input bytes unchanged when they are already at or
// under TargetBytes. Larger photos are re-encoded at decreasing JPEG
// quality; if the floor still leaves them over target, the image is
// fit into maxWidth x maxHeight (aspect preserved) and encoded once
// more at the floor quality.
func Compress(data []byte) ([]byte, error) {
	if len(data) <= TargetBytes {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	var encoded []byte
	for _, q := range qualitySteps {
		encoded, err = encodeJPEG(img, q)
		if err != nil {
			return nil, err
		}
		if len(encoded) <= TargetBytes {
			return encoded, nil
		}
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxWidth || bounds.Dy() > maxHeight {
		img = imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	}
	return encodeJPEG(img, qualitySteps[len(qualitySteps)-1])
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("encode jpeg q%d: %w", quality, err)
	}
	return buf.Bytes(), nil
}

// CompressAll compresses files in submission order. Work runs in
// groups of batchSize to bound peak memory; results keep the input
// ordering regardless of which goroutine finished first.
func CompressAll(files []File) ([]File, error) {
	out := make([]File, len(files))
	errs := make([]error, len(files))

	for start := 0; start < len(files); start += batchSize {
		end := start + batchSize
		if end > len(files) {
			end = len(files)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				data, err := Compress(files[i].Data)
				if err != nil {
					errs[i] = fmt.Errorf("%s: %w", files[i].Name, err)
					return
				}
				out[i] = File{Name: files[i].Name, Data: data}
			}(i)
		}
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
