package photo

import (
	"bytes"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/mknote"
)

func init() {
	exif.RegisterParsers(mknote.All...)
}

// TakenAt reads the EXIF capture timestamp from original (pre-compress)
// photo bytes. Photos without usable EXIF return the zero time.
func TakenAt(data []byte) time.Time {
	exifData, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return time.Time{}
	}
	tm, err := exifData.DateTime()
	if err != nil {
		return time.Time{}
	}
	return tm
}
