package iconset

import "fmt"

// BaseSize is the edge length of the master render every entry is
// resampled from.
const BaseSize = 1024

// MaxRetinaSize is the largest nominal size that also gets an @2x variant.
const MaxRetinaSize = 512

// BaseName is the file name of the untouched master render.
const BaseName = "icon.png"

// Sizes lists the nominal sizes of a macOS iconset.
var Sizes = []int{16, 32, 64, 128, 256, 512, 1024}

// Entry is one file of the iconset.
type Entry struct {
	Size  int    // nominal point size
	Scale int    // 1 for standard, 2 for @2x
	Name  string // file name inside the output directory
	Base  bool   // the master render, written without resampling
}

// Pixels returns the edge length of the written image.
func (e Entry) Pixels() int {
	return e.Size * e.Scale
}

// FileName returns the iconset file name for a nominal size and scale,
// e.g. icon_32x32.png or icon_32x32@2x.png.
func FileName(size, scale int) string {
	if scale == 2 {
		return fmt.Sprintf("icon_%dx%d@2x.png", size, size)
	}
	return fmt.Sprintf("icon_%dx%d.png", size, size)
}

// Entries returns every file of the iconset in write order: each size,
// followed by its @2x variant where one exists, then the master render.
func Entries() []Entry {
	out := make([]Entry, 0, 2*len(Sizes)+1)
	for _, s := range Sizes {
		out = append(out, Entry{Size: s, Scale: 1, Name: FileName(s, 1)})
		if s <= MaxRetinaSize {
			out = append(out, Entry{Size: s, Scale: 2, Name: FileName(s, 2)})
		}
	}
	return append(out, Entry{Size: BaseSize, Scale: 1, Name: BaseName, Base: true})
}
