package iconset

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/matzehuels/resonicon/pkg/cache"
	"github.com/matzehuels/resonicon/pkg/errors"
	"github.com/matzehuels/resonicon/pkg/icon"
	"github.com/matzehuels/resonicon/pkg/observability"
)

// Exporter renders the master icon once and writes every iconset entry.
//
// An Exporter holds no per-export state; it may be reused across exports.
type Exporter struct {
	Cache  cache.Cache
	Style  icon.Style
	Logger *log.Logger
}

// Result describes one written file.
type Result struct {
	Entry
	Path string
}

// Stats summarizes an export.
type Stats struct {
	RenderTime time.Duration // time to obtain the master render
	CacheHit   bool          // master render came from the cache
	Files      []Result
}

// NewExporter creates an exporter.
// If c is nil, a NullCache is used (caching disabled).
// If logger is nil, log.Default() is used.
func NewExporter(c cache.Cache, style icon.Style, logger *log.Logger) *Exporter {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Exporter{Cache: c, Style: style, Logger: logger}
}

// Export writes the full iconset into dir, creating it if needed.
//
// Existing files are overwritten. A failed write aborts the export with an
// IO_FAILURE error and leaves already written files in place.
func (e *Exporter) Export(ctx context.Context, dir string) (*Stats, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create output directory %s", dir)
	}

	start := time.Now()
	base, hit, err := e.Base(ctx)
	if err != nil {
		return nil, err
	}
	stats := &Stats{RenderTime: time.Since(start), CacheHit: hit}

	for _, entry := range Entries() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		img := image.Image(base)
		if !entry.Base {
			img = imaging.Resize(base, entry.Pixels(), entry.Pixels(), imaging.Lanczos)
		}

		path := filepath.Join(dir, entry.Name)
		err := WritePNG(path, img)
		observability.Export().OnFileWritten(ctx, entry.Name, entry.Pixels(), err)
		if err != nil {
			return stats, err
		}
		e.Logger.Debug("wrote icon", "file", entry.Name, "px", entry.Pixels())
		stats.Files = append(stats.Files, Result{Entry: entry, Path: path})
	}
	return stats, nil
}

// Base returns the master render at BaseSize, reusing a cached encoding when
// one exists for the exporter's style. The second result reports a cache hit.
// Cache failures are logged and never fail the render.
func (e *Exporter) Base(ctx context.Context) (*image.NRGBA, bool, error) {
	key := cache.RenderKey(icon.RenderVersion, BaseSize, e.Style)

	data, hit, err := e.Cache.Get(ctx, key)
	if err != nil {
		e.Logger.Warn("render cache read failed", "error", err)
	}
	if hit {
		img, err := icon.DecodePNG(bytes.NewReader(data))
		if err == nil && img.Bounds().Dx() == BaseSize && img.Bounds().Dy() == BaseSize {
			e.Logger.Debug("render cache hit", "size", BaseSize)
			observability.Cache().OnCacheHit(ctx, BaseSize)
			return img, true, nil
		}
		e.Logger.Debug("discarding unusable cache entry", "error", err)
		_ = e.Cache.Delete(ctx, key)
	}

	observability.Cache().OnCacheMiss(ctx, BaseSize)

	start := time.Now()
	observability.Export().OnRenderStart(ctx, BaseSize)
	img, err := icon.Render(BaseSize, icon.WithStyle(e.Style))
	observability.Export().OnRenderComplete(ctx, BaseSize, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	var buf bytes.Buffer
	if err := icon.EncodePNG(&buf, img); err == nil {
		if err := e.Cache.Set(ctx, key, buf.Bytes(), 0); err != nil {
			e.Logger.Warn("render cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, BaseSize, buf.Len())
		}
	}
	return img, false, nil
}

// WritePNG encodes img as PNG at path, replacing any existing file.
// Failures are reported as IO_FAILURE.
func WritePNG(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	return nil
}
