// Package iconset exports the icon at every size a macOS .iconset needs.
//
// The master image is rendered once at [BaseSize] and Lanczos-resampled for
// each entry, which keeps thin strokes legible at 16px where a direct render
// would round them away. The output directory receives fourteen files:
//
//	icon_16x16.png     icon_16x16@2x.png
//	icon_32x32.png     icon_32x32@2x.png
//	...
//	icon_512x512.png   icon_512x512@2x.png
//	icon_1024x1024.png
//	icon.png           (the untouched master)
//
// Exports are idempotent: running twice overwrites the same files.
//
//	exp := iconset.NewExporter(cache.NewNullCache(), icon.DefaultStyle(), logger)
//	stats, err := exp.Export(ctx, "resources/icons")
package iconset
