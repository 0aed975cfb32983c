package folio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"golang.org/x/image/draw"
)

const jpegQuality = 80

// optimizeImage decodes an image from src and, if it is wider than maxWidth,
// scales it down and re-encodes it in its original format. ok is false when
// the image should be copied unchanged (narrow enough, or a GIF).
func optimizeImage(src io.Reader, maxWidth int) (data []byte, ok bool, err error) {
	img, format, err := image.Decode(src)
	if err != nil {
		return nil, false, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxWidth || format == "gif" {
		return nil, false, nil
	}

	newH := h * maxWidth / w
	if newH < 1 {
		newH = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, newH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality})
	case "png":
		err = png.Encode(&buf, dst)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("encode %s: %w", format, err)
	}
	return buf.Bytes(), true, nil
}

func isOptimizable(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

// copyStatic mirrors srcDir into dstDir. JPEG and PNG files wider than
// maxWidth are scaled down on the way; images that fail to decode are copied
// as they are. A missing srcDir copies nothing.
func copyStatic(srcDir, dstDir string, maxWidth int, logger *log.Logger) (files, optimized int, err error) {
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return 0, 0, nil
	}
	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dstDir, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}

		if isOptimizable(path) {
			done, err := writeOptimized(path, target, maxWidth)
			if err != nil && logger != nil {
				logger.Warnf("static: %s: %v, copying as is", rel, err)
			}
			if done {
				files++
				optimized++
				return nil
			}
		}
		if err := copyFile(path, target); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		files++
		return nil
	})
	return files, optimized, err
}

func writeOptimized(src, dst string, maxWidth int) (bool, error) {
	f, err := os.Open(src)
	if err != nil {
		return false, err
	}
	defer f.Close()
	data, ok, err := optimizeImage(f, maxWidth)
	if err != nil || !ok {
		return false, err
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
