package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/phanxgames/sketchbook"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat parses a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPNG, FormatSVG:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Write encodes one display list in the given format.
func Write(w io.Writer, f Format, list *sketchbook.DisplayList) error {
	switch f {
	case FormatPNG:
		return PNG(w, list)
	case FormatSVG:
		return SVG(w, list)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// FrameName returns the file name for a recorded frame. Frames that carried
// a capture use its sanitized label as a suffix.
func FrameName(sketch string, f Format, rf sketchbook.RecordedFrame) string {
	name := fmt.Sprintf("%s_%05d", sketchbook.SanitizeLabel(sketch), rf.Index)
	if len(rf.Captures) > 0 {
		name += "_" + sketchbook.SanitizeLabel(rf.Captures[0])
	}
	return name + "." + string(f)
}

// Frames writes every recorded frame into dir and returns the written paths.
// With capturedOnly only frames that carried a capture are written.
func Frames(dir, sketch string, f Format, frames []sketchbook.RecordedFrame, capturedOnly bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export frames: %w", err)
	}
	var paths []string
	for _, rf := range frames {
		if capturedOnly && len(rf.Captures) == 0 {
			continue
		}
		path := filepath.Join(dir, FrameName(sketch, f, rf))
		if err := writeFile(path, f, rf.List); err != nil {
			return paths, fmt.Errorf("export frame %d: %w", rf.Index, err)
		}
		paths = append(paths, path)
	}
	sketchbook.Logger().Info("exported", "sketch", sketch, "format", string(f), "files", len(paths), "dir", dir)
	return paths, nil
}

func writeFile(path string, f Format, list *sketchbook.DisplayList) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(out, f, list); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}

func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
