package checkin

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// ErrNoCode is returned by a Detector when the frame holds no readable QR
// code. Everything else a detector returns is treated as a detector
// failure and triggers the fallback.
var ErrNoCode = errors.New("no qr code in frame")

// FrameSource produces frames from a camera or capture device. Close
// releases the device.
type FrameSource interface {
	NextFrame(ctx context.Context) (image.Image, error)
	Close() error
}

// Detector decodes a single frame into a ticket code.
type Detector interface {
	Detect(frame image.Image) (string, error)
}

// qrDetector wraps the zxing QR reader.
type qrDetector struct {
	reader gozxing.Reader
	hints  map[gozxing.DecodeHintType]interface{}
}

// NewDetector returns the primary, fast QR detector.
func NewDetector() Detector {
	return &qrDetector{reader: qrcode.NewQRCodeReader()}
}

// NewFallbackDetector returns the slower try-harder detector used when the
// primary one fails outright.
func NewFallbackDetector() Detector {
	return &qrDetector{
		reader: qrcode.NewQRCodeReader(),
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (d *qrDetector) Detect(frame image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(frame)
	if err != nil {
		return "", fmt.Errorf("failed to binarize frame: %w", err)
	}
	result, err := d.reader.Decode(bmp, d.hints)
	if err != nil {
		if _, ok := err.(gozxing.NotFoundException); ok {
			return "", ErrNoCode
		}
		return "", err
	}
	return result.GetText(), nil
}

// Scanner samples frames from a source and runs them through a detector
// until one yields a code. When the primary detector breaks (not merely
// "nothing in this frame"), the scanner switches to the fallback detector
// for the rest of the run.
type Scanner struct {
	source   FrameSource
	primary  Detector
	fallback Detector
	interval time.Duration
}

// NewScanner creates a scanner over the given source. interval is the
// sampling period between frames.
func NewScanner(source FrameSource, interval time.Duration) *Scanner {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Scanner{
		source:   source,
		primary:  NewDetector(),
		fallback: NewFallbackDetector(),
		interval: interval,
	}
}

// Run samples frames until a QR code is decoded, the source is exhausted,
// or ctx is cancelled. The source is closed before returning, releasing
// the capture device.
func (s *Scanner) Run(ctx context.Context) (string, error) {
	defer s.source.Close()

	detector := s.primary
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		frame, err := s.source.NextFrame(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", fmt.Errorf("no qr code found before the frame source ended")
			}
			return "", err
		}

		code, err := detector.Detect(prepareFrame(frame))
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, ErrNoCode) && detector != s.fallback {
			// Primary detector broke; keep scanning with the fallback.
			detector = s.fallback
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

// prepareFrame normalizes a frame for detection: grayscale, and downscale
// anything wider than 800px so detection stays fast on full-resolution
// camera frames.
func prepareFrame(frame image.Image) image.Image {
	gray := imaging.Grayscale(frame)
	if gray.Bounds().Dx() > 800 {
		return imaging.Resize(gray, 800, 0, imaging.Linear)
	}
	return gray
}

// DirectorySource feeds frames from image files in a directory, sorted by
// name. Capture tools that dump frames to disk pair with this; it also
// stands in for a camera in tests.
type DirectorySource struct {
	paths []string
	next  int
}

// NewDirectorySource lists the readable image files under dir.
func NewDirectorySource(dir string) (*DirectorySource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".png", ".jpg", ".jpeg", ".gif":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	return &DirectorySource{paths: paths}, nil
}

// NextFrame returns the next file decoded as an image, or io.EOF when the
// directory is exhausted.
func (d *DirectorySource) NextFrame(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if d.next >= len(d.paths) {
		return nil, io.EOF
	}
	path := d.paths[d.next]
	d.next++

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open frame %s: %w", path, err)
	}
	return img, nil
}

// Close is a no-op for directory sources.
func (d *DirectorySource) Close() error { return nil }
