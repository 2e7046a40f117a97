package transcode

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"displaybot/internal/domain"
)

// FFmpeg converts animated images into video the player handles well.
type FFmpeg struct {
	path   string
	logger *slog.Logger
}

func NewFFmpeg(path string, logger *slog.Logger) *FFmpeg {
	return &FFmpeg{
		path:   path,
		logger: logger.With("component", "transcode"),
	}
}

// Args returns the ffmpeg arguments converting src into dst. Output frames
// are yuv420p with even dimensions, which h264 decoders require.
func Args(src, dst string) []string {
	return []string{
		"-y",
		"-i", src,
		"-pix_fmt", "yuv420p",
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		dst,
	}
}

// ToMP4 converts src and returns the path of the new file, which is src
// with ".mp4" appended. The source file is left in place.
func (f *FFmpeg) ToMP4(ctx context.Context, src string) (string, error) {
	dst := src + ".mp4"

	f.logger.Info("converting clip", "src", src, "dst", dst)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.path, Args(src, dst)...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		_ = os.Remove(dst)
		f.logger.Error("conversion failed",
			"src", src,
			"error", err,
			"stderr", lastLine(stderr.String()),
		)
		return "", fmt.Errorf("run %s: %w: %w", f.path, domain.ErrConversionFailed, err)
	}

	return dst, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
