package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"displaybot/internal/domain"
	"displaybot/internal/fetch"
)

type Config struct {
	ClipDir        string
	SupportedTypes []string
	AllowedUsers   []string
	Timeout        time.Duration
}

// Pipeline turns submitted links and uploads into stored clips.
type Pipeline struct {
	clips      ClipStore
	fetcher    Fetcher
	transcoder Transcoder
	publisher  Publisher
	logger     *slog.Logger
	config     Config
}

func NewPipeline(
	clips ClipStore,
	fetcher Fetcher,
	transcoder Transcoder,
	publisher Publisher,
	logger *slog.Logger,
	cfg Config,
) *Pipeline {
	return &Pipeline{
		clips:      clips,
		fetcher:    fetcher,
		transcoder: transcoder,
		publisher:  publisher,
		logger:     logger.With("component", "ingest"),
		config:     cfg,
	}
}

// SubmitURL handles a link found in a chat message. .gifv links are
// rewritten to .mp4 and the content type is taken from a HEAD request.
func (p *Pipeline) SubmitURL(ctx context.Context, rawURL, author string) (*domain.Clip, error) {
	url := fetch.RewriteGifv(rawURL)
	if url != rawURL {
		p.logger.Debug("rewrote gifv link", "url", url)
	}

	if err := p.checkAuthor(author); err != nil {
		return nil, err
	}

	probe, err := p.fetcher.Probe(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("probe link: %w", err)
	}

	return p.Submit(ctx, domain.Submission{
		Source:      url,
		ContentType: probe.ContentType,
		Author:      author,
	})
}

// Submit validates, deduplicates, downloads, converts and records one clip,
// in that order. No record is written and no file is left behind unless
// every step succeeds.
func (p *Pipeline) Submit(ctx context.Context, sub domain.Submission) (*domain.Clip, error) {
	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	logger := p.logger.With("source", redact(sub), "author", sub.Author)

	if err := p.checkAuthor(sub.Author); err != nil {
		return nil, err
	}

	contentType := strings.ToLower(strings.TrimSpace(strings.Split(sub.ContentType, ";")[0]))
	if !slices.Contains(p.config.SupportedTypes, contentType) {
		logger.Info("link not supported", "content_type", sub.ContentType)
		return nil, fmt.Errorf("content type %q: %w", sub.ContentType, domain.ErrUnsupportedType)
	}

	filename, err := p.reserveName(ctx, sub, contentType)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Info("detected duplicate")
		}
		return nil, err
	}

	if err := os.MkdirAll(p.config.ClipDir, 0o755); err != nil {
		return nil, fmt.Errorf("create clip dir: %w", err)
	}

	final, err := p.claim(filename)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			logger.Info("clip already in flight", "filename", filename)
		}
		return nil, err
	}
	stored := false
	defer func() {
		if !stored {
			_ = os.Remove(final)
		}
	}()

	stage, err := os.MkdirTemp(p.config.ClipDir, ".incoming-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(stage)

	path := filepath.Join(stage, filename)
	if fetch.IsGIF(contentType, filename) {
		path = filepath.Join(stage, strings.TrimSuffix(filename, ".mp4"))
	}

	if err := p.fetcher.Download(ctx, sub.Source, path); err != nil {
		logger.Warn("download failed", "error", err)
		return nil, err
	}

	if fetch.IsGIF(contentType, path) {
		path, err = p.transcoder.ToMP4(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("convert gif: %w", err)
		}
	}

	if err := os.Rename(path, final); err != nil {
		return nil, fmt.Errorf("move clip into place: %w", err)
	}

	clip := &domain.Clip{
		Filename: filename,
		Author:   sub.Author,
		Created:  time.Now(),
		Incoming: true,
	}
	if !sub.Uploaded {
		clip.URL = sub.Source
	}

	if _, err := p.clips.Insert(ctx, clip); err != nil {
		return nil, fmt.Errorf("insert clip: %w", err)
	}
	stored = true

	logger.Info("saved new clip", "id", clip.ID, "filename", clip.Filename)

	if p.publisher != nil {
		event := domain.Event{Kind: domain.EventClipAdded, Clip: clip, Timestamp: time.Now().UTC()}
		if err := p.publisher.Publish(ctx, event); err != nil {
			logger.Warn("publish event failed", "error", err)
		}
	}

	return clip, nil
}

// reserveName picks the filename the clip will be stored under and rejects
// duplicates. Links are deduplicated by URL; a link whose name is already
// taken by a different link gets a hash prefix instead. Uploads carry no
// stable URL and are deduplicated by filename.
func (p *Pipeline) reserveName(ctx context.Context, sub domain.Submission, contentType string) (string, error) {
	name := fetch.FilenameFor(sub.Source, sub.FilenameHint)
	if fetch.IsGIF(contentType, name) {
		name += ".mp4"
	}

	if !sub.Uploaded && sub.Source != "" {
		exists, err := p.clips.ExistsByURL(ctx, sub.Source)
		if err != nil {
			return "", fmt.Errorf("check url: %w", err)
		}
		if exists {
			return "", fmt.Errorf("url %s: %w", sub.Source, domain.ErrDuplicate)
		}
	}

	taken, err := p.clips.ExistsByFilename(ctx, name)
	if err != nil {
		return "", fmt.Errorf("check filename: %w", err)
	}
	if !taken {
		return name, nil
	}
	if sub.Uploaded || sub.Source == "" {
		return "", fmt.Errorf("filename %s: %w", name, domain.ErrDuplicate)
	}

	sum := sha256.Sum256([]byte(sub.Source))
	return hex.EncodeToString(sum[:4]) + "-" + name, nil
}

// claim creates the clip's final file exclusively, so concurrent submissions
// of the same clip cannot both write to it. Only the claiming submission
// ever removes it again.
func (p *Pipeline) claim(filename string) (string, error) {
	final := filepath.Join(p.config.ClipDir, filename)
	f, err := os.OpenFile(final, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("filename %s: %w", filename, domain.ErrDuplicate)
		}
		return "", fmt.Errorf("claim filename: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(final)
		return "", fmt.Errorf("claim filename: %w", err)
	}
	return final, nil
}

func (p *Pipeline) checkAuthor(author string) error {
	if len(p.config.AllowedUsers) == 0 || slices.Contains(p.config.AllowedUsers, author) {
		return nil
	}
	p.logger.Info("submission from unknown user", "author", author)
	return fmt.Errorf("author %q: %w", author, domain.ErrNotAllowed)
}

// redact keeps bot tokens embedded in upload URLs out of the logs.
func redact(sub domain.Submission) string {
	if sub.Uploaded {
		return "upload:" + sub.FilenameHint
	}
	return sub.Source
}
