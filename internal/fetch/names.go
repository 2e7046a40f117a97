package fetch

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// RewriteGifv points .gifv links at the .mp4 rendition the same host serves.
func RewriteGifv(link string) string {
	if strings.HasSuffix(link, ".gifv") {
		return strings.TrimSuffix(link, "gifv") + "mp4"
	}
	return link
}

// IsGIF reports whether a clip needs conversion before it can be played.
func IsGIF(contentType, name string) bool {
	return contentType == "image/gif" || strings.EqualFold(filepath.Ext(name), ".gif")
}

// FilenameFor derives the local storage name of a clip. An upload's hinted
// name wins; otherwise the last segment of the URL path is used, and links
// without one are named after a hash of the URL.
func FilenameFor(link, hint string) string {
	if name := sanitize(hint); name != "" {
		return name
	}

	if u, err := url.Parse(link); err == nil {
		if name := sanitize(path.Base(u.Path)); name != "" {
			return name
		}
	}

	sum := sha256.Sum256([]byte(link))
	return hex.EncodeToString(sum[:])[:16]
}

func sanitize(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	switch name {
	case ".", "..", "/", `\`:
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == '/' || r == '\\' {
			return '_'
		}
		return r
	}, name)
}
