package domain

import "errors"

var (
	ErrUnsupportedType  = errors.New("unsupported content type")
	ErrDuplicate        = errors.New("duplicate clip")
	ErrDownloadFailed   = errors.New("download failed")
	ErrConversionFailed = errors.New("conversion failed")
	ErrInvalidURL       = errors.New("invalid url")
	ErrUnknownStation   = errors.New("unknown station")
	ErrNotAllowed       = errors.New("user not allowed")
	ErrNotFound         = errors.New("not found")
)

// ReplyFor maps a user-facing failure to the chat reply for it.
func ReplyFor(err error) string {
	switch {
	case err == nil:
		return "👾 Added video to database."
	case errors.Is(err, ErrDuplicate):
		return "👾 Reposter!"
	case errors.Is(err, ErrUnsupportedType):
		return "Link not supported"
	case errors.Is(err, ErrInvalidURL):
		return "Link not valid"
	case errors.Is(err, ErrDownloadFailed):
		return "Download failed, try again later"
	case errors.Is(err, ErrConversionFailed):
		return "Could not convert that clip"
	case errors.Is(err, ErrNotAllowed):
		return "Sorry, you are not allowed to add clips"
	default:
		return "Something went wrong"
	}
}
