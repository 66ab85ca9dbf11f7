// Package logo validates uploaded brand logos before they are accepted into
// the agreement state. Logos arrive as data URLs; only PNG and JPEG up to
// 1MB are accepted.
package logo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const MaxSize = 1024 * 1024 // 1MB

var allowedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
}

var (
	ErrNotDataURL      = errors.New("logo must be a data URL")
	ErrTooLarge        = fmt.Errorf("logo exceeds the maximum size of %d bytes", MaxSize)
	ErrUnsupportedType = errors.New("logo must be a PNG or JPEG image")
)

// Validate checks that the given data URL carries a PNG or JPEG payload of
// at most 1MB. The declared media type is ignored; the decoded bytes are
// sniffed instead.
func Validate(dataURL string) error {
	payload, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return ErrNotDataURL
	}

	meta, encoded, ok := strings.Cut(payload, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return ErrNotDataURL
	}

	// A base64 payload longer than this cannot decode under the limit.
	if len(encoded) > (MaxSize/3+1)*4 {
		return ErrTooLarge
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return ErrNotDataURL
	}
	if len(data) > MaxSize {
		return ErrTooLarge
	}

	if !allowedTypes[http.DetectContentType(data)] {
		return ErrUnsupportedType
	}
	return nil
}
