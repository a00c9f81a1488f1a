package httpx

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodyBytes — лимит тела запроса, если он не задан в конфиге.
const DefaultMaxBodyBytes int64 = 1 << 20

// ErrBodyTooLarge — тело длиннее лимита.
var ErrBodyTooLarge = errors.New("request body too large")

// ReadBody читает тело запроса целиком, не больше limit байт (limit <= 0 — DefaultMaxBodyBytes).
func ReadBody(c *gin.Context, limit int64) ([]byte, error) {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}

	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrBodyTooLarge
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return raw, nil
}
