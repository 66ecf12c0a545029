package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dralafandy/Cura-dental-app/internal/models"
	"github.com/dralafandy/Cura-dental-app/internal/repository"
	"github.com/dralafandy/Cura-dental-app/pkg/logger"
	"github.com/gin-gonic/gin"

	"gorm.io/gorm"
)

// IdempotencyKeyHeader is the request header clients set on retryable writes
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLength = 128

// bodyRecorder keeps a copy of everything the handler writes
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency processes Idempotency-Key for mutating requests. The first request with a key
// runs and its response is stored; a retry with the same method, path and body gets the
// stored response back without running the handler again. Reusing a key for a different
// request, or while the first one is still running, is a conflict. Server errors and
// handler panics release the key so the client can retry.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodPatch && method != http.MethodDelete {
			c.Next()
			return
		}

		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key too long"})
			return
		}

		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "could not read request body"})
				return
			}
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		path := c.Request.URL.RequestURI()
		hash := requestHash(method, path, body)
		ctx := c.Request.Context()

		existing, err := repo.FindByKey(ctx, key)
		switch {
		case err == nil:
			replayOrReject(c, existing, hash)
			return
		case !errors.Is(err, gorm.ErrRecordNotFound):
			logger.Error("[Idempotency] Lookup failed", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency store unavailable"})
			return
		}

		record := &models.IdempotencyKey{
			Key:         key,
			RequestHash: hash,
			Method:      method,
			Path:        path,
		}
		if err := repo.Reserve(ctx, record); err != nil {
			if repository.IsDuplicateKeyError(err, "") {
				// Lost the race against a concurrent request with the same key
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "a request with this Idempotency-Key is already in progress"})
				return
			}
			logger.Error("[Idempotency] Reserve failed", "key", key, "error", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "idempotency store unavailable"})
			return
		}

		storeCtx := context.WithoutCancel(ctx)
		finished := false
		defer func() {
			// A panicking handler never reaches Complete; free the key and let the panic continue
			if !finished {
				release(storeCtx, repo, key)
			}
		}()

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder
		c.Next()
		finished = true

		status := recorder.Status()
		if status >= http.StatusInternalServerError {
			release(storeCtx, repo, key)
			return
		}
		if err := repo.Complete(storeCtx, key, status, recorder.body.Bytes()); err != nil {
			logger.Warn("[Idempotency] Could not store response", "key", key, "error", err)
		}
	}
}

func release(ctx context.Context, repo repository.IdempotencyRepository, key string) {
	if err := repo.Release(ctx, key); err != nil {
		logger.Warn("[Idempotency] Release failed", "key", key, "error", err)
	}
}

func replayOrReject(c *gin.Context, existing *models.IdempotencyKey, hash string) {
	if existing.RequestHash != hash {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "Idempotency-Key reuse with different request"})
		return
	}
	if !existing.Completed() {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "a request with this Idempotency-Key is already in progress"})
		return
	}
	c.Header("Idempotent-Replayed", "true")
	c.Data(existing.ResponseStatus, "application/json; charset=utf-8", existing.ResponseBody)
	c.Abort()
}

// requestHash is sha256 over method, path and body, newline separated
func requestHash(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method))
	h.Write([]byte{'\n'})
	h.Write([]byte(path))
	h.Write([]byte{'\n'})
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}
