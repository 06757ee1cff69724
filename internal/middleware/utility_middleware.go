package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ecoroute/internal/models"
	"ecoroute/internal/utils"
	"ecoroute/pkg/cache"
	"ecoroute/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

// NewCORS builds the CORS handler that wraps the gin engine.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", utils.RequestIDHeader, utils.SessionIDHeader},
		ExposedHeaders:   []string{"Content-Length", "Content-Disposition", utils.RequestIDHeader},
		AllowCredentials: !utils.Contains(allowedOrigins, "*"),
		MaxAge:           300,
	})
}

// RequestIDMiddleware adds a request ID to each request
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(utils.RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Header(utils.RequestIDHeader, requestID)
		c.Next()
	}
}

// LoggingMiddleware provides structured logging
func LoggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = c.Request.URL.Path
		}
		log.LogAPIRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start), c.GetString(utils.RequestIDKey))
	}
}

// RecoveryMiddleware turns a handler panic into a 500 envelope.
func RecoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithContext(c.Request.Context()).WithField("panic", recovered).Error("Handler panicked")
		utils.InternalServerErrorResponse(c)
		c.Abort()
	})
}

// SessionKey identifies the submitting client: the X-Session-ID header when
// present, otherwise the client IP.
func SessionKey(c *gin.Context) string {
	if session := c.GetHeader(utils.SessionIDHeader); session != "" {
		return session
	}
	return c.ClientIP()
}

// SubmissionGuard allows one in-flight request per session. A busy session
// gets 409 with a form state it can render. If the guard backend fails the
// request is let through.
func SubmissionGuard(guard cache.Guard, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := SessionKey(c)
		ctx := c.Request.Context()

		token, err := guard.TryAcquire(ctx, key)
		if errors.Is(err, cache.ErrGuardHeld) {
			log.WithContext(ctx).WithField(utils.SessionIDKey, key).Info("Rejected concurrent route submission")
			state := models.InitialFormState()
			state.Message = utils.StringPtr(utils.MsgSubmissionInProgress)
			utils.FormStateResponse(c, http.StatusConflict, "SUBMISSION_IN_PROGRESS", utils.MsgSubmissionInProgress, state, nil)
			c.Abort()
			return
		}
		if err != nil {
			log.WithContext(ctx).WithError(err).WithField("guard", guard.Name()).Warn("Submission guard unavailable")
			c.Next()
			return
		}

		c.Set(utils.SessionIDKey, key)
		defer func() {
			if err := guard.Release(context.WithoutCancel(ctx), key, token); err != nil {
				log.WithContext(ctx).WithError(err).Warn("Failed to release submission guard")
			}
		}()
		c.Next()
	}
}
