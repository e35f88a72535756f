package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware converts handler panics into a 500 response. The
// panic is also forwarded to Sentry so valuation failures surface in
// error tracking, not just in logs.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error("Panic recovered",
					zap.Any("panic", r),
					zap.String("path", ctx.Request.URL.Path),
					zap.String("stack", string(debug.Stack())))
				sentry.CurrentHub().Recover(r)
				ctx.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error. Please try again later.",
				})
				ctx.Abort()
			}
		}()
		ctx.Next()
	}
}
