package middleware

import (
	"runtime/debug"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Recover catches panics in handlers so a single bad update cannot crash the
// poller. The user gets the generic error reply; detail goes to the log only.
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered in handler",
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()),
					)
					_ = c.Send("An error occurred. Please try again.")
				}
			}()
			return next(c)
		}
	}
}
