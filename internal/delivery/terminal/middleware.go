package terminal

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context) error

// withErrorHandling reports a failed action and keeps the menu running.
// Cancellation and closed input are passed through so the loop can stop.
func (h *Handler) withErrorHandling(action string, fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context) error {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, ErrInputClosed) {
			return err
		}

		h.logger.Error("handle error",
			zap.String("action", action),
			zap.Error(err),
		)
		h.console.Notice(msgInternalError)
		return nil
	}
}
