package check_availability

import (
	"context"

	getBlockedStarts "github.com/m04kA/AXB-BookingService/internal/usecase/get_blocked_starts"
)

type GetBlockedStartsUseCase interface {
	Execute(ctx context.Context, req *getBlockedStarts.Request) (*getBlockedStarts.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
