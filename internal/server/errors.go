package server

import (
	"context"
	"errors"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"dealflow/internal/domain"
	"dealflow/pkg/httpx/reply"
)

// replyError переводит доменные ошибки в HTTP-ответ, остальное отдаёт reply.Error.
func replyError(ctx context.Context, w http.ResponseWriter, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		reply.Error(ctx, w, err)
		return
	}

	switch {
	case domain.IsInvalidArgument(err):
		reply.Error(ctx, w, failure.NewInvalidArgumentErrorFromError(
			err,
			failure.WithCode(appErr.Code),
			failure.WithDescription(appErr.Message),
		))
	case domain.IsNotFound(err):
		reply.Status(ctx, w, http.StatusNotFound, appErr.Code, appErr.Message)
	case domain.IsConflict(err):
		reply.Status(ctx, w, http.StatusConflict, appErr.Code, appErr.Message)
	default:
		reply.Error(ctx, w, err)
	}
}
