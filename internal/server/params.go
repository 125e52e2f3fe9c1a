package server

import (
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"dealflow/internal/domain"
	"dealflow/pkg/errcodes"
)

func pathID(r *http.Request, code failure.ErrorCode) (int64, error) {
	return pathInt64(r, "id", code)
}

func pathInt64(r *http.Request, name string, code failure.ErrorCode) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewError(code, name+" must be a positive integer")
	}

	return id, nil
}

// queryInt возвращает nil, если параметр не передан.
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ValidationError, name+" must be an integer")
	}

	return &n, nil
}

func queryIntOr(r *http.Request, name string, def int) (int, error) {
	n, err := queryInt(r, name)
	if err != nil || n == nil {
		return def, err
	}

	return *n, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil //nolint:nilnil
	}

	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ValidationError, name+" must be a boolean")
	}

	return &b, nil
}
