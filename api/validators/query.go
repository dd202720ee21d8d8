package validators

import (
	"net/http"
	"strconv"
	"strings"

	pkgerrors "github.com/kisansetu/kisansetu-server/pkg/errors"
)

// RequireQueryString returns the trimmed query parameter or a validation error.
func RequireQueryString(r *http.Request, key string) (string, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "query parameter is required").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// RequireQueryInt parses a mandatory integer query parameter.
func RequireQueryInt(r *http.Request, key string) (int, error) {
	raw, err := RequireQueryString(r, key)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}
