package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/taskapi/pkg/slogx"
)

// Recoverer turns a panicking handler into a 500 envelope. When exposeDetail
// is set the panic value is echoed in the error field.
func Recoverer(exposeDetail bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// net/http uses this sentinel to abort a response on purpose.
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				slogx.FromContext(r.Context()).Error("panic serving request",
					"panic", rec,
					"stack", string(debug.Stack()),
				)

				detail := ""
				if exposeDetail {
					detail = fmt.Sprint(rec)
				}
				WriteFailure(w, http.StatusInternalServerError, "Server error", detail)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
