package apperr

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a terminal error. A one-line message is written to w
// for the user; the full error with its goerr values goes to the
// context logger.
func Handle(ctx context.Context, w io.Writer, err error) {
	if err == nil {
		return
	}

	ctxlog.From(ctx).Error("application error", "error", err)

	if w != nil {
		_, _ = fmt.Fprintf(w, "slackline: %s\n", err.Error())
	}
}
