package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/custodia-labs/repolist/internal/adapters/driving/styles"
	"github.com/custodia-labs/repolist/internal/connectors/github"
	"github.com/custodia-labs/repolist/internal/core/domain"
)

// PrintError writes err to w, styled when w is a terminal,
// followed by a hint for errors the user can fix.
func PrintError(w io.Writer, err error) {
	st := styles.DefaultStyles()

	fmt.Fprintln(w, styles.Render(w, st.Error, "Error: "+err.Error()))
	if hint := errorHint(err); hint != "" {
		fmt.Fprintln(w, styles.Render(w, st.Muted, hint))
	}
}

// errorHint suggests a next step for err, or returns "".
func errorHint(err error) string {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return "Hint: run 'repolist config set-token' or set REPOLIST_TOKEN."
	case errors.Is(err, domain.ErrConfiguration):
		return "Hint: check 'repolist config show'."
	case github.IsUnauthorized(err):
		return "Hint: the token was rejected; it may be expired or revoked."
	case github.IsRateLimited(err):
		return "Hint: the GitHub API rate limit is exhausted; try again after it resets."
	case errors.Is(err, domain.ErrPageLimitExceeded):
		return "Hint: raise github.max_pages in the config file."
	default:
		return ""
	}
}
