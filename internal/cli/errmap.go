package cli

import (
	"errors"

	"github.com/blackroad/chlog/internal/changelog"
	clierrors "github.com/blackroad/chlog/internal/errors"
)

// mapError converts an error from the changelog layer into a categorized
// CLIError with remediation guidance. Already-structured errors pass
// through unchanged.
func mapError(err error) *clierrors.CLIError {
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		return cliErr
	}

	var (
		invalidType      *changelog.InvalidChangeTypeError
		projectNotFound  *changelog.ProjectNotFoundError
		versionNotFound  *changelog.VersionNotFoundError
		versionFinalized *changelog.VersionFinalizedError
		alreadyFinalized *changelog.AlreadyFinalizedError
		invalidVersion   *changelog.InvalidVersionError
		persistence      *changelog.PersistenceError
	)

	switch {
	case errors.As(err, &invalidType):
		return clierrors.Wrap(err, clierrors.Invariant,
			"Use one of: feat, fix, breaking, perf, refactor, docs, chore")
	case errors.Is(err, changelog.ErrEmptySummary):
		return clierrors.Wrap(err, clierrors.Invariant,
			"Provide a non-empty one-line summary of the change")
	case errors.As(err, &versionFinalized):
		return clierrors.Wrap(err, clierrors.Invariant,
			"Record the change against a new draft version instead")
	case errors.As(err, &alreadyFinalized):
		return clierrors.Wrap(err, clierrors.Invariant)
	case errors.Is(err, changelog.ErrNoChangesToBump):
		return clierrors.Wrap(err, clierrors.Invariant,
			"Record draft changes with 'chlog add' before requesting a bump")
	case errors.As(err, &invalidVersion):
		return clierrors.Wrap(err, clierrors.Invariant,
			"Pass the current version as MAJOR.MINOR.PATCH, e.g. 1.2.3")
	case errors.As(err, &projectNotFound):
		return clierrors.Wrap(err, clierrors.NotFound,
			"Run 'chlog list' to see tracked projects")
	case errors.As(err, &versionNotFound):
		return clierrors.Wrap(err, clierrors.NotFound,
			"Record at least one change with 'chlog add' before finalizing")
	case errors.As(err, &persistence):
		return clierrors.Wrap(err, clierrors.Persistence,
			"Check permissions and free space on the store path",
			"The previous store contents are untouched")
	}

	return clierrors.Wrap(err, clierrors.Argument)
}
