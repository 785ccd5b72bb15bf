package infra

import (
	"errors"
	"log/slog"

	"library-backend/internal/pkg/errs"
	"library-backend/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		slogger.Debug("Repository error: "+msg, logArgs...)
	} else {
		slogger.Error("Repository error: "+msg, logArgs...)
	}

	constraint := pgconv.ConstraintName(err)
	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, Constraint: constraint, msg: msg, err: err}
}

// ClassifyPgErr picks the kind from the driver error and wraps it.
func ClassifyPgErr(slogger *slog.Logger, msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(slogger, KindNotFound, msg, err)
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(slogger, KindDuplicateKey, msg, err)
	case pgconv.IsForeignKeyViolation(err):
		return WrapRepoErr(slogger, KindForeignKeyViolated, msg, err)
	case pgconv.IsCheckViolation(err):
		return WrapRepoErr(slogger, KindCheckViolated, msg, err)
	default:
		return WrapRepoErr(slogger, KindDBFailure, msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func ConstraintOf(err error) string {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Constraint
	}
	return ""
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindCheckViolated      RepositoryErrorKind = "CHECK_VIOLATED"
)
