package infra

import (
	"errors"
	"log/slog"

	"coshare-scheduler/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
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

// WrapRepoErr classifies err by its postgres error code unless kind is given explicitly.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindDBFailure {
		slog.Error("Repository error: "+msg, slog.String("kind", string(k)), slog.Any("error", err))
	} else {
		slog.Debug("Repository error: "+msg, slog.String("kind", string(k)))
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return markKind(RepositoryError{Kind: k, msg: msg, err: err})
}

// NewRepoErr reports a repository condition that has no underlying driver error.
func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return markKind(RepositoryError{Kind: kind, msg: msg})
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsRetryableWrite reports whether a write lost a race with a concurrent writer.
func IsRetryableWrite(err error) bool {
	return IsKind(err, KindStale) || IsKind(err, KindExclusionViolated)
}

func classify(err error) RepositoryErrorKind {
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return KindDBFailure
	}
	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return KindDuplicateKey
	case pgErrCodeForeignKeyViolation:
		return KindForeignKeyViolated
	case pgErrCodeExclusionViolation:
		return KindExclusionViolated
	default:
		return KindDBFailure
	}
}

// markKind attaches the service-level kind so callers outside infra can classify the error.
func markKind(e RepositoryError) error {
	switch e.Kind {
	case KindNotFound:
		return errs.Mark(e, errs.ErrNotFound)
	case KindStale, KindExclusionViolated:
		return errs.Mark(e, errs.ErrStaleConflict)
	case KindDBFailure:
		return errs.Mark(e, errs.ErrDatabaseOperationFailed)
	default:
		return e
	}
}

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindStale              RepositoryErrorKind = "STALE_VERSION"
	KindExclusionViolated  RepositoryErrorKind = "EXCLUSION_VIOLATED"
)
