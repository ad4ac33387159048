package repository

import (
	"nuzlocke-tracker/internal/infra"
	"nuzlocke-tracker/internal/pkg/errs"
)

// rowScanner is the common subset of pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// wrapLookupErr marks a missing row with the domain sentinel the usecases check for.
func wrapLookupErr(msg string, err error, notFound error) error {
	wrapped := infra.WrapRepoErr(msg, err)
	if infra.IsKind(wrapped, infra.KindNotFound) {
		return errs.Mark(wrapped, notFound)
	}
	return wrapped
}

func notFoundErr(msg string, notFound error) error {
	return errs.Mark(infra.NewRepoErr(infra.KindNotFound, msg), notFound)
}
