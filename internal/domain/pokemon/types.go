package pokemon

import "nuzlocke-tracker/internal/pkg/errs"

const (
	MinBox = 1
	MaxBox = 3
)

var (
	ErrInvalidSpecies = errs.New("invalid species")
	ErrInvalidBox     = errs.New("box number out of range")
	ErrMissingOwner   = errs.New("record must have an owner and a group")
)
