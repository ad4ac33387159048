package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Group errors
	ErrGroupNotFound  = errors.New("group not found")
	ErrNotGroupMember = errors.New("user is not a member of the group")
	ErrAlreadyMember  = errors.New("user already joined the group")
	ErrNoLivesLeft    = errors.New("no lives left")

	// Pokemon errors
	ErrSpeciesNotFound = errors.New("species not found")
	ErrRecordNotFound  = errors.New("pokemon record not found")
	ErrDuplicateLiving = errors.New("pokemon already in this box")
	ErrNotRecordOwner  = errors.New("pokemon record not owned by user")

	// Challenge errors
	ErrChallengeNotFound  = errors.New("challenge not found")
	ErrNotChallengeEditor = errors.New("challenge can only be changed by its author or the group creator")

	// Chat errors
	ErrMessageNotFound  = errors.New("chat message not found")
	ErrNotMessageAuthor = errors.New("chat message not written by user")

	// Wheel errors
	ErrCooldownPersist = errors.New("failed to persist wheel cooldown")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrCatalogUnavailable      = errors.New("species catalog unavailable")
)
