package api

import (
	"net/http"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/domain/chat"
	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/domain/pokemon"
	"nuzlocke-tracker/internal/handler/httperr"
	"nuzlocke-tracker/internal/handler/middleware"
	"nuzlocke-tracker/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errUnauthenticated = errs.New("user not authenticated")
	errInvalidGroupID  = errs.New("invalid group id")
	errInvalidRecordID = errs.New("invalid record id")
	errInvalidUserID   = errs.New("invalid user_id filter")
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// Checked in order; the first match wins.
var errorMappings = []errorMapping{
	{errs.ErrGroupNotFound, http.StatusNotFound, "Group not found"},
	{errs.ErrRecordNotFound, http.StatusNotFound, "Pokémon record not found"},
	{errs.ErrSpeciesNotFound, http.StatusNotFound, "Pokémon not found"},
	{errs.ErrChallengeNotFound, http.StatusNotFound, "Challenge not found"},
	{errs.ErrMessageNotFound, http.StatusNotFound, "Message not found"},
	{errs.ErrNotGroupMember, http.StatusForbidden, "You are not a member of this group"},
	{errs.ErrNotRecordOwner, http.StatusForbidden, "You can only change your own Pokémon"},
	{errs.ErrNotChallengeEditor, http.StatusForbidden, "Only the author or the group creator can change this challenge"},
	{errs.ErrNotMessageAuthor, http.StatusForbidden, "You can only delete your own messages"},
	{errs.ErrAlreadyMember, http.StatusConflict, "Already a member of this group"},
	{errs.ErrDuplicateLiving, http.StatusConflict, "This Pokémon is already in that box"},
	{errs.ErrNoLivesLeft, http.StatusUnprocessableEntity, "No lives left"},
	{pokemon.ErrInvalidBox, http.StatusBadRequest, "Box number must be between 1 and 3"},
	{pokemon.ErrInvalidSpecies, http.StatusBadRequest, "Invalid Pokémon"},
	{group.ErrInvalidName, http.StatusBadRequest, "Invalid group name"},
	{member.ErrInvalidUsername, http.StatusBadRequest, "Invalid username"},
	{challenge.ErrInvalidTitle, http.StatusBadRequest, "Invalid challenge title"},
	{challenge.ErrInvalidDescription, http.StatusBadRequest, "Invalid challenge description"},
	{challenge.ErrInvalidReward, http.StatusBadRequest, "Invalid challenge reward"},
	{challenge.ErrInvalidDifficulty, http.StatusBadRequest, "Unknown difficulty"},
	{chat.ErrInvalidBody, http.StatusBadRequest, "Message must be 1-1000 characters"},
	{errs.ErrDomainValidation, http.StatusBadRequest, "Invalid request data"},
	{errs.ErrCatalogUnavailable, http.StatusBadGateway, "Pokédex is unavailable"},
	{errs.ErrCooldownPersist, http.StatusServiceUnavailable, "Could not save the wheel cooldown"},
}

func abortWithDomainError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
	}
	return userID, ok
}

func parseGroupID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidGroupID), "Invalid group id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func parseRecordID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidRecordID), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// groupContext resolves the caller and the :groupId path parameter.
func groupContext(c *gin.Context) (groupID, userID uuid.UUID, ok bool) {
	if userID, ok = requireUserID(c); !ok {
		return
	}
	groupID, ok = parseGroupID(c)
	return
}

// parseUserFilter reads an optional user_id filter; a malformed value aborts with 400.
func parseUserFilter(c *gin.Context, raw string) (*uuid.UUID, bool) {
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidUserID), "Invalid query", nil)
		return nil, false
	}
	return &id, true
}
