package commands

import (
	"context"

	"nuzlocke-tracker/internal/domain/challenge"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/errs"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type ChallengeCommands interface {
	CreateChallenge(ctx context.Context, groupID, userID uuid.UUID, content challenge.Content) (*challenge.Challenge, error)
	UpdateChallenge(ctx context.Context, groupID, challengeID, userID uuid.UUID, content challenge.Content) (*challenge.Challenge, error)
	DeleteChallenge(ctx context.Context, groupID, challengeID, userID uuid.UUID) error
}

type challengeUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewChallengeUseCase(uow shared.UnitOfWork, clk clock.Clock) ChallengeCommands {
	return &challengeUseCaseImpl{uow: uow, clock: clk}
}

func (uc *challengeUseCaseImpl) CreateChallenge(ctx context.Context, groupID, userID uuid.UUID, content challenge.Content) (*challenge.Challenge, error) {
	c, err := challenge.NewChallenge(uuid.New(), groupID, userID, content, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := requireMember(ctx, uc.uow, groupID, userID); err != nil {
		return nil, err
	}

	repos := uc.uow.Reads()
	if err := repos.Challenges().Create(ctx, repos.DB(), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *challengeUseCaseImpl) UpdateChallenge(ctx context.Context, groupID, challengeID, userID uuid.UUID, content challenge.Content) (*challenge.Challenge, error) {
	var updated *challenge.Challenge
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := lockEditableChallenge(ctx, tx, groupID, challengeID, userID)
		if err != nil {
			return err
		}
		if err := c.Edit(content, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Challenges().Save(ctx, tx.DB(), c); err != nil {
			return err
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *challengeUseCaseImpl) DeleteChallenge(ctx context.Context, groupID, challengeID, userID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := lockEditableChallenge(ctx, tx, groupID, challengeID, userID); err != nil {
			return err
		}
		return tx.Challenges().Delete(ctx, tx.DB(), challengeID)
	})
}

// lockEditableChallenge loads the challenge for update and checks that userID
// may change it. A challenge of another group reads as missing.
func lockEditableChallenge(ctx context.Context, tx shared.Tx, groupID, challengeID, userID uuid.UUID) (*challenge.Challenge, error) {
	c, err := tx.Challenges().FindForUpdate(ctx, tx.DB(), challengeID)
	if err != nil {
		return nil, err
	}
	if c.GroupID() != groupID {
		return nil, errs.ErrChallengeNotFound
	}
	if c.CreatedBy() == userID {
		return c, nil
	}

	g, err := tx.Groups().FindByID(ctx, tx.DB(), groupID)
	if err != nil {
		return nil, err
	}
	if !c.EditableBy(userID, g.CreatedBy()) {
		return nil, errs.ErrNotChallengeEditor
	}
	return c, nil
}
