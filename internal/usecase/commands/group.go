package commands

import (
	"context"

	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/pkg/clock"
	"nuzlocke-tracker/internal/pkg/config"
	"nuzlocke-tracker/internal/usecase/shared"

	"github.com/google/uuid"
)

type GroupCommands interface {
	CreateGroup(ctx context.Context, req CreateGroupRequest, userID uuid.UUID) (*group.Group, error)
	JoinGroup(ctx context.Context, groupID uuid.UUID, username string, userID uuid.UUID) (*member.Member, error)
}

type CreateGroupRequest struct {
	Name     string
	Username string
}

type groupUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	rules member.Rules
}

func NewGroupUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) GroupCommands {
	return &groupUseCaseImpl{
		uow:   uow,
		clock: clk,
		rules: member.Rules{InitialLives: cfg.Group.InitialLives, InitialBalance: cfg.Group.InitialBalance},
	}
}

// CreateGroup creates the group and enrolls its creator as the first member.
func (uc *groupUseCaseImpl) CreateGroup(ctx context.Context, req CreateGroupRequest, userID uuid.UUID) (*group.Group, error) {
	now := uc.clock.Now()
	g, err := group.NewGroup(uuid.New(), req.Name, userID, now)
	if err != nil {
		return nil, err
	}
	m, err := member.NewMember(g.ID(), userID, req.Username, uc.rules, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Groups().Create(ctx, tx.DB(), g); derr != nil {
			return derr
		}
		return tx.Members().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (uc *groupUseCaseImpl) JoinGroup(ctx context.Context, groupID uuid.UUID, username string, userID uuid.UUID) (*member.Member, error) {
	m, err := member.NewMember(groupID, userID, username, uc.rules, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Groups().FindByID(ctx, tx.DB(), groupID); derr != nil {
			return derr
		}
		return tx.Members().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
