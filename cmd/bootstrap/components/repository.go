package components

import (
	"nuzlocke-tracker/internal/infra/repository"
	"nuzlocke-tracker/internal/infra/uow"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		repository.NewGroupRepository,
		repository.NewMemberRepository,
		repository.NewLivingRepository,
		repository.NewFallenRepository,
		repository.NewSpinRepository,
		repository.NewChallengeRepository,
		repository.NewChatRepository,
		uow.NewRepositories,
	),
)
