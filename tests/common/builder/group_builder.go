//go:build unit || e2e

package builder

import (
	"time"

	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

var DefaultRules = member.Rules{InitialLives: 20, InitialBalance: 1000}

type GroupBuilder struct {
	GroupID   uuid.UUID
	Name      string
	OwnerID   uuid.UUID
	Username  string
	Lives     int
	Balance   int64
	CreatedAt time.Time
}

func NewGroupBuilder() *GroupBuilder {
	return &GroupBuilder{
		GroupID:   uuid.New(),
		Name:      "Kanto Crew",
		OwnerID:   uuid.New(),
		Username:  "red",
		Lives:     DefaultRules.InitialLives,
		Balance:   DefaultRules.InitialBalance,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *GroupBuilder) With(mutate func(*GroupBuilder)) *GroupBuilder {
	mutate(b)
	return b
}

func (b *GroupBuilder) BuildDomain() *group.Group {
	g, err := group.NewGroup(b.GroupID, b.Name, b.OwnerID, b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return g
}

func (b *GroupBuilder) BuildMember() *member.Member {
	m, err := member.Restore(b.GroupID, b.OwnerID, b.Username, b.Lives, b.Balance, b.CreatedAt, DefaultRules)
	if err != nil {
		panic(err)
	}
	return m
}

func (b *GroupBuilder) BuildMemberView() *queries.MemberView {
	return &queries.MemberView{
		UserID:   b.OwnerID,
		Username: b.Username,
		Lives:    b.Lives,
		Balance:  b.Balance,
		Deaths:   DefaultRules.InitialLives - b.Lives,
		JoinedAt: b.CreatedAt,
	}
}

func (b *GroupBuilder) BuildCreateRequestDTO() reqdto.CreateGroupRequest {
	return reqdto.CreateGroupRequest{Name: b.Name, Username: b.Username}
}
