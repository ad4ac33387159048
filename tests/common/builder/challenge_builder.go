//go:build unit || e2e

package builder

import (
	"time"

	"nuzlocke-tracker/internal/domain/challenge"
	reqdto "nuzlocke-tracker/internal/handler/dto/request"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/google/uuid"
)

type ChallengeBuilder struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	CreatedBy   uuid.UUID
	Title       string
	Description string
	Reward      string
	Difficulty  string
	CreatedAt   time.Time
}

func NewChallengeBuilder() *ChallengeBuilder {
	return &ChallengeBuilder{
		ID:          uuid.New(),
		GroupID:     uuid.New(),
		CreatedBy:   uuid.New(),
		Title:       "No healing in battle",
		Description: "Items only between fights",
		Reward:      "300 coins",
		Difficulty:  "hard",
		CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *ChallengeBuilder) With(mutate func(*ChallengeBuilder)) *ChallengeBuilder {
	mutate(b)
	return b
}

func (b *ChallengeBuilder) Content() challenge.Content {
	return challenge.Content{
		Title:       b.Title,
		Description: b.Description,
		Reward:      b.Reward,
		Difficulty:  b.Difficulty,
	}
}

func (b *ChallengeBuilder) BuildChallenge() *challenge.Challenge {
	c, err := challenge.NewChallenge(b.ID, b.GroupID, b.CreatedBy, b.Content(), b.CreatedAt)
	if err != nil {
		panic(err)
	}
	return c
}

func (b *ChallengeBuilder) BuildChallengeView() *queries.ChallengeView {
	return queries.ToChallengeView(b.BuildChallenge())
}

func (b *ChallengeBuilder) BuildRequestDTO() reqdto.ChallengeRequest {
	return reqdto.ChallengeRequest{
		Title:       b.Title,
		Description: b.Description,
		Reward:      b.Reward,
		Difficulty:  b.Difficulty,
	}
}
