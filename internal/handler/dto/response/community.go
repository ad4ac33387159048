package response

import (
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"
)

type ChallengeResponse struct {
	ID          string `json:"id"`
	CreatedBy   string `json:"created_by"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Difficulty  string `json:"difficulty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromChallengeView(v *queries.ChallengeView) *ChallengeResponse {
	return &ChallengeResponse{
		ID:          v.ID.String(),
		CreatedBy:   v.CreatedBy.String(),
		Title:       v.Title,
		Description: v.Description,
		Reward:      v.Reward,
		Difficulty:  v.Difficulty,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromChallengeViews(views []*queries.ChallengeView) []*ChallengeResponse {
	res := make([]*ChallengeResponse, len(views))
	for i, v := range views {
		res[i] = FromChallengeView(v)
	}
	return res
}

type ChatMessageResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

func FromChatMessageView(v *queries.ChatMessageView) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        v.ID.String(),
		UserID:    v.UserID.String(),
		Username:  v.Username,
		Body:      v.Body,
		CreatedAt: v.CreatedAt.Unix(),
	}
}

func FromChatMessageViews(views []*queries.ChatMessageView) []*ChatMessageResponse {
	res := make([]*ChatMessageResponse, len(views))
	for i, v := range views {
		res[i] = FromChatMessageView(v)
	}
	return res
}

func FromChatPosted(p *commands.ChatPosted) *ChatMessageResponse {
	return &ChatMessageResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Username:  p.Username,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.Unix(),
	}
}
