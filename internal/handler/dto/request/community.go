package request

type ChallengeRequest struct {
	Title       string `json:"title" binding:"required,max=80"`
	Description string `json:"description" binding:"required,max=500"`
	Reward      string `json:"reward" binding:"max=120"`
	Difficulty  string `json:"difficulty" binding:"omitempty,oneof=easy medium hard extreme"`
}

type ChatMessageRequest struct {
	Body string `json:"body" binding:"required,max=1000"`
}
