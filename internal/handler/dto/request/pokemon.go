package request

type AddLivingRequest struct {
	Name      string `json:"name" binding:"required,max=60"`
	BoxNumber int    `json:"box_number" binding:"required,min=1,max=3"`
}

type AddFallenRequest struct {
	Name string `json:"name" binding:"required,max=60"`
}

type LivingListQuery struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
	Box    *int   `form:"box" binding:"omitempty,min=1,max=3"`
}

type FallenListQuery struct {
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}

type SuggestQuery struct {
	Q string `form:"q" binding:"max=60"`
}

type HistoryQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}
