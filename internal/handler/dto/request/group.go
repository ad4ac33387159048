package request

type CreateGroupRequest struct {
	Name     string `json:"name" binding:"required,max=60"`
	Username string `json:"username" binding:"required,max=40"`
}

type JoinGroupRequest struct {
	Username string `json:"username" binding:"required,max=40"`
}
