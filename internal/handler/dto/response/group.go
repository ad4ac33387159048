package response

import (
	"nuzlocke-tracker/internal/domain/group"
	"nuzlocke-tracker/internal/domain/member"
	"nuzlocke-tracker/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GroupResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"created_by"`
	CreatedAt int64  `json:"created_at"`
}

func FromGroup(g *group.Group) *GroupResponse {
	return &GroupResponse{
		ID:        g.ID().String(),
		Name:      g.Name(),
		CreatedBy: g.CreatedBy().String(),
		CreatedAt: g.CreatedAt().Unix(),
	}
}

type MemberResponse struct {
	UserID   string `json:"user_id" copier:"-"`
	Username string `json:"username"`
	Lives    int    `json:"lives"`
	Balance  int64  `json:"balance"`
	Deaths   int    `json:"deaths"`
	JoinedAt int64  `json:"joined_at" copier:"-"`
}

func FromMember(m *member.Member) *MemberResponse {
	return &MemberResponse{
		UserID:   m.UserID().String(),
		Username: m.Username(),
		Lives:    m.Lives(),
		Balance:  m.Balance(),
		JoinedAt: m.JoinedAt().Unix(),
	}
}

// FromMemberViews copies the same-named fields and fills the ones that change type.
func FromMemberViews(views []*queries.MemberView) ([]*MemberResponse, error) {
	res := make([]*MemberResponse, len(views))
	for i, v := range views {
		r := &MemberResponse{}
		if err := copier.Copy(r, v); err != nil {
			return nil, err
		}
		r.UserID = v.UserID.String()
		r.JoinedAt = v.JoinedAt.Unix()
		res[i] = r
	}
	return res, nil
}
