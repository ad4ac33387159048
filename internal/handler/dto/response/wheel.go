package response

import (
	"nuzlocke-tracker/internal/domain/wheel"
	"nuzlocke-tracker/internal/usecase/commands"
	"nuzlocke-tracker/internal/usecase/queries"
)

type SegmentResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Color        string `json:"color"`
	BalanceDelta int64  `json:"balance_delta,omitempty"`
}

func fromSegment(s wheel.Segment) SegmentResponse {
	return SegmentResponse(s)
}

type OutcomeResponse struct {
	Index     int             `json:"index"`
	Segment   SegmentResponse `json:"segment"`
	SpunAt    int64           `json:"spun_at"`
	SettledAt int64           `json:"settled_at"`
}

type WheelStatusResponse struct {
	State            string            `json:"state"`
	RemainingSeconds int64             `json:"remaining_seconds"`
	Remaining        string            `json:"remaining"`
	Angle            float64           `json:"angle"`
	SettlesAt        *int64            `json:"settles_at,omitempty"`
	LastOutcome      *OutcomeResponse  `json:"last_outcome,omitempty"`
	Segments         []SegmentResponse `json:"segments"`
}

func FromWheelStatus(s *commands.WheelStatus) *WheelStatusResponse {
	res := &WheelStatusResponse{
		State:            string(s.State),
		RemainingSeconds: int64(s.Remaining.Seconds()),
		Remaining:        wheel.FormatRemaining(s.Remaining),
		Angle:            s.Angle,
		Segments:         make([]SegmentResponse, len(s.Segments)),
	}
	for i, seg := range s.Segments {
		res.Segments[i] = fromSegment(seg)
	}
	if s.State == wheel.StateSpinning {
		at := s.SettlesAt.UnixMilli()
		res.SettlesAt = &at
	}
	if o := s.LastOutcome; o != nil {
		res.LastOutcome = &OutcomeResponse{
			Index:     o.Index,
			Segment:   fromSegment(o.Segment),
			SpunAt:    o.SpunAt.Unix(),
			SettledAt: o.SettledAt.Unix(),
		}
	}
	return res
}

// SpinResponse never names the segment: the outcome is revealed by the
// spin_settled event once the wheel stops.
type SpinResponse struct {
	Accepted         bool    `json:"accepted"`
	Angle            float64 `json:"angle,omitempty"`
	SettlesAt        int64   `json:"settles_at,omitempty"`
	RemainingSeconds int64   `json:"remaining_seconds"`
	Remaining        string  `json:"remaining"`
}

func FromSpinResult(r *commands.SpinResult) *SpinResponse {
	res := &SpinResponse{
		Accepted:         r.Accepted,
		RemainingSeconds: int64(r.Remaining.Seconds()),
		Remaining:        wheel.FormatRemaining(r.Remaining),
	}
	if r.Accepted {
		res.Angle = r.Angle
		res.SettlesAt = r.SettlesAt.UnixMilli()
	}
	return res
}

type SpinHistoryItemResponse struct {
	ID           string `json:"id"`
	SegmentIndex int    `json:"segment_index"`
	SegmentName  string `json:"segment_name"`
	BalanceDelta int64  `json:"balance_delta"`
	SpunAt       int64  `json:"spun_at"`
	SettledAt    int64  `json:"settled_at"`
}

func FromSpinViews(views []*queries.SpinView) []*SpinHistoryItemResponse {
	res := make([]*SpinHistoryItemResponse, len(views))
	for i, v := range views {
		res[i] = &SpinHistoryItemResponse{
			ID:           v.ID.String(),
			SegmentIndex: v.SegmentIndex,
			SegmentName:  v.SegmentName,
			BalanceDelta: v.BalanceDelta,
			SpunAt:       v.SpunAt.Unix(),
			SettledAt:    v.SettledAt.Unix(),
		}
	}
	return res
}
