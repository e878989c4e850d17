package robot

import (
	"github.com/beka-birhanu/cleaner-api/domain"
	"github.com/beka-birhanu/cleaner-api/path"
)

// PathRequest is the body of an enter-path request.
type PathRequest struct {
	Start    *path.Coordinate `json:"start" binding:"required"`
	Commands []MoveRequest    `json:"commands" binding:"dive"`
}

// MoveRequest is a single command of a PathRequest.
type MoveRequest struct {
	Direction path.Direction `json:"direction" binding:"required,direction"`
	Steps     int            `json:"steps" binding:"min=0,max=2147483647"`
}

// Moves converts the request commands into robot moves.
func (r *PathRequest) Moves() []path.Move {
	moves := make([]path.Move, len(r.Commands))
	for n, c := range r.Commands {
		moves[n] = path.Move{Direction: c.Direction, Steps: c.Steps}
	}
	return moves
}

// ReportResponse is the execution report returned to clients.
type ReportResponse struct {
	ID        int     `json:"id"`
	Timestamp string  `json:"timestamp"`
	Commands  int     `json:"commands"`
	Result    int     `json:"result"`
	Duration  float64 `json:"duration"`
}

// RecentResponse lists the latest execution reports.
type RecentResponse struct {
	Reports []ReportResponse `json:"reports"`
}

func toResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ID:        r.ID,
		Timestamp: r.Timestamp.UTC().Format(timestampLayout),
		Commands:  r.Commands,
		Result:    r.Result,
		Duration:  r.Duration,
	}
}
