package request

import "github.com/mcoot/pegsolitaire-go/internal/model"

// PositionRequest is the request body for select and click
type PositionRequest struct {
	Row *int `json:"row"`
	Col *int `json:"col"`
}

// Position returns the requested position, or false if a field is missing
func (r PositionRequest) Position() (model.Position, bool) {
	if r.Row == nil || r.Col == nil {
		return model.Position{}, false
	}
	return model.Position{Row: *r.Row, Col: *r.Col}, true
}

// MoveRequest is the request body for an explicit jump
type MoveRequest struct {
	From *model.Position `json:"from"`
	To   *model.Position `json:"to"`
}
