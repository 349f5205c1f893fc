package entity

// Selection holds the axis labels a participant picked for the next placement. Empty means not picked.
type Selection struct {
	Row    string `json:"row,omitempty"`
	Column string `json:"column,omitempty"`
}

func (that Selection) IsComplete() bool {
	return that.Row != "" && that.Column != ""
}

type Participant struct {
	ID        uint64    `json:"id"`
	Selection Selection `json:"selection"`
}

func NewParticipant(id uint64) *Participant {
	return &Participant{ID: id}
}

func (that *Participant) ClearSelection() {
	that.Selection = Selection{}
}
