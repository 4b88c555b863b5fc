package domain

import "time"

type PollStatus string

const (
	PollStatusActive PollStatus = "active"
	PollStatusClosed PollStatus = "closed"
)

type Poll struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Options       []PollOption `json:"options"`
	Category      string       `json:"category"`
	Status        PollStatus   `json:"status"`
	AllowMultiple bool         `json:"allowMultiple"`
	TotalVotes    int          `json:"totalVotes"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type PollOption struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Votes int    `json:"votes"`
}

// HasOption reports whether the given id belongs to one of this poll's
// options.
func (p *Poll) HasOption(id string) bool {
	for _, opt := range p.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// RecomputeTotal sets TotalVotes to the sum of the option counters.
// TotalVotes is derived state and must never be incremented directly.
func (p *Poll) RecomputeTotal() {
	total := 0
	for _, opt := range p.Options {
		total += opt.Votes
	}
	p.TotalVotes = total
}

// Clone returns a deep copy, including the options slice.
func (p *Poll) Clone() *Poll {
	clone := *p
	clone.Options = make([]PollOption, len(p.Options))
	copy(clone.Options, p.Options)
	return &clone
}
