package events

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"fundvote/models"
)

// TopicVote is the topic carried by every vote event.
const TopicVote = "vote"

// VoteEvent is the envelope published once per successful vote.
type VoteEvent struct {
	EventID   string         `json:"event_id"`
	Topic     string         `json:"topic"`
	Voter     models.Address `json:"voter"`
	OptionID  uint32         `json:"option_id"`
	Amount    *models.Amount `json:"amount"`
	EmittedAt time.Time      `json:"emitted_at"`
}

// NewVoteEvent builds an envelope with a fresh event id.
func NewVoteEvent(voter models.Address, optionID uint32, amount *models.Amount) VoteEvent {
	return VoteEvent{
		EventID:   uuid.NewString(),
		Topic:     TopicVote,
		Voter:     voter,
		OptionID:  optionID,
		Amount:    amount,
		EmittedAt: time.Now().UTC(),
	}
}

// Emitter delivers vote events to external observers. Delivery is
// best-effort: the contract never fails a vote because an event was lost,
// so implementations report problems through logging, not return values.
type Emitter interface {
	VoteCast(voter models.Address, optionID uint32, amount *models.Amount)
}

// LogEmitter publishes vote events to the structured log.
type LogEmitter struct{}

func (LogEmitter) VoteCast(voter models.Address, optionID uint32, amount *models.Amount) {
	ev := NewVoteEvent(voter, optionID, amount)
	slog.Info("vote event",
		"event_id", ev.EventID,
		"topic", ev.Topic,
		"voter", ev.Voter,
		"option_id", ev.OptionID,
		"amount", ev.Amount.String(),
	)
}
