package contract

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"fundvote/events"
	"fundvote/kv"
	"fundvote/ledger"
	"fundvote/models"
)

// Clock supplies the timestamp recorded on each vote, as unix seconds.
type Clock func() uint64

// SystemClock reads the wall clock.
func SystemClock() uint64 {
	return uint64(time.Now().Unix())
}

// Contract is the voting state machine. Every public method is one unit of
// work: it stages all writes in a kv.Batch and commits them with a single
// atomic Apply, so a failed precondition or failed fund transfer persists
// nothing. Callers must pass an already-authenticated principal; the
// contract compares identities but performs no cryptography.
//
// A single RWMutex serializes operations. No two mutations ever interleave,
// which is what lets each one be written as a plain read-check-write
// sequence over the store.
type Contract struct {
	mu     sync.RWMutex
	store  kv.Store
	ledger ledger.Ledger
	clock  Clock
	events events.Emitter
}

func New(store kv.Store, lgr ledger.Ledger, clock Clock, emitter events.Emitter) *Contract {
	return &Contract{store: store, ledger: lgr, clock: clock, events: emitter}
}

// read returns the value for key, consulting the staged batch before the
// store so an operation observes its own writes.
func (c *Contract) read(batch *kv.Batch, key kv.Key) ([]byte, bool, error) {
	if batch != nil {
		if v, ok := batch.Get(key); ok {
			return v, true, nil
		}
	}
	return c.store.Get(key)
}

func (c *Contract) readJSON(batch *kv.Batch, key kv.Key, v any) (bool, error) {
	raw, ok, err := c.read(batch, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("corrupt value at %s/%s: %w", key.Scope, key.Name, err)
	}
	return true, nil
}

func stage(batch *kv.Batch, key kv.Key, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode value for %s/%s: %w", key.Scope, key.Name, err)
	}
	batch.Set(key, raw)
	return nil
}

// stageOption writes an option with zeroed aggregates plus its companion
// counter keys, rejecting ids already present in the store or the batch.
func (c *Contract) stageOption(batch *kv.Batch, opt models.Option) error {
	if _, ok, err := c.read(batch, optionKey(opt.ID)); err != nil {
		return err
	} else if ok {
		return ErrOptionExists
	}

	opt.VoteCount = 0
	opt.TotalFunds = models.NewAmount(0)

	if err := stage(batch, optionKey(opt.ID), opt); err != nil {
		return err
	}
	if err := stage(batch, voteCountKey(opt.ID), uint64(0)); err != nil {
		return err
	}
	if err := stage(batch, totalFundsKey(opt.ID), models.NewAmount(0)); err != nil {
		return err
	}

	var ids []uint32
	if _, err := c.readJSON(batch, optionIDsKey(), &ids); err != nil {
		return err
	}
	ids = append(ids, opt.ID)
	slices.Sort(ids)
	return stage(batch, optionIDsKey(), ids)
}

// Initialize performs one-time setup: it stores the admin, activates
// voting, zeroes the vote counter, and seeds the supplied options. It fails
// with ErrAlreadyInitialized if an admin is already stored and with
// ErrOptionExists if the input repeats an option id; either way nothing is
// persisted.
func (c *Contract) Initialize(admin models.Address, options []models.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok, err := c.store.Get(adminKey()); err != nil {
		return err
	} else if ok {
		return ErrAlreadyInitialized
	}

	batch := kv.NewBatch()
	if err := stage(batch, adminKey(), admin); err != nil {
		return err
	}
	if err := stage(batch, activeKey(), true); err != nil {
		return err
	}
	if err := stage(batch, totalVotesKey(), uint32(0)); err != nil {
		return err
	}

	for _, opt := range options {
		if err := c.stageOption(batch, opt); err != nil {
			return err
		}
	}

	return c.store.Apply(batch)
}

// Vote casts voter's single vote for optionID, moving amount of token to
// the option's recipient. It returns the index of the appended vote record.
// Preconditions are checked in order, each with its own error; a failed
// fund transfer aborts the vote with no state change.
func (c *Contract) Vote(voter models.Address, optionID uint32, amount *models.Amount, token models.Address) (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var active bool
	if _, err := c.readJSON(nil, activeKey(), &active); err != nil {
		return 0, err
	}
	if !active {
		return 0, ErrVotingInactive
	}

	if _, ok, err := c.store.Get(voterRecordKey(string(voter))); err != nil {
		return 0, err
	} else if ok {
		return 0, ErrAlreadyVoted
	}

	if amount == nil || amount.Sign() <= 0 {
		return 0, ErrInvalidAmount
	}

	var option models.Option
	if ok, err := c.readJSON(nil, optionKey(optionID), &option); err != nil {
		return 0, err
	} else if !ok {
		return 0, ErrInvalidOption
	}

	// All preconditions hold and nothing is committed yet, so a transfer
	// failure simply aborts the call.
	if err := c.ledger.Transfer(token, voter, option.Recipient, &amount.Int); err != nil {
		return 0, fmt.Errorf("fund transfer: %w", err)
	}

	batch := kv.NewBatch()

	var voteCount uint64
	if _, err := c.readJSON(batch, voteCountKey(optionID), &voteCount); err != nil {
		return 0, err
	}
	voteCount++
	if err := stage(batch, voteCountKey(optionID), voteCount); err != nil {
		return 0, err
	}

	totalFunds := models.NewAmount(0)
	if _, err := c.readJSON(batch, totalFundsKey(optionID), totalFunds); err != nil {
		return 0, err
	}
	totalFunds.Add(&totalFunds.Int, &amount.Int)
	if err := stage(batch, totalFundsKey(optionID), totalFunds); err != nil {
		return 0, err
	}

	option.VoteCount = voteCount
	option.TotalFunds = totalFunds
	if err := stage(batch, optionKey(optionID), option); err != nil {
		return 0, err
	}

	var totalVotes uint32
	if _, err := c.readJSON(batch, totalVotesKey(), &totalVotes); err != nil {
		return 0, err
	}

	record := models.VoteRecord{
		Voter:     voter,
		OptionID:  optionID,
		Amount:    amount,
		Timestamp: c.clock(),
	}
	if err := stage(batch, voteRecordKey(totalVotes), record); err != nil {
		return 0, err
	}
	if err := stage(batch, voterRecordKey(string(voter)), optionID); err != nil {
		return 0, err
	}
	if err := stage(batch, totalVotesKey(), totalVotes+1); err != nil {
		return 0, err
	}

	if err := c.store.Apply(batch); err != nil {
		return 0, err
	}

	c.events.VoteCast(voter, optionID, amount)

	return totalVotes, nil
}

// ToggleVoting flips the active flag and returns the new value. Only the
// stored admin may call it.
func (c *Contract) ToggleVoting(admin models.Address) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(admin); err != nil {
		return false, err
	}

	var active bool
	if _, err := c.readJSON(nil, activeKey(), &active); err != nil {
		return false, err
	}

	batch := kv.NewBatch()
	if err := stage(batch, activeKey(), !active); err != nil {
		return false, err
	}
	if err := c.store.Apply(batch); err != nil {
		return false, err
	}
	return !active, nil
}

// AddOption stores a new option with zeroed aggregates. Only the stored
// admin may call it; an id already in use fails with ErrOptionExists.
func (c *Contract) AddOption(admin models.Address, opt models.Option) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireAdmin(admin); err != nil {
		return err
	}

	batch := kv.NewBatch()
	if err := c.stageOption(batch, opt); err != nil {
		return err
	}
	return c.store.Apply(batch)
}

func (c *Contract) requireAdmin(admin models.Address) error {
	var stored models.Address
	ok, err := c.readJSON(nil, adminKey(), &stored)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotInitialized
	}
	if admin != stored {
		return ErrUnauthorized
	}
	return nil
}

// Queries. All read-only; "not found" is a nil result, never an error.

// GetOptionResults returns the option merged with its live aggregates, or
// nil if the id is unknown.
func (c *Contract) GetOptionResults(optionID uint32) (*models.Option, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.optionResults(optionID)
}

func (c *Contract) optionResults(optionID uint32) (*models.Option, error) {
	var option models.Option
	ok, err := c.readJSON(nil, optionKey(optionID), &option)
	if err != nil || !ok {
		return nil, err
	}

	var voteCount uint64
	if _, err := c.readJSON(nil, voteCountKey(optionID), &voteCount); err != nil {
		return nil, err
	}
	totalFunds := models.NewAmount(0)
	if _, err := c.readJSON(nil, totalFundsKey(optionID), totalFunds); err != nil {
		return nil, err
	}

	option.VoteCount = voteCount
	option.TotalFunds = totalFunds
	return &option, nil
}

// GetAllResults returns every known option with current aggregates, in
// ascending id order.
func (c *Contract) GetAllResults() ([]models.Option, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var ids []uint32
	if _, err := c.readJSON(nil, optionIDsKey(), &ids); err != nil {
		return nil, err
	}

	results := make([]models.Option, 0, len(ids))
	for _, id := range ids {
		opt, err := c.optionResults(id)
		if err != nil {
			return nil, err
		}
		if opt != nil {
			results = append(results, *opt)
		}
	}
	return results, nil
}

// HasVoted reports whether voter has already cast a vote.
func (c *Contract) HasVoted(voter models.Address) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok, err := c.store.Get(voterRecordKey(string(voter)))
	return ok, err
}

// GetUserVote returns the option id voter chose, or nil if they have not
// voted.
func (c *Contract) GetUserVote(voter models.Address) (*uint32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var optionID uint32
	ok, err := c.readJSON(nil, voterRecordKey(string(voter)), &optionID)
	if err != nil || !ok {
		return nil, err
	}
	return &optionID, nil
}

// GetTotalVotes returns the number of votes cast, which is also the next
// free vote record index.
func (c *Contract) GetTotalVotes() (uint32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total uint32
	_, err := c.readJSON(nil, totalVotesKey(), &total)
	return total, err
}

// IsActive reports whether votes are currently accepted.
func (c *Contract) IsActive() (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var active bool
	_, err := c.readJSON(nil, activeKey(), &active)
	return active, err
}

// IsInitialized reports whether Initialize has run.
func (c *Contract) IsInitialized() (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok, err := c.store.Get(adminKey())
	return ok, err
}

// GetVoteRecord returns the audit record at index, or nil if none exists.
func (c *Contract) GetVoteRecord(index uint32) (*models.VoteRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var record models.VoteRecord
	ok, err := c.readJSON(nil, voteRecordKey(index), &record)
	if err != nil || !ok {
		return nil, err
	}
	return &record, nil
}
