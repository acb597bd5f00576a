package testutil

import (
	"bytes"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fundvote/auth"
	"fundvote/cliparse"
	"fundvote/contract"
	"fundvote/kv"
	"fundvote/ledger"
	"fundvote/models"
)

// TestToken is the default vote token address used across tests.
const TestToken = models.Address("token_native")

// CaptureEmitter records emitted vote events for assertions.
type CaptureEmitter struct {
	mu     sync.Mutex
	events []struct {
		Voter    models.Address
		OptionID uint32
		Amount   *models.Amount
	}
}

func (e *CaptureEmitter) VoteCast(voter models.Address, optionID uint32, amount *models.Amount) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, struct {
		Voter    models.Address
		OptionID uint32
		Amount   *models.Amount
	}{voter, optionID, amount})
}

// Count returns the number of captured events.
func (e *CaptureEmitter) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.events)
}

// Last returns the most recent event, failing the test if none exists.
func (e *CaptureEmitter) Last(t *testing.T) (models.Address, uint32, *models.Amount) {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.events) == 0 {
		t.Fatal("no events captured")
	}
	ev := e.events[len(e.events)-1]
	return ev.Voter, ev.OptionID, ev.Amount
}

// Fixture bundles a contract engine with its in-memory collaborators.
// Now is the timestamp the injected clock returns; tests may advance it.
type Fixture struct {
	Contract *contract.Contract
	Store    *kv.MemoryStore
	Ledger   *ledger.MemoryLedger
	Events   *CaptureEmitter
	Now      uint64
}

// Setup builds a fresh, uninitialized contract over in-memory collaborators.
func Setup(t *testing.T) *Fixture {
	t.Helper()

	f := &Fixture{
		Store:  kv.NewMemoryStore(),
		Ledger: ledger.NewMemoryLedger(),
		Events: &CaptureEmitter{},
		Now:    1700000000,
	}
	f.Contract = contract.New(f.Store, f.Ledger, func() uint64 { return f.Now }, f.Events)
	return f
}

// Fund credits amount of the default test token to addr.
func (f *Fixture) Fund(addr models.Address, amount int64) {
	f.Ledger.Mint(TestToken, addr, big.NewInt(amount))
}

// Balance reads addr's balance of the default test token.
func (f *Fixture) Balance(addr models.Address) *big.Int {
	return f.Ledger.Balance(TestToken, addr)
}

// NewAddress mints a fresh random address.
func NewAddress(t *testing.T, prefix string) models.Address {
	t.Helper()
	id, err := auth.GenerateID(12)
	if err != nil {
		t.Fatalf("Failed to generate address: %v", err)
	}
	return models.Address(prefix + "_" + id)
}

// Option builds an option record with zeroed aggregates.
func Option(id uint32, name string, recipient models.Address) models.Option {
	return models.Option{
		ID:         id,
		Name:       name,
		Recipient:  recipient,
		TotalFunds: models.NewAmount(0),
	}
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3419,
		DatabaseType:  cliparse.DBMemory,
		AuthTokenSalt: "test-auth-salt",
	}
}

// AuthToken derives the auth token for addr under the test config salt.
func AuthToken(addr models.Address) string {
	return auth.GenerateAddressToken(addr, GetTestConfig().AuthTokenSalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
