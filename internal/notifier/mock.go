package notifier

import (
	"sync"

	"github.com/mauv0809/league-standings/internal/league"
	"github.com/mauv0809/league-standings/internal/standings"
)

// StandingsCall holds the arguments of a SendStandings or SendStandingsUpdate call.
type StandingsCall struct {
	LeagueName string
	Table      standings.Table
	DryRun     bool
}

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for send functions
	SendStandingsFunc       func(leagueName string, table standings.Table, dryRun bool) error
	SendStandingsUpdateFunc func(leagueName string, table standings.Table, dryRun bool) error

	// Call records
	SendStandingsCalls       []StandingsCall
	SendStandingsUpdateCalls []StandingsCall

	// Spies for format functions
	FormatStandingsResponseFunc      func(leagueName string, table standings.Table) (any, error)
	FormatLeagueListResponseFunc     func(leagues []league.League) (any, error)
	FormatLeagueNotFoundResponseFunc func(query string) (any, error)

	// Call records for format functions
	LastStandingsResponse      any
	LastLeagueListResponse     any
	LastLeagueNotFoundResponse any
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = nil
	m.SendStandingsUpdateCalls = nil
	m.LastStandingsResponse = nil
	m.LastLeagueListResponse = nil
	m.LastLeagueNotFoundResponse = nil
}

func (m *Mock) SendStandings(leagueName string, table standings.Table, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsCalls = append(m.SendStandingsCalls, StandingsCall{leagueName, table, dryRun})
	if m.SendStandingsFunc != nil {
		return m.SendStandingsFunc(leagueName, table, dryRun)
	}
	return nil
}

func (m *Mock) SendStandingsUpdate(leagueName string, table standings.Table, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendStandingsUpdateCalls = append(m.SendStandingsUpdateCalls, StandingsCall{leagueName, table, dryRun})
	if m.SendStandingsUpdateFunc != nil {
		return m.SendStandingsUpdateFunc(leagueName, table, dryRun)
	}
	return nil
}

func (m *Mock) FormatStandingsResponse(leagueName string, table standings.Table) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"league": leagueName, "teams": len(table.Entries)}
	var err error
	if m.FormatStandingsResponseFunc != nil {
		resp, err = m.FormatStandingsResponseFunc(leagueName, table)
	}
	m.LastStandingsResponse = resp
	return resp, err
}

func (m *Mock) FormatLeagueListResponse(leagues []league.League) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"leagues": len(leagues)}
	var err error
	if m.FormatLeagueListResponseFunc != nil {
		resp, err = m.FormatLeagueListResponseFunc(leagues)
	}
	m.LastLeagueListResponse = resp
	return resp, err
}

func (m *Mock) FormatLeagueNotFoundResponse(query string) (any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resp any = map[string]any{"not_found": query}
	var err error
	if m.FormatLeagueNotFoundResponseFunc != nil {
		resp, err = m.FormatLeagueNotFoundResponseFunc(query)
	}
	m.LastLeagueNotFoundResponse = resp
	return resp, err
}

// StandingsSent returns a copy of the recorded SendStandings calls.
func (m *Mock) StandingsSent() []StandingsCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StandingsCall(nil), m.SendStandingsCalls...)
}

// UpdatesSent returns a copy of the recorded SendStandingsUpdate calls.
func (m *Mock) UpdatesSent() []StandingsCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]StandingsCall(nil), m.SendStandingsUpdateCalls...)
}
