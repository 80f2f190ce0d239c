package league

import (
	"sync"

	"github.com/mauv0809/league-standings/internal/standings"
)

// MockStore is a mock implementation of the LeagueStore interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	CreateLeagueFunc  func(league League) error
	GetLeagueFunc     func(leagueID string) (League, error)
	ListLeaguesFunc   func() ([]League, error)
	UpsertTeamsFunc   func(leagueID string, teams []standings.Team) error
	GetTeamsFunc      func(leagueID string) ([]standings.Team, error)
	UpsertMatchFunc   func(leagueID string, match standings.Match) error
	UpsertMatchesFunc func(leagueID string, matches []standings.Match) error
	GetMatchesFunc    func(leagueID string) ([]standings.Match, error)
	ClearFunc         func()
	ClearLeagueFunc   func(leagueID string)

	// Call records
	CreateLeagueCalls []League
	GetLeagueCalls    []string
	GetMatchesCalls   []string
	UpsertTeamsCalls  []struct {
		LeagueID string
		Teams    []standings.Team
	}
	UpsertMatchCalls []struct {
		LeagueID string
		Match    standings.Match
	}
	UpsertMatchesCalls []struct {
		LeagueID string
		Matches  []standings.Match
	}
	ClearLeagueCalls []string
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateLeagueCalls = nil
	m.GetLeagueCalls = nil
	m.GetMatchesCalls = nil
	m.UpsertTeamsCalls = nil
	m.UpsertMatchCalls = nil
	m.UpsertMatchesCalls = nil
	m.ClearLeagueCalls = nil
}

func (m *MockStore) CreateLeague(league League) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateLeagueCalls = append(m.CreateLeagueCalls, league)
	if m.CreateLeagueFunc != nil {
		return m.CreateLeagueFunc(league)
	}
	return nil
}

func (m *MockStore) GetLeague(leagueID string) (League, error) {
	m.mu.Lock()
	m.GetLeagueCalls = append(m.GetLeagueCalls, leagueID)
	fn := m.GetLeagueFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(leagueID)
	}
	return League{ID: leagueID, Name: leagueID}, nil
}

func (m *MockStore) ListLeagues() ([]League, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListLeaguesFunc != nil {
		return m.ListLeaguesFunc()
	}
	return nil, nil
}

func (m *MockStore) UpsertTeams(leagueID string, teams []standings.Team) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertTeamsCalls = append(m.UpsertTeamsCalls, struct {
		LeagueID string
		Teams    []standings.Team
	}{leagueID, teams})
	if m.UpsertTeamsFunc != nil {
		return m.UpsertTeamsFunc(leagueID, teams)
	}
	return nil
}

func (m *MockStore) GetTeams(leagueID string) ([]standings.Team, error) {
	m.mu.Lock()
	fn := m.GetTeamsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(leagueID)
	}
	return nil, nil
}

func (m *MockStore) UpsertMatch(leagueID string, match standings.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchCalls = append(m.UpsertMatchCalls, struct {
		LeagueID string
		Match    standings.Match
	}{leagueID, match})
	if m.UpsertMatchFunc != nil {
		return m.UpsertMatchFunc(leagueID, match)
	}
	return nil
}

func (m *MockStore) UpsertMatches(leagueID string, matches []standings.Match) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertMatchesCalls = append(m.UpsertMatchesCalls, struct {
		LeagueID string
		Matches  []standings.Match
	}{leagueID, matches})
	if m.UpsertMatchesFunc != nil {
		return m.UpsertMatchesFunc(leagueID, matches)
	}
	return nil
}

// GetMatches does not hold the lock while calling GetMatchesFunc so tests can
// block inside it to hold a refresh in flight.
func (m *MockStore) GetMatches(leagueID string) ([]standings.Match, error) {
	m.mu.Lock()
	m.GetMatchesCalls = append(m.GetMatchesCalls, leagueID)
	fn := m.GetMatchesFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(leagueID)
	}
	return nil, nil
}

func (m *MockStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ClearFunc != nil {
		m.ClearFunc()
	}
}

func (m *MockStore) ClearLeague(leagueID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearLeagueCalls = append(m.ClearLeagueCalls, leagueID)
	if m.ClearLeagueFunc != nil {
		m.ClearLeagueFunc(leagueID)
	}
}

// GetMatchesCallCount returns the number of times GetMatches was called.
func (m *MockStore) GetMatchesCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.GetMatchesCalls)
}
