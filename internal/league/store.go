package league

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/league-standings/internal/standings"
)

// New creates a new LeagueStore.
func New(db *sql.DB) LeagueStore {
	return &store{
		db: db,
	}
}

// CreateLeague inserts a league or updates its name and rules if it already exists.
func (s *store) CreateLeague(league League) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if league.CreatedAt == 0 {
		league.CreatedAt = time.Now().Unix()
	}
	var win, draw, loss sql.NullInt64
	if league.Points != nil {
		win = sql.NullInt64{Int64: int64(league.Points.Win), Valid: true}
		draw = sql.NullInt64{Int64: int64(league.Points.Draw), Valid: true}
		loss = sql.NullInt64{Int64: int64(league.Points.Loss), Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT INTO leagues (id, name, points_win, points_draw, points_loss, promotion_spots, playoff_spots, relegation_spots, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			points_win = excluded.points_win,
			points_draw = excluded.points_draw,
			points_loss = excluded.points_loss,
			promotion_spots = excluded.promotion_spots,
			playoff_spots = excluded.playoff_spots,
			relegation_spots = excluded.relegation_spots;
	`, league.ID, league.Name, win, draw, loss, league.Zones.PromotionSpots, league.Zones.PlayoffSpots, league.Zones.RelegationSpots, league.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert league %s: %w", league.ID, err)
	}
	log.Info("Upserted league", "leagueID", league.ID, "name", league.Name)
	return nil
}

const leagueColumns = `id, name, points_win, points_draw, points_loss, promotion_spots, playoff_spots, relegation_spots, created_at`

// GetLeague returns ErrLeagueNotFound if no league has the given ID.
func (s *store) GetLeague(leagueID string) (League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow("SELECT "+leagueColumns+" FROM leagues WHERE id = ?", leagueID)
	league, err := scanLeague(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return League{}, fmt.Errorf("%w: %s", ErrLeagueNotFound, leagueID)
		}
		return League{}, fmt.Errorf("database error: %w", err)
	}
	return league, nil
}

func (s *store) ListLeagues() ([]League, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT " + leagueColumns + " FROM leagues ORDER BY name, id")
	if err != nil {
		log.Error("Failed to query leagues", "error", err)
		return nil, err
	}
	defer rows.Close()

	leagues := []League{}
	for rows.Next() {
		league, err := scanLeague(rows)
		if err != nil {
			log.Error("Failed to scan league row", "error", err)
			continue
		}
		leagues = append(leagues, league)
	}
	return leagues, rows.Err()
}

func scanLeague(scanner interface{ Scan(...any) error }) (League, error) {
	var league League
	var win, draw, loss sql.NullInt64
	err := scanner.Scan(
		&league.ID, &league.Name, &win, &draw, &loss,
		&league.Zones.PromotionSpots, &league.Zones.PlayoffSpots, &league.Zones.RelegationSpots,
		&league.CreatedAt,
	)
	if err != nil {
		return League{}, err
	}
	if win.Valid && draw.Valid && loss.Valid {
		league.Points = &standings.PointSystem{Win: int(win.Int64), Draw: int(draw.Int64), Loss: int(loss.Int64)}
	}
	return league, nil
}

// UpsertTeams inserts or renames teams in a single transaction.
func (s *store) UpsertTeams(leagueID string, teams []standings.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO teams (id, league_id, name, display_color)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(league_id, id) DO UPDATE SET
			name = excluded.name,
			display_color = excluded.display_color;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, team := range teams {
		if _, err := stmt.Exec(team.ID, leagueID, team.Name, nullString(team.DisplayColor)); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert team %s: %w", team.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("Upserted teams", "leagueID", leagueID, "count", len(teams))
	return nil
}

func (s *store) GetTeams(leagueID string) ([]standings.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT id, name, display_color FROM teams WHERE league_id = ? ORDER BY name, id", leagueID)
	if err != nil {
		log.Error("Failed to query teams", "error", err, "leagueID", leagueID)
		return nil, err
	}
	defer rows.Close()

	teams := []standings.Team{}
	for rows.Next() {
		var team standings.Team
		var color sql.NullString
		if err := rows.Scan(&team.ID, &team.Name, &color); err != nil {
			log.Error("Failed to scan team row", "error", err, "leagueID", leagueID)
			continue
		}
		team.DisplayColor = color.String
		teams = append(teams, team)
	}
	return teams, rows.Err()
}

// UpsertMatch inserts a match or overwrites its teams, score, status and date.
func (s *store) UpsertMatch(leagueID string, match standings.Match) error {
	return s.UpsertMatches(leagueID, []standings.Match{match})
}

func (s *store) UpsertMatches(leagueID string, matches []standings.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`
		INSERT INTO matches (id, league_id, home_team_id, away_team_id, home_score, away_score, status, played_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(league_id, id) DO UPDATE SET
			home_team_id = excluded.home_team_id,
			away_team_id = excluded.away_team_id,
			home_score = excluded.home_score,
			away_score = excluded.away_score,
			status = excluded.status,
			played_at = excluded.played_at,
			updated_at = excluded.updated_at;
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, m := range matches {
		_, err := stmt.Exec(m.ID, leagueID, m.HomeTeamID, m.AwayTeamID, nullInt(m.HomeScore), nullInt(m.AwayScore), string(m.Status), m.Date.UnixMilli(), now)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to upsert match %s: %w", m.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Debug("Upserted matches", "leagueID", leagueID, "count", len(matches))
	return nil
}

// GetMatches orders by date; matches sharing a date keep the order in which
// they were first stored.
func (s *store) GetMatches(leagueID string) ([]standings.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, home_team_id, away_team_id, home_score, away_score, status, played_at
		FROM matches
		WHERE league_id = ?
		ORDER BY played_at ASC, rowid ASC
	`, leagueID)
	if err != nil {
		log.Error("Failed to query matches", "error", err, "leagueID", leagueID)
		return nil, err
	}
	defer rows.Close()

	matches := []standings.Match{}
	for rows.Next() {
		var m standings.Match
		var home, away sql.NullInt64
		var status string
		var playedAt int64
		if err := rows.Scan(&m.ID, &m.HomeTeamID, &m.AwayTeamID, &home, &away, &status, &playedAt); err != nil {
			log.Error("Failed to scan match row", "error", err, "leagueID", leagueID)
			continue
		}
		m.HomeScore = intPtr(home)
		m.AwayScore = intPtr(away)
		m.Status = standings.MatchStatus(status)
		m.Date = time.UnixMilli(playedAt).UTC()
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}
	for _, table := range []string{"matches", "teams", "leagues"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

// ClearLeague deletes a league; its teams and matches go with it.
func (s *store) ClearLeague(leagueID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing league", "error", err, "leagueID", leagueID)
		return
	}
	for _, table := range []string{"matches", "teams"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE league_id = ?", leagueID); err != nil {
			log.Error("Failed to clear league rows", "error", err, "table", table, "leagueID", leagueID)
			tx.Rollback()
			return
		}
	}
	if _, err := tx.Exec("DELETE FROM leagues WHERE id = ?", leagueID); err != nil {
		log.Error("Failed to clear league", "error", err, "leagueID", leagueID)
		tx.Rollback()
		return
	}
	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing league", "error", err, "leagueID", leagueID)
	}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
