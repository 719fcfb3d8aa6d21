package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/db/migrations"
	"github.com/fadedpez/chicago/pkg/entities"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDSN keeps the database inside the process
const DefaultDSN = "file::memory:?cache=shared"

const statsColumns = `player_name, rounds_played, tricks_won, outplay_wins,
	best_hand_wins, best_hand_ties, points_earned, highest_score, highest_hand,
	last_updated`

// SQLiteRepository implements the Repository interface using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens dsn and applies the schema migrations
func NewSQLiteRepository(dsn string, logger *logging.Logger) (*SQLiteRepository, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error opening database", err)
	}
	// An in-memory database lives only as long as its connection
	db.SetMaxOpenConns(1)

	migrator := migrations.NewMigrator(db, logger)
	if err := migrator.MigrateUp(); err != nil {
		db.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error applying migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// SaveRoundResult stores a round and updates the statistics of every player
// in it within one transaction
func (r *SQLiteRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}

	tricksJSON, err := json.Marshal(result.Tricks)
	if err != nil {
		return err
	}
	redrawJSON, err := json.Marshal(result.RedrawCheckpoint)
	if err != nil {
		return err
	}
	finalJSON, err := json.Marshal(result.FinalScore)
	if err != nil {
		return err
	}
	pointsJSON, err := json.Marshal(result.Points)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO round_results (
			id, game_id, round_index, starting_player, outplay_winner,
			outplay_award, tricks, redraw_checkpoint, final_score, points,
			completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = tx.ExecContext(ctx, query,
		result.ID, result.GameID, result.Index, result.StartingPlayer,
		result.OutplayWinner, result.OutplayAward, string(tricksJSON),
		string(redrawJSON), string(finalJSON), string(pointsJSON),
		result.CompletedAt,
	)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to save round result", err)
	}

	for _, name := range players(result) {
		stats, err := scanStats(tx.QueryRowContext(ctx,
			`SELECT `+statsColumns+` FROM player_statistics WHERE player_name = ?`, name))
		if errors.Is(err, sql.ErrNoRows) {
			stats = &entities.PlayerStatistics{PlayerName: name}
		} else if err != nil {
			return types.WrapError(types.ErrDatabaseError, "failed to get player statistics", err)
		}

		applyRound(stats, result)

		upsert := `
			INSERT INTO player_statistics (` + statsColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(player_name) DO UPDATE SET
				rounds_played = excluded.rounds_played,
				tricks_won = excluded.tricks_won,
				outplay_wins = excluded.outplay_wins,
				best_hand_wins = excluded.best_hand_wins,
				best_hand_ties = excluded.best_hand_ties,
				points_earned = excluded.points_earned,
				highest_score = excluded.highest_score,
				highest_hand = excluded.highest_hand,
				last_updated = excluded.last_updated`

		_, err = tx.ExecContext(ctx, upsert,
			stats.PlayerName, stats.RoundsPlayed, stats.TricksWon, stats.OutplayWins,
			stats.BestHandWins, stats.BestHandTies, stats.PointsEarned,
			stats.HighestScore, stats.HighestHand, stats.LastUpdated,
		)
		if err != nil {
			return types.WrapError(types.ErrDatabaseError, "failed to update player statistics", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return types.WrapError(types.ErrDatabaseError, "failed to commit round result", err)
	}
	return nil
}

// GetGameRounds returns the rounds of a game ordered by round index
func (r *SQLiteRepository) GetGameRounds(ctx context.Context, gameID string) ([]*entities.RoundResult, error) {
	query := `
		SELECT id, game_id, round_index, starting_player, outplay_winner,
		       outplay_award, tricks, redraw_checkpoint, final_score, points,
		       completed_at
		FROM round_results
		WHERE game_id = ?
		ORDER BY round_index`

	rows, err := r.db.QueryContext(ctx, query, gameID)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query rounds", err)
	}
	defer rows.Close()

	rounds := []*entities.RoundResult{}
	for rows.Next() {
		var (
			result                                    entities.RoundResult
			tricksJSON, redrawJSON, finalJSON, points string
		)
		if err := rows.Scan(
			&result.ID, &result.GameID, &result.Index, &result.StartingPlayer,
			&result.OutplayWinner, &result.OutplayAward, &tricksJSON,
			&redrawJSON, &finalJSON, &points, &result.CompletedAt,
		); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan round", err)
		}

		if err := json.Unmarshal([]byte(tricksJSON), &result.Tricks); err != nil {
			return nil, fmt.Errorf("failed to decode tricks of round %s: %w", result.ID, err)
		}
		if err := json.Unmarshal([]byte(redrawJSON), &result.RedrawCheckpoint); err != nil {
			return nil, fmt.Errorf("failed to decode redraw checkpoint of round %s: %w", result.ID, err)
		}
		if err := json.Unmarshal([]byte(finalJSON), &result.FinalScore); err != nil {
			return nil, fmt.Errorf("failed to decode final score of round %s: %w", result.ID, err)
		}
		if err := json.Unmarshal([]byte(points), &result.Points); err != nil {
			return nil, fmt.Errorf("failed to decode points of round %s: %w", result.ID, err)
		}
		rounds = append(rounds, &result)
	}

	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating rounds", err)
	}
	return rounds, nil
}

// GetPlayerStatistics retrieves statistics for a player. Unknown players get
// empty statistics.
func (r *SQLiteRepository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	stats, err := scanStats(r.db.QueryRowContext(ctx,
		`SELECT `+statsColumns+` FROM player_statistics WHERE player_name = ?`, playerName))
	if errors.Is(err, sql.ErrNoRows) {
		return &entities.PlayerStatistics{PlayerName: playerName}, nil
	}
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to get player statistics", err)
	}
	return stats, nil
}

// GetAllPlayerStatistics retrieves every player's statistics, most points first
func (r *SQLiteRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+statsColumns+` FROM player_statistics ORDER BY points_earned DESC, player_name`)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "failed to query player statistics", err)
	}
	defer rows.Close()

	all := []*entities.PlayerStatistics{}
	for rows.Next() {
		stats, err := scanStats(rows)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "failed to scan player statistics", err)
		}
		all = append(all, stats)
	}

	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error iterating player statistics", err)
	}
	return all, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(row scanner) (*entities.PlayerStatistics, error) {
	var stats entities.PlayerStatistics
	err := row.Scan(
		&stats.PlayerName, &stats.RoundsPlayed, &stats.TricksWon, &stats.OutplayWins,
		&stats.BestHandWins, &stats.BestHandTies, &stats.PointsEarned,
		&stats.HighestScore, &stats.HighestHand, &stats.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
