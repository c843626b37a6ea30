package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	qb "github.com/riskibarqy/pitching-analytics/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"first_name",
	"last_name",
	"throwing_hand",
	"is_active",
	"rapsodo_id",
	"pitchlogic_id",
	"trackman_id",
	"created_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListActive(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("is_active", true)).
		OrderBy("last_name", "first_name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select active players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select active players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}
	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) (int64, error) {
	model := playerInsertModel{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		ThrowingHand: string(p.Throws),
		IsActive:     p.Active,
		RapsodoID:    nullString(p.RapsodoID),
		PitchLogicID: nullString(p.PitchLogicID),
		TrackmanID:   nullString(p.TrackmanID),
	}

	query, args, err := qb.InsertModel("players", model, "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("insert player: %w", err)
	}
	return id, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:           row.ID,
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		Throws:       player.Hand(row.ThrowingHand),
		Active:       row.IsActive,
		RapsodoID:    nullStringValue(row.RapsodoID),
		PitchLogicID: nullStringValue(row.PitchLogicID),
		TrackmanID:   nullStringValue(row.TrackmanID),
	}
}
