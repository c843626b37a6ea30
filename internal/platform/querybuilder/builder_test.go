package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "first_name", "last_name").
		From("players").
		Where(Eq("is_active", true)).
		OrderBy("last_name", "first_name").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, first_name, last_name FROM players WHERE is_active = $1 ORDER BY last_name, first_name LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderGroupByAndBetween(t *testing.T) {
	query, args, err := Select("pitch_type", "COUNT(*) AS total").
		From("pitch_data").
		Where(Eq("session_id", int64(7)), Between("created_at", "2025-05-01", "2025-05-31")).
		GroupBy("pitch_type").
		OrderBy("total DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT pitch_type, COUNT(*) AS total FROM pitch_data" +
		" WHERE session_id = $1 AND created_at BETWEEN $2 AND $3" +
		" GROUP BY pitch_type ORDER BY total DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("players").
		Columns("first_name", "last_name").
		Values("Jane", "Doe").
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO players (first_name, last_name) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "Jane" || args[1] != "Doe" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Name   string `db:"name"`
		Hidden string `db:"-"`
		Total  int    `db:"total_pitches"`
	}

	query, args, err := InsertModel("training_sessions", row{Name: "bullpen", Total: 24}, "RETURNING id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO training_sessions (name, total_pitches) VALUES ($1, $2) RETURNING id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "bullpen" || args[1] != 24 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("training_sessions").
		SetExpr("total_pitches", "total_pitches + ?", 12).
		Where(Eq("id", int64(3))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE training_sessions SET total_pitches = total_pitches + $1 WHERE id = $2"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != 12 || args[1] != int64(3) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
