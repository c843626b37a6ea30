package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/pitching-analytics/internal/platform/logging"
)

type uploadFixture struct {
	service  *UploadService
	players  *memory.PlayerRepository
	sessions *memory.SessionRepository
	pitches  *memory.PitchRepository
}

func newUploadFixture(policy IngestPolicy) *uploadFixture {
	players := memory.NewPlayerRepository(memory.SeedPlayers())
	sessions := memory.NewSessionRepository()
	pitches := memory.NewPitchRepository()
	sources := memory.NewDataSourceRepository(memory.SeedDataSources())
	return &uploadFixture{
		service:  NewUploadService(players, sessions, pitches, sources, policy, logging.NewNop()),
		players:  players,
		sessions: sessions,
		pitches:  pitches,
	}
}

func TestUpload_BulkGroupsPerPlayerAndDate(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-04-01,Miles Okafor,92,2200,12:00",
		"2026-04-01,Miles Okafor,93,2250,1:00",
		"2026-04-02,Miles Okafor,91,2150,1:30",
		"2026-04-01,Dane Whitlock,88,2000,11:00",
		"2026-04-02,Dane Whitlock,87,1990,10:30",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "bullpen.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.Vendor != datasource.VendorRapsodo {
		t.Fatalf("vendor: got=%q", report.Vendor)
	}
	if !report.Bulk {
		t.Fatalf("expected bulk mode")
	}
	if report.Rows != 5 || report.Inserted != 5 || report.Skipped != 0 {
		t.Fatalf("counts: rows=%d inserted=%d skipped=%d", report.Rows, report.Inserted, report.Skipped)
	}
	if report.SessionsCreated != 4 || report.PlayersCreated != 0 {
		t.Fatalf("sessions=%d players_created=%d, want 4 and 0", report.SessionsCreated, report.PlayersCreated)
	}
	if len(report.Players) != 2 {
		t.Fatalf("player lines: got=%d", len(report.Players))
	}
	if report.Players[0].PlayerID != 1 || report.Players[0].Sessions != 2 || report.Players[0].Inserted != 3 {
		t.Fatalf("okafor line: %+v", report.Players[0])
	}
	if report.Players[1].PlayerID != 2 || report.Players[1].Sessions != 2 || report.Players[1].Inserted != 2 {
		t.Fatalf("whitlock line: %+v", report.Players[1])
	}

	// Sessions must carry the right player and calendar date, pitches the
	// right session — no cross-player references.
	okaforSessions, err := f.sessions.ListByPlayer(context.Background(), 1)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(okaforSessions) != 2 {
		t.Fatalf("okafor sessions: got=%d", len(okaforSessions))
	}
	wantDates := []time.Time{
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
	}
	wantCounts := []int{2, 1}
	for i, sess := range okaforSessions {
		if !sess.Date.Equal(wantDates[i]) {
			t.Fatalf("okafor session %d date: got=%v want=%v", i, sess.Date, wantDates[i])
		}
		if sess.TotalPitches != wantCounts[i] {
			t.Fatalf("okafor session %d total pitches: got=%d want=%d", i, sess.TotalPitches, wantCounts[i])
		}
		rows, err := f.pitches.ListBySession(context.Background(), sess.ID)
		if err != nil {
			t.Fatalf("list pitches: %v", err)
		}
		if len(rows) != wantCounts[i] {
			t.Fatalf("okafor session %d pitch rows: got=%d want=%d", i, len(rows), wantCounts[i])
		}
		for _, p := range rows {
			if p.PlayerID != 1 || p.SessionID != sess.ID {
				t.Fatalf("pitch references wrong owner: player=%d session=%d", p.PlayerID, p.SessionID)
			}
		}
	}
}

func TestUpload_BulkAutoCreatesUnmatchedPitcher(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,PlayerId,Velocity,SpinRate,Tilt,ArmSlot",
		"2026-05-10,Sho Tanaka,55102,90,2100,12:30,9:00",
		"2026-05-10,Sho Tanaka,55102,91,2150,1:00,9:15",
		"2026-05-10,Sho Tanaka,55102,89,2050,12:50,8:45",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "tanaka.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.PlayersCreated != 1 || report.SessionsCreated != 1 {
		t.Fatalf("players_created=%d sessions_created=%d", report.PlayersCreated, report.SessionsCreated)
	}
	if report.Inserted != 3 || report.Skipped != 0 {
		t.Fatalf("inserted=%d skipped=%d", report.Inserted, report.Skipped)
	}
	line := report.Players[0]
	if !line.Created || line.PlayerID == 0 {
		t.Fatalf("player line: %+v", line)
	}

	created, ok, err := f.players.GetByID(context.Background(), line.PlayerID)
	if err != nil || !ok {
		t.Fatalf("load created player: ok=%t err=%v", ok, err)
	}
	if created.FirstName != "Sho" || created.LastName != "Tanaka" {
		t.Fatalf("created name: %q %q", created.FirstName, created.LastName)
	}
	// All arm slot samples sit around 9 o'clock, so the inferred hand is left.
	if created.Throws != player.HandLeft {
		t.Fatalf("created hand: got=%q want=L", created.Throws)
	}
	if created.RapsodoID != "55102" {
		t.Fatalf("created external id: got=%q", created.RapsodoID)
	}
	if !created.Active {
		t.Fatalf("created player must be active")
	}
}

func TestUpload_BulkAutoCreateDisabledSkipsGroupOnly(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-05-10,Miles Okafor,92,2200,12:00",
		"2026-05-10,Sho Tanaka,90,2100,12:30",
		"2026-05-10,Sho Tanaka,91,2150,1:00",
	}, "\n")

	policy := DefaultIngestPolicy()
	policy.AutoCreatePlayers = false
	f := newUploadFixture(policy)

	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "mixed.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.PlayersCreated != 0 {
		t.Fatalf("players_created=%d", report.PlayersCreated)
	}
	if report.Inserted != 1 || report.Skipped != 2 {
		t.Fatalf("inserted=%d skipped=%d", report.Inserted, report.Skipped)
	}
	if report.SessionsCreated != 1 {
		t.Fatalf("sessions_created=%d", report.SessionsCreated)
	}
	if report.IssueCount == 0 {
		t.Fatalf("expected an advisory issue for the skipped group")
	}
}

func TestUpload_RowErrorsAreIsolated(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-05-10,Miles Okafor,92,2200,12:00",
		"2026-05-10,Miles Okafor,fast,2250,1:00",
		"2026-05-10,Miles Okafor,91,2150,1:30",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "bad-row.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.Inserted != 2 || report.Skipped != 1 {
		t.Fatalf("inserted=%d skipped=%d", report.Inserted, report.Skipped)
	}
	if report.IssueCount != 1 {
		t.Fatalf("issue count: got=%d", report.IssueCount)
	}
	if !strings.HasPrefix(report.Issues[0], "row 2:") {
		t.Fatalf("issue must carry the 1-based row position, got=%q", report.Issues[0])
	}
}

func TestUpload_IssueLogCapsDetailButKeepsTotal(t *testing.T) {
	t.Parallel()

	lines := []string{"Date,Pitcher,Velocity,SpinRate,Tilt"}
	for i := 0; i < 12; i++ {
		lines = append(lines, fmt.Sprintf("2026-05-10,Miles Okafor,bad%d,2200,12:00", i))
	}

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "noisy.csv",
		Data:     strings.NewReader(strings.Join(lines, "\n")),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if len(report.Issues) != 10 {
		t.Fatalf("issue detail must cap at 10, got=%d", len(report.Issues))
	}
	if report.IssueCount != 12 {
		t.Fatalf("issue total must keep counting, got=%d", report.IssueCount)
	}
	if report.Skipped != 12 || report.Inserted != 0 {
		t.Fatalf("inserted=%d skipped=%d", report.Inserted, report.Skipped)
	}
}

func TestUpload_QualityThresholdSetsValidity(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-05-10,Miles Okafor,92,2200,12:00",
		"2026-05-10,Miles Okafor,200,2200,1:00",
		"2026-05-10,Miles Okafor,200,10,1:30",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "quality.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if report.Inserted != 3 {
		t.Fatalf("inserted=%d", report.Inserted)
	}

	sessions, err := f.sessions.ListByPlayer(context.Background(), 1)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("sessions: n=%d err=%v", len(sessions), err)
	}
	rows, err := f.pitches.ListBySession(context.Background(), sessions[0].ID)
	if err != nil {
		t.Fatalf("list pitches: %v", err)
	}

	wantScores := []float64{1.0, 0.7, 0.4}
	wantValid := []bool{true, true, false}
	for i, p := range rows {
		if p.QualityScore != wantScores[i] {
			t.Fatalf("row %d score: got=%v want=%v", i, p.QualityScore, wantScores[i])
		}
		if p.IsValid != wantValid[i] {
			t.Fatalf("row %d valid: got=%t want=%t", i, p.IsValid, wantValid[i])
		}
	}
}

func TestUpload_SingleModeUsesGivenPlayerAndDate(t *testing.T) {
	t.Parallel()

	// No pitcher column at all: single mode must not need one.
	csvText := strings.Join([]string{
		"Velocity,SpinRate,Tilt",
		"92,2200,12:00",
		"93,2250,1:00",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	date := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName:    "solo.csv",
		Data:        strings.NewReader(csvText),
		PlayerID:    3,
		SessionDate: date,
		SessionType: "Live BP",
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.Bulk {
		t.Fatalf("single mode must not report bulk")
	}
	if report.Inserted != 2 || report.SessionsCreated != 1 {
		t.Fatalf("inserted=%d sessions=%d", report.Inserted, report.SessionsCreated)
	}

	sessions, err := f.sessions.ListByPlayer(context.Background(), 3)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("sessions: n=%d err=%v", len(sessions), err)
	}
	if !sessions[0].Date.Equal(date) || sessions[0].Type != "Live BP" {
		t.Fatalf("session: date=%v type=%q", sessions[0].Date, sessions[0].Type)
	}
}

func TestUpload_BulkWithoutPitcherColumnFails(t *testing.T) {
	t.Parallel()

	csvText := "Velocity,SpinRate,Tilt\n92,2200,12:00\n"

	f := newUploadFixture(DefaultIngestPolicy())
	_, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "headless.csv",
		Data:     strings.NewReader(csvText),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got=%v", err)
	}
}

func TestUpload_UnknownVendorFails(t *testing.T) {
	t.Parallel()

	csvText := "Date,Pitcher,Speed\n2026-05-10,Okafor,92\n"

	f := newUploadFixture(DefaultIngestPolicy())
	_, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "mystery.csv",
		Data:     strings.NewReader(csvText),
	})
	if !errors.Is(err, ErrUnknownVendor) {
		t.Fatalf("expected ErrUnknownVendor, got=%v", err)
	}
}

func TestUpload_SourceNameMatchIgnoresCase(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-05-10,Miles Okafor,92,2200,12:00",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName:   "bullpen.csv",
		Data:       strings.NewReader(csvText),
		SourceName: "  rapsodo ",
	})
	if err != nil {
		t.Fatalf("upload with lowercased source name: %v", err)
	}
	if report.Vendor != datasource.VendorRapsodo {
		t.Fatalf("vendor: got=%q want=%q", report.Vendor, datasource.VendorRapsodo)
	}
	if report.Inserted != 1 {
		t.Fatalf("inserted: got=%d want=1", report.Inserted)
	}

	_, err = f.service.Upload(context.Background(), UploadInput{
		FileName:   "manual.csv",
		Data:       strings.NewReader(csvText),
		SourceName: "Hawkeye",
	})
	if !errors.Is(err, ErrUnknownVendor) {
		t.Fatalf("expected ErrUnknownVendor for unimportable source, got=%v", err)
	}
}

func TestUpload_UnregisteredSourceFails(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository(memory.SeedPlayers())
	sessions := memory.NewSessionRepository()
	pitches := memory.NewPitchRepository()
	sources := memory.NewDataSourceRepository(nil)
	service := NewUploadService(players, sessions, pitches, sources, DefaultIngestPolicy(), logging.NewNop())

	csvText := "Date,Pitcher,Velocity,SpinRate,Tilt\n2026-05-10,Miles Okafor,92,2200,12:00\n"
	_, err := service.Upload(context.Background(), UploadInput{
		FileName: "orphan.csv",
		Data:     strings.NewReader(csvText),
	})
	if !errors.Is(err, ErrUnknownVendor) {
		t.Fatalf("expected ErrUnknownVendor for unregistered source, got=%v", err)
	}
}

func TestUpload_EmptyFileFails(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(DefaultIngestPolicy())
	_, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "empty.csv",
		Data:     strings.NewReader("Date,Pitcher,Velocity,SpinRate,Tilt\n"),
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty file, got=%v", err)
	}
}

func TestUpload_UndatedRowsSkippedWhenFallbackDisabled(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Pitcher,Velocity,SpinRate,Tilt",
		"Miles Okafor,92,2200,12:00",
		"Miles Okafor,93,2250,1:00",
	}, "\n")

	policy := DefaultIngestPolicy()
	policy.DateFallbackToday = false
	f := newUploadFixture(policy)

	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "undated.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if report.SessionsCreated != 0 || report.Inserted != 0 || report.Skipped != 2 {
		t.Fatalf("sessions=%d inserted=%d skipped=%d", report.SessionsCreated, report.Inserted, report.Skipped)
	}
	if report.IssueCount == 0 {
		t.Fatalf("expected an issue for the undated rows")
	}
}

func TestUpload_UndatedRowsStampedTodayWhenFallbackEnabled(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Pitcher,Velocity,SpinRate,Tilt",
		"Miles Okafor,92,2200,12:00",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	report, err := f.service.Upload(context.Background(), UploadInput{
		FileName: "undated.csv",
		Data:     strings.NewReader(csvText),
	})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if report.SessionsCreated != 1 || report.Inserted != 1 {
		t.Fatalf("sessions=%d inserted=%d", report.SessionsCreated, report.Inserted)
	}

	sessions, err := f.sessions.ListByPlayer(context.Background(), 1)
	if err != nil || len(sessions) != 1 {
		t.Fatalf("sessions: n=%d err=%v", len(sessions), err)
	}
	now := time.Now().UTC()
	wantDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !sessions[0].Date.Equal(wantDate) {
		t.Fatalf("fallback date: got=%v want=%v", sessions[0].Date, wantDate)
	}
}

func TestPreview_ReportsMatchesWithoutWriting(t *testing.T) {
	t.Parallel()

	csvText := strings.Join([]string{
		"Date,Pitcher,Velocity,SpinRate,Tilt",
		"2026-05-10,Miles Okafor,92,2200,12:00",
		"2026-05-10,Sho Tanaka,90,2100,12:30",
		"2026-05-10,Sho Tanaka,91,2150,1:00",
	}, "\n")

	f := newUploadFixture(DefaultIngestPolicy())
	preview, err := f.service.Preview(context.Background(), "preview.csv", strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	if preview.Vendor != datasource.VendorRapsodo || !preview.Bulk || preview.Rows != 3 {
		t.Fatalf("preview header: %+v", preview)
	}
	if len(preview.Pitchers) != 2 {
		t.Fatalf("pitchers: got=%d", len(preview.Pitchers))
	}
	if preview.Pitchers[0].PlayerID != 1 || preview.Pitchers[0].WouldCreate {
		t.Fatalf("okafor preview: %+v", preview.Pitchers[0])
	}
	if preview.Pitchers[1].PlayerID != 0 || !preview.Pitchers[1].WouldCreate || preview.Pitchers[1].Rows != 2 {
		t.Fatalf("tanaka preview: %+v", preview.Pitchers[1])
	}

	// Dry run: nothing persisted.
	sessions, err := f.sessions.ListByPlayer(context.Background(), 1)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("preview must not create sessions, got=%d", len(sessions))
	}
}
