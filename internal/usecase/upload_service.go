package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/riskibarqy/pitching-analytics/internal/domain/datasource"
	"github.com/riskibarqy/pitching-analytics/internal/domain/pitch"
	"github.com/riskibarqy/pitching-analytics/internal/domain/player"
	"github.com/riskibarqy/pitching-analytics/internal/domain/session"
	"github.com/riskibarqy/pitching-analytics/internal/ingest"
	"github.com/riskibarqy/pitching-analytics/internal/platform/logging"
)

// IngestPolicy carries the upload knobs that were previously implicit
// defaults: whether unmatched pitchers are auto-created, which hand an
// ambiguous arm slot falls back to, and whether rows without a parseable
// date may be stamped with today.
type IngestPolicy struct {
	AutoCreatePlayers bool
	DefaultHand       player.Hand
	DateFallbackToday bool
	ValidThreshold    float64
	IssueLimit        int
	SessionType       string
}

func DefaultIngestPolicy() IngestPolicy {
	return IngestPolicy{
		AutoCreatePlayers: true,
		DefaultHand:       player.HandRight,
		DateFallbackToday: true,
		ValidThreshold:    0.5,
		IssueLimit:        10,
		SessionType:       "Bullpen",
	}
}

// UploadInput is one CSV upload request. SourceName forces the data source;
// when blank the vendor is detected from the header row. PlayerID forces
// single-player mode against that roster entry; when zero the file must
// carry a pitcher column and rows are grouped per pitcher and date.
type UploadInput struct {
	FileName    string
	Data        io.Reader
	SourceName  string
	PlayerID    int64
	SessionDate time.Time
	SessionType string
	Location    string
	Focus       string
	Notes       string
}

// PlayerReport is the per-player line of an upload summary.
type PlayerReport struct {
	PlayerID   int64  `json:"player_id"`
	Name       string `json:"name"`
	Method     string `json:"match_method,omitempty"`
	Confidence string `json:"match_confidence,omitempty"`
	Created    bool   `json:"created"`
	Sessions   int    `json:"sessions"`
	Inserted   int    `json:"inserted"`
	Skipped    int    `json:"skipped"`
}

// UploadReport is the run summary returned to the caller. Counts are always
// complete even under partial failure; Issues holds the first IssueLimit
// messages while IssueCount keeps the true total.
type UploadReport struct {
	FileName        string            `json:"file_name"`
	Vendor          datasource.Vendor `json:"vendor"`
	Bulk            bool              `json:"bulk"`
	Rows            int               `json:"rows"`
	Inserted        int               `json:"inserted"`
	Skipped         int               `json:"skipped"`
	PlayersCreated  int               `json:"players_created"`
	SessionsCreated int               `json:"sessions_created"`
	Players         []PlayerReport    `json:"players"`
	Issues          []string          `json:"issues"`
	IssueCount      int               `json:"issue_count"`
}

// PitcherPreview is one distinct pitcher name found during a dry run.
type PitcherPreview struct {
	Name          string `json:"name"`
	Rows          int    `json:"rows"`
	PlayerID      int64  `json:"player_id,omitempty"`
	Method        string `json:"match_method,omitempty"`
	Confidence    string `json:"match_confidence,omitempty"`
	HasDuplicates bool   `json:"has_duplicates,omitempty"`
	WouldCreate   bool   `json:"would_create"`
}

// UploadPreview is the dry-run result: detection outcome plus how each
// pitcher name would resolve, without touching storage.
type UploadPreview struct {
	FileName string            `json:"file_name"`
	Vendor   datasource.Vendor `json:"vendor"`
	Bulk     bool              `json:"bulk"`
	Rows     int               `json:"rows"`
	Headers  []string          `json:"headers"`
	Pitchers []PitcherPreview  `json:"pitchers"`
}

// UploadService runs the CSV ingestion pipeline: vendor detection, player
// matching, per-date session grouping, row mapping, quality scoring, and
// persistence. One call processes one file synchronously.
type UploadService struct {
	players  player.Repository
	sessions session.Repository
	pitches  pitch.Repository
	sources  datasource.Repository
	policy   IngestPolicy
	logger   *logging.Logger
}

func NewUploadService(
	players player.Repository,
	sessions session.Repository,
	pitches pitch.Repository,
	sources datasource.Repository,
	policy IngestPolicy,
	logger *logging.Logger,
) *UploadService {
	if policy.IssueLimit <= 0 {
		policy.IssueLimit = 10
	}
	if policy.ValidThreshold <= 0 {
		policy.ValidThreshold = 0.5
	}
	if policy.SessionType == "" {
		policy.SessionType = "Bullpen"
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &UploadService{
		players:  players,
		sessions: sessions,
		pitches:  pitches,
		sources:  sources,
		policy:   policy,
		logger:   logger,
	}
}

// Preview parses the file and reports what an Upload would do, without
// writing anything.
func (s *UploadService) Preview(ctx context.Context, fileName string, data io.Reader) (*UploadPreview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.Preview")
	defer span.End()

	table, vendor, err := s.parse(ctx, fileName, data, "")
	if err != nil {
		return nil, err
	}

	preview := &UploadPreview{
		FileName: fileName,
		Vendor:   vendor,
		Rows:     len(table.Rows),
		Headers:  table.Headers,
	}

	key := ingest.FindPitcherKey(table)
	if !key.Found() {
		return preview, nil
	}
	bulk, _ := ingest.DetectBulk(table, vendor)
	preview.Bulk = bulk

	roster, err := s.players.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list players: %v", ErrDependencyUnavailable, err)
	}

	for _, group := range groupByPitcher(table.Rows, key) {
		pp := PitcherPreview{Name: group.name, Rows: len(group.rows)}
		result := player.MatchName(group.name, roster, firstExternalID(group.rows, vendor), vendor)
		if result == nil {
			pp.WouldCreate = s.policy.AutoCreatePlayers
		} else {
			pp.PlayerID = result.Player.ID
			pp.Method = string(result.Method)
			pp.Confidence = result.Confidence.String()
			pp.HasDuplicates = result.HasDuplicates
		}
		preview.Pitchers = append(preview.Pitchers, pp)
	}

	return preview, nil
}

// Upload ingests one CSV file end to end and returns the run summary.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*UploadReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.Upload")
	defer span.End()

	table, vendor, err := s.parse(ctx, in.FileName, in.Data, in.SourceName)
	if err != nil {
		return nil, err
	}

	source, ok, err := s.sources.GetByName(ctx, string(vendor))
	if err != nil {
		return nil, fmt.Errorf("%w: load data source: %v", ErrDependencyUnavailable, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s is not registered", ErrUnknownVendor, vendor)
	}

	report := &UploadReport{
		FileName: in.FileName,
		Vendor:   vendor,
		Rows:     len(table.Rows),
		Issues:   []string{},
	}
	rec := &issueRecorder{limit: s.policy.IssueLimit}
	rules := ingest.DefaultQualityRules()

	if in.PlayerID > 0 {
		err = s.uploadSingle(ctx, in, table, vendor, source.ID, rules, report, rec)
	} else {
		err = s.uploadBulk(ctx, in, table, vendor, source.ID, rules, report, rec)
	}
	if err != nil {
		return nil, err
	}

	report.Issues = rec.issues
	report.IssueCount = rec.total
	s.logger.InfoContext(ctx, "upload complete",
		"file", in.FileName,
		"vendor", vendor,
		"rows", report.Rows,
		"inserted", report.Inserted,
		"skipped", report.Skipped,
		"players_created", report.PlayersCreated,
		"sessions_created", report.SessionsCreated,
		"issues", report.IssueCount,
	)
	return report, nil
}

func (s *UploadService) parse(ctx context.Context, fileName string, data io.Reader, sourceName string) (*ingest.Table, datasource.Vendor, error) {
	if data == nil {
		return nil, "", fmt.Errorf("%w: file data is required", ErrInvalidInput)
	}

	table, err := ingest.ReadCSV(data)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %v", ErrInvalidInput, fileName, err)
	}
	if len(table.Rows) == 0 {
		return nil, "", fmt.Errorf("%w: %s has no data rows", ErrInvalidInput, fileName)
	}

	if name := strings.TrimSpace(sourceName); name != "" {
		vendor, ok := datasource.ParseVendor(name)
		if !ok {
			return nil, "", fmt.Errorf("%w: no CSV importer for data source %q", ErrUnknownVendor, name)
		}
		return table, vendor, nil
	}

	vendor := ingest.DetectVendor(table.Headers)
	if !vendor.Known() {
		return nil, "", fmt.Errorf("%w: cannot identify vendor from %q headers", ErrUnknownVendor, fileName)
	}
	return table, vendor, nil
}

func (s *UploadService) uploadSingle(
	ctx context.Context,
	in UploadInput,
	table *ingest.Table,
	vendor datasource.Vendor,
	sourceID int64,
	rules []ingest.QualityRule,
	report *UploadReport,
	rec *issueRecorder,
) error {
	p, ok, err := s.players.GetByID(ctx, in.PlayerID)
	if err != nil {
		return fmt.Errorf("%w: load player: %v", ErrDependencyUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: player %d", ErrNotFound, in.PlayerID)
	}

	rows := make([]rowRef, 0, len(table.Rows))
	for idx, row := range table.Rows {
		rows = append(rows, rowRef{idx: idx, row: row})
	}

	date := in.SessionDate
	if date.IsZero() {
		var ok bool
		date, ok = groupDate(rows, s.policy)
		if !ok {
			return fmt.Errorf("%w: no session date in file and date fallback is disabled", ErrInvalidInput)
		}
	}

	sessionID, err := s.createSession(ctx, in, p.ID, sourceID, date)
	if err != nil {
		return err
	}
	report.SessionsCreated++

	inserted, skipped := s.insertRows(ctx, vendor, rows, sessionID, p.ID, sourceID, in.FileName, table.Headers, rules, rec)
	report.Inserted += inserted
	report.Skipped += skipped
	report.Players = append(report.Players, PlayerReport{
		PlayerID: p.ID,
		Name:     p.FullName(),
		Sessions: 1,
		Inserted: inserted,
		Skipped:  skipped,
	})
	return nil
}

func (s *UploadService) uploadBulk(
	ctx context.Context,
	in UploadInput,
	table *ingest.Table,
	vendor datasource.Vendor,
	sourceID int64,
	rules []ingest.QualityRule,
	report *UploadReport,
	rec *issueRecorder,
) error {
	key := ingest.FindPitcherKey(table)
	if !key.Found() {
		return fmt.Errorf("%w: no pitcher column found; supply player_id for single-player files", ErrInvalidInput)
	}
	report.Bulk = true

	roster, err := s.players.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("%w: list players: %v", ErrDependencyUnavailable, err)
	}

	for _, group := range groupByPitcher(table.Rows, key) {
		line := PlayerReport{Name: group.name}

		target, created, err := s.resolvePitcher(ctx, group, vendor, roster, rec, &line)
		if err != nil {
			return err
		}
		if target.ID == 0 {
			// Unmatched with auto-create off: the group is skipped, the
			// rest of the file still runs.
			report.Skipped += len(group.rows)
			line.Skipped = len(group.rows)
			report.Players = append(report.Players, line)
			continue
		}
		if created {
			roster = append(roster, target)
			report.PlayersCreated++
		}

		for _, sub := range groupByDate(group.rows, s.policy) {
			if !sub.ok {
				report.Skipped += len(sub.rows)
				line.Skipped += len(sub.rows)
				rec.addf("%s: %d rows have no parseable date and date fallback is disabled", group.name, len(sub.rows))
				continue
			}

			sessionID, err := s.createSession(ctx, in, target.ID, sourceID, sub.date)
			if err != nil {
				return err
			}
			report.SessionsCreated++
			line.Sessions++

			inserted, skipped := s.insertRows(ctx, vendor, sub.rows, sessionID, target.ID, sourceID, in.FileName, table.Headers, rules, rec)
			report.Inserted += inserted
			report.Skipped += skipped
			line.Inserted += inserted
			line.Skipped += skipped
		}

		report.Players = append(report.Players, line)
	}

	return nil
}

// resolvePitcher matches one pitcher group against the roster, auto-creating
// a player when allowed. A zero-ID player with nil error means the group is
// skipped (unmatched, auto-create off).
func (s *UploadService) resolvePitcher(
	ctx context.Context,
	group pitcherGroup,
	vendor datasource.Vendor,
	roster []player.Player,
	rec *issueRecorder,
	line *PlayerReport,
) (player.Player, bool, error) {
	result := player.MatchName(group.name, roster, firstExternalID(group.rows, vendor), vendor)
	if result != nil {
		line.PlayerID = result.Player.ID
		line.Method = string(result.Method)
		line.Confidence = result.Confidence.String()
		if result.HasDuplicates {
			names := make([]string, 0, len(result.AllMatches))
			for _, m := range result.AllMatches {
				names = append(names, m.Player.FullName())
			}
			rec.addf("%s: ambiguous match (%s); picked %s", group.name, strings.Join(names, ", "), result.Player.FullName())
		}
		return result.Player, false, nil
	}

	if !s.policy.AutoCreatePlayers {
		rec.addf("%s: no roster match and auto-create is disabled; group skipped", group.name)
		return player.Player{}, false, nil
	}

	first, last := player.ParseName(group.name)
	slots := ingest.ArmSlotSamples(rowsOf(group.rows), 5)
	hand := player.InferHand(slots, s.policy.DefaultHand)
	if len(slots) == 0 {
		rec.addf("%s: no arm slot data; defaulting to %s-handed", group.name, s.policy.DefaultHand)
	}

	created := player.Player{
		FirstName: first,
		LastName:  last,
		Throws:    hand,
		Active:    true,
	}
	switch vendor {
	case datasource.VendorRapsodo:
		created.RapsodoID = firstExternalID(group.rows, vendor)
	case datasource.VendorPitchLogic:
		created.PitchLogicID = firstExternalID(group.rows, vendor)
	case datasource.VendorTrackman:
		created.TrackmanID = firstExternalID(group.rows, vendor)
	}
	if err := created.Validate(); err != nil {
		return player.Player{}, false, fmt.Errorf("%w: auto-create %q: %v", ErrInvalidInput, group.name, err)
	}

	id, err := s.players.Create(ctx, created)
	if err != nil {
		return player.Player{}, false, fmt.Errorf("%w: create player %q: %v", ErrDependencyUnavailable, group.name, err)
	}
	created.ID = id

	line.PlayerID = id
	line.Created = true
	rec.addf("%s: auto-created player %d (%s-handed)", group.name, id, hand)
	return created, true, nil
}

func (s *UploadService) createSession(ctx context.Context, in UploadInput, playerID, sourceID int64, date time.Time) (int64, error) {
	sessionType := in.SessionType
	if sessionType == "" {
		sessionType = s.policy.SessionType
	}
	sess := session.Session{
		PlayerID:     playerID,
		DataSourceID: sourceID,
		Date:         date,
		Type:         sessionType,
		Location:     in.Location,
		Focus:        in.Focus,
		Notes:        in.Notes,
	}
	if err := sess.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	id, err := s.sessions.Create(ctx, sess)
	if err != nil {
		return 0, fmt.Errorf("%w: create session: %v", ErrDependencyUnavailable, err)
	}
	return id, nil
}

// insertRows maps, scores, and persists one session's rows. Every failure
// here is row-scoped: the row is counted skipped, the issue recorded with
// its 1-based file position, and the loop continues.
func (s *UploadService) insertRows(
	ctx context.Context,
	vendor datasource.Vendor,
	rows []rowRef,
	sessionID, playerID, sourceID int64,
	fileName string,
	headers []string,
	rules []ingest.QualityRule,
	rec *issueRecorder,
) (inserted, skipped int) {
	for _, r := range rows {
		metrics, err := ingest.MapRow(vendor, r.row)
		if err != nil {
			skipped++
			rec.addf("row %d: %v", r.idx+1, err)
			continue
		}

		raw, err := ingest.RawJSON(headers, r.row)
		if err != nil {
			skipped++
			rec.addf("row %d: serialize raw payload: %v", r.idx+1, err)
			continue
		}

		score, _ := ingest.ScoreQuality(metrics, rules)
		record := pitch.Pitch{
			SessionID:    sessionID,
			PlayerID:     playerID,
			DataSourceID: sourceID,
			Number:       ingest.PitchNumber(r.row, r.idx),
			Type:         pitch.StandardizePitchType(ingest.PitchType(r.row)),
			Timestamp:    ingest.RowTimestamp(r.row),
			Metrics:      metrics,
			QualityScore: score,
			IsValid:      score >= s.policy.ValidThreshold,
			RawJSON:      raw,
			SourceFile:   fileName,
		}
		if err := record.Validate(); err != nil {
			skipped++
			rec.addf("row %d: %v", r.idx+1, err)
			continue
		}
		if _, err := s.pitches.Insert(ctx, record); err != nil {
			skipped++
			rec.addf("row %d: insert pitch: %v", r.idx+1, err)
			continue
		}
		inserted++
	}

	if inserted > 0 {
		if err := s.sessions.AddPitchCount(ctx, sessionID, inserted); err != nil {
			rec.addf("session %d: update pitch count: %v", sessionID, err)
		}
	}
	return inserted, skipped
}

type rowRef struct {
	idx int
	row ingest.Row
}

func rowsOf(refs []rowRef) []ingest.Row {
	rows := make([]ingest.Row, 0, len(refs))
	for _, r := range refs {
		rows = append(rows, r.row)
	}
	return rows
}

type pitcherGroup struct {
	name string
	rows []rowRef
}

// groupByPitcher buckets rows per trimmed pitcher name, preserving first
// appearance order. Rows with a blank name land in an "Unknown" group so
// they still surface in the report instead of vanishing.
func groupByPitcher(rows []ingest.Row, key ingest.PitcherKey) []pitcherGroup {
	var order []string
	byName := map[string][]rowRef{}
	for idx, row := range rows {
		name := strings.TrimSpace(key.Name(row))
		if name == "" {
			name = "Unknown"
		}
		if _, seen := byName[name]; !seen {
			order = append(order, name)
		}
		byName[name] = append(byName[name], rowRef{idx: idx, row: row})
	}

	groups := make([]pitcherGroup, 0, len(order))
	for _, name := range order {
		groups = append(groups, pitcherGroup{name: name, rows: byName[name]})
	}
	return groups
}

type dateGroup struct {
	date time.Time
	ok   bool
	rows []rowRef
}

// groupByDate sub-groups one pitcher's rows by calendar date. Rows without
// a parseable date either fall back to today (policy permitting) or collect
// into a single not-ok group the caller skips.
func groupByDate(rows []rowRef, policy IngestPolicy) []dateGroup {
	var order []time.Time
	byDate := map[time.Time][]rowRef{}
	var undated []rowRef

	for _, r := range rows {
		date, ok := ingest.RowDate(r.row)
		if !ok {
			if policy.DateFallbackToday {
				date = today()
			} else {
				undated = append(undated, r)
				continue
			}
		}
		date = date.Truncate(24 * time.Hour)
		if _, seen := byDate[date]; !seen {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], r)
	}

	groups := make([]dateGroup, 0, len(order)+1)
	for _, date := range order {
		groups = append(groups, dateGroup{date: date, ok: true, rows: byDate[date]})
	}
	if len(undated) > 0 {
		groups = append(groups, dateGroup{rows: undated})
	}
	return groups
}

// groupDate picks the single-session date for one row set: the first row's
// date when present, otherwise today when the policy allows.
func groupDate(rows []rowRef, policy IngestPolicy) (time.Time, bool) {
	for _, r := range rows {
		if date, ok := ingest.RowDate(r.row); ok {
			return date.Truncate(24 * time.Hour), true
		}
	}
	if policy.DateFallbackToday {
		return today(), true
	}
	return time.Time{}, false
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func firstExternalID(rows []rowRef, vendor datasource.Vendor) string {
	for _, r := range rows {
		if id := ingest.ExternalID(r.row, vendor); id != "" {
			return id
		}
	}
	return ""
}

// issueRecorder keeps the first limit issue messages and the true total.
type issueRecorder struct {
	limit  int
	issues []string
	total  int
}

func (r *issueRecorder) addf(format string, args ...any) {
	r.total++
	if len(r.issues) < r.limit {
		r.issues = append(r.issues, fmt.Sprintf(format, args...))
	}
}
