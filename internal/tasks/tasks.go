package tasks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/normalize"
	"github.com/desertthunder/secid-import/internal/schemas"
	"github.com/desertthunder/secid-import/internal/sheets"
	"github.com/desertthunder/secid-import/internal/shared"
)

// PrepareOpts contains the inputs of one import run.
type PrepareOpts struct {
	MembersPath    string   // Member roster spreadsheet
	AccountsPath   string   // Account-number roster spreadsheet
	ExcludedEmails []string // Addresses never imported, matched case-insensitively
}

// PrepareResult is a built and validated import document plus run statistics.
type PrepareResult struct {
	Document models.Document
	RowsRead int // Member rows read before exclusion
	Excluded int // Member rows dropped by the exclusion list
	Accounts int // Distinct emails with an account number
}

// ImportEngine builds import documents from spreadsheet exports.
type ImportEngine struct {
	logger *log.Logger
	now    func() time.Time
}

// NewImportEngine creates an ImportEngine. A nil logger falls back to [shared.NewLogger].
func NewImportEngine(logger *log.Logger) *ImportEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ImportEngine{logger: logger, now: time.Now}
}

// WithClock replaces the clock used for generatedAt.
func (e *ImportEngine) WithClock(now func() time.Time) *ImportEngine {
	e.now = now
	return e
}

// Prepare loads both spreadsheets and builds the import document.
func (e *ImportEngine) Prepare(ctx context.Context, progress chan<- ProgressUpdate, opts PrepareOpts) (*PrepareResult, error) {
	e.sendProgress(progress, loadingUpdate(LoadMembers, opts.MembersPath))
	members, err := loadTable(opts.MembersPath, RequiredMemberColumns)
	if err != nil {
		return nil, err
	}
	e.logger.Info("loaded member table", "path", members.Path, "rows", len(members.Rows))

	e.sendProgress(progress, loadingUpdate(LoadAccounts, opts.AccountsPath))
	accounts, err := loadTable(opts.AccountsPath, RequiredAccountColumns)
	if err != nil {
		return nil, err
	}
	e.logger.Info("loaded account table", "path", accounts.Path, "rows", len(accounts.Rows))
	if !accounts.Has(ColAccountNumber) {
		e.logger.Warn("account table has no account number column", "column", ColAccountNumber)
	}

	return e.Transform(ctx, progress, members, accounts, opts.ExcludedEmails)
}

// Transform builds the import document from already loaded tables.
func (e *ImportEngine) Transform(
	ctx context.Context,
	progress chan<- ProgressUpdate,
	members, accounts *sheets.Table,
	excluded []string,
) (*PrepareResult, error) {
	rows, dropped := ExcludeMembers(members.Rows, excluded)
	e.sendProgress(progress, excludedUpdate(dropped, len(members.Rows)))
	e.logger.Debug("applied exclusion list", "excluded", dropped, "remaining", len(rows))

	accountMap, err := BuildAccountMap(accounts)
	if err != nil {
		return nil, err
	}
	e.sendProgress(progress, joinedUpdate(len(accountMap)))

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("import cancelled at row %d: %w", row.Index, err)
		}

		record, err := BuildRecord(row, accountMap)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", members.Path, err)
		}
		records = append(records, record)
		e.sendProgress(progress, recordUpdate(i+1, len(rows), record.Email))
	}

	doc := BuildDocument(records, excluded, e.now())
	if err := schemas.ValidateDocument(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrInvalidDocument, err)
	}
	e.sendProgress(progress, validatedUpdate(doc.TotalMembers))

	return &PrepareResult{
		Document: doc,
		RowsRead: len(members.Rows),
		Excluded: dropped,
		Accounts: len(accountMap),
	}, nil
}

// BuildDocument wraps records with the run timestamp, counters and the exclusion list.
//
// The exclusion list is normalized, de-duplicated and sorted.
func BuildDocument(records []models.Record, excluded []string, generatedAt time.Time) models.Document {
	if records == nil {
		records = []models.Record{}
	}

	doc := models.Document{
		GeneratedAt:    normalize.FormatISO(generatedAt, false),
		TotalMembers:   len(records),
		ExcludedEmails: normalizeExclusions(excluded),
		Members:        records,
	}
	for _, r := range records {
		switch r.Role {
		case models.RoleMember:
			doc.MemberCount++
		case models.RoleCollaborator:
			doc.CollaboratorCount++
		}
	}
	return doc
}

func normalizeExclusions(excluded []string) []string {
	seen := make(map[string]struct{}, len(excluded))
	out := make([]string, 0, len(excluded))
	for _, e := range excluded {
		e = normalize.Email(e)
		if _, dup := seen[e]; dup || e == "" {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

func loadTable(path string, required []string) (*sheets.Table, error) {
	table, err := sheets.Load(path)
	if err != nil {
		return nil, err
	}
	if err := table.Require(required...); err != nil {
		return nil, err
	}
	return table, nil
}

// sendProgress sends a progress update without blocking.
func (e *ImportEngine) sendProgress(ch chan<- ProgressUpdate, update ProgressUpdate) {
	if ch == nil {
		return
	}
	select {
	case ch <- update:
	default:
	}
}
