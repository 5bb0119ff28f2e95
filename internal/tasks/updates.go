package tasks

import "fmt"

// ProgressUpdate represents a progress event during an import run.
//
// Used to send updates to the CLI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
}

// Operation phase enumeration
type Phase int

const (
	LoadMembers Phase = iota
	LoadAccounts
	ExcludeRows
	JoinAccounts
	BuildRecords
	ValidateDocument
)

func (p Phase) String() string {
	switch p {
	case LoadMembers:
		return "load_members"
	case LoadAccounts:
		return "load_accounts"
	case ExcludeRows:
		return "exclude_rows"
	case JoinAccounts:
		return "join_accounts"
	case BuildRecords:
		return "build_records"
	case ValidateDocument:
		return "validate_document"
	default:
		return ""
	}
}

func loadingUpdate(phase Phase, path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   phase,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loading %s...", path),
	}
}

func excludedUpdate(dropped, total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ExcludeRows,
		Step:    dropped,
		Total:   total,
		Message: fmt.Sprintf("Excluded %d of %d member rows", dropped, total),
	}
}

func joinedUpdate(accounts int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   JoinAccounts,
		Step:    accounts,
		Total:   accounts,
		Message: fmt.Sprintf("Indexed %d account numbers", accounts),
	}
}

func recordUpdate(step, total int, email string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   BuildRecords,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Built record for %s", email),
	}
}

func validatedUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ValidateDocument,
		Step:    total,
		Total:   total,
		Message: fmt.Sprintf("Validated document with %d records", total),
	}
}
