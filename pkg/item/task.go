package item

// Status is the workflow state of a task.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusBlocked    Status = "Blocked"
	StatusDone       Status = "Done"
)

// Recurrence is the repeat cadence of a task. Anything outside the known
// set is treated the same as RecurrenceNone.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "None"
	RecurrenceDaily    Recurrence = "Daily"
	RecurrenceWeekly   Recurrence = "Weekly"
	RecurrenceBiWeekly Recurrence = "Bi-Weekly"
	RecurrenceMonthly  Recurrence = "Monthly"
)

// Repeats reports whether the value names a real cadence.
func (r Recurrence) Repeats() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceBiWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// ICE is the Impact x Confidence x Ease priority heuristic, each factor
// scored 1-5.
type ICE struct {
	Impact     int `json:"impact"`
	Confidence int `json:"confidence"`
	Ease       int `json:"ease"`
}

// Score multiplies the three factors, defaulting unscored factors to 1,
// giving a 1-125 range.
func (s *ICE) Score() int {
	if s == nil {
		return 1
	}
	return factor(s.Impact) * factor(s.Confidence) * factor(s.Ease)
}

func factor(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

// HistoryEntry is one append-only change record on a task, newest first in
// the task's History slice. Entries are never edited or removed.
type HistoryEntry struct {
	Date    string   `json:"date"`
	Time    string   `json:"time"`
	Changes []string `json:"changes"`
}

// Task is a single to-do item. DueDate and LastInteracted are calendar
// dates in ISO YYYY-MM-DD form, never timestamps.
type Task struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Status         Status         `json:"status"`
	DueDate        string         `json:"dueDate,omitempty"`
	Archived       bool           `json:"archived"`
	Project        string         `json:"project,omitempty"`
	Recurrence     Recurrence     `json:"recurrence,omitempty"`
	ICE            *ICE           `json:"ice,omitempty"`
	StatusNote     string         `json:"statusNote,omitempty"`
	Tags           []string       `json:"tags,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	History        []HistoryEntry `json:"history,omitempty"`
	LastInteracted string         `json:"lastInteracted,omitempty"`
}

// LogChange prepends an append-only history entry.
func (t *Task) LogChange(date, clock string, changes []string) {
	if len(changes) == 0 {
		return
	}
	entry := HistoryEntry{Date: date, Time: clock, Changes: changes}
	t.History = append([]HistoryEntry{entry}, t.History...)
}
