package item

// ProjectStatus is the health of a project.
type ProjectStatus string

const (
	ProjectOnTrack  ProjectStatus = "On Track"
	ProjectAtRisk   ProjectStatus = "At Risk"
	ProjectOffTrack ProjectStatus = "Off Track"
	ProjectDone     ProjectStatus = "Done"
)

// ProjectHistoryEntry snapshots the project status at the moment of a
// change, with an optional note. Newest first, append-only.
type ProjectHistoryEntry struct {
	Date   string        `json:"date"`
	Time   string        `json:"time"`
	Status ProjectStatus `json:"status"`
	Note   string        `json:"note,omitempty"`
}

// Dependency is one external thing a project is waiting on.
type Dependency struct {
	ID   string `json:"id"`
	What string `json:"what"`
	Who  string `json:"who"`
}

// Project groups tasks, docs and whiteboards under a named effort.
type Project struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	Status         ProjectStatus         `json:"status"`
	StatusNote     string                `json:"statusNote,omitempty"`
	History        []ProjectHistoryEntry `json:"history,omitempty"`
	Dependencies   []Dependency          `json:"dependencies,omitempty"`
	LastInteracted string                `json:"lastInteracted,omitempty"`
	LastUpdated    string                `json:"lastUpdated,omitempty"`
}

// LogStatus prepends a status snapshot to the project history.
func (p *Project) LogStatus(date, clock string, note string) {
	entry := ProjectHistoryEntry{Date: date, Time: clock, Status: p.Status, Note: note}
	p.History = append([]ProjectHistoryEntry{entry}, p.History...)
}
