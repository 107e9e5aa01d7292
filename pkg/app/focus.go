package app

import (
	"sort"

	"tableflip.dev/flowstate/pkg/item"
)

// Focus returns the open tasks ordered by priority: ICE score descending,
// then earlier due date, then title for a stable tail. Archived and done
// tasks are excluded.
func (s *Service) Focus() []item.Task {
	var out []item.Task
	for _, t := range s.Replica.State().Tasks {
		if t.Archived || t.Status == item.StatusDone {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].ICE.Score(), out[j].ICE.Score()
		if si != sj {
			return si > sj
		}
		if out[i].DueDate != out[j].DueDate {
			// Undated tasks sink below dated ones.
			if out[i].DueDate == "" {
				return false
			}
			if out[j].DueDate == "" {
				return true
			}
			return out[i].DueDate < out[j].DueDate
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// ProjectTasks returns the open tasks attached to one project, in replica
// order.
func (s *Service) ProjectTasks(projectID string) []item.Task {
	var out []item.Task
	for _, t := range s.Replica.State().Tasks {
		if t.Project == projectID && !t.Archived {
			out = append(out, t)
		}
	}
	return out
}
