package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/flowstate/pkg/item"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) Tasks(tasks ...item.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "TITLE", "STATUS", "DUE", "ICE", "PROJECT")
	} else {
		table.AddRow("TITLE", "STATUS", "DUE", "ICE", "PROJECT")
	}
	for _, t := range tasks {
		row := []interface{}{t.Title, statusColor(t.Status), orDash(t.DueDate), strconv.Itoa(t.ICE.Score()), orDash(t.Project)}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		table.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

func (pp *PrettyPrint) Projects(projects ...item.Project) {
	if len(projects) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("ID", "NAME", "STATUS", "NOTE", "TOUCHED")
	} else {
		table.AddRow("NAME", "STATUS", "NOTE", "TOUCHED")
	}
	for _, p := range projects {
		row := []interface{}{p.Name, projectColor(p.Status), orDash(p.StatusNote), orDash(p.LastInteracted)}
		if pp.ShowID {
			row = append([]interface{}{p.ID}, row...)
		}
		table.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

func (pp *PrettyPrint) Docs(docs ...item.Doc) {
	if len(docs) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	for _, d := range docs {
		if pp.ShowID {
			_, _ = f.Printf("%s  ", d.ID)
		}
		_, _ = t.Print(d.Title)
		if d.ProjectID != "" {
			_, _ = f.Printf("  (%s)", d.ProjectID)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

func (pp *PrettyPrint) Whiteboards(boards ...item.Whiteboard) {
	if len(boards) == 0 {
		pp.none()
		return
	}
	t := color.New()
	f := color.New(color.Faint)
	for _, w := range boards {
		if pp.ShowID {
			_, _ = f.Printf("%s  ", w.ID)
		}
		_, _ = t.Print(w.Name)
		if w.ProjectID != "" {
			_, _ = f.Printf("  (%s)", w.ProjectID)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

func (pp *PrettyPrint) History(entries ...item.HistoryEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}
	f := color.New(color.Faint)
	t := color.New()
	for _, e := range entries {
		_, _ = f.Printf("%s %s  ", e.Date, e.Time)
		_, _ = t.Println(strings.Join(e.Changes, "; "))
	}
	fmt.Println("")
}

func statusColor(s item.Status) string {
	switch s {
	case item.StatusDone:
		return color.GreenString(string(s))
	case item.StatusInProgress:
		return color.YellowString(string(s))
	case item.StatusBlocked:
		return color.RedString(string(s))
	}
	return string(s)
}

func projectColor(s item.ProjectStatus) string {
	switch s {
	case item.ProjectOnTrack, item.ProjectDone:
		return color.GreenString(string(s))
	case item.ProjectAtRisk:
		return color.YellowString(string(s))
	case item.ProjectOffTrack:
		return color.RedString(string(s))
	}
	return string(s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
