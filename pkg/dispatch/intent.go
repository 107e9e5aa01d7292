package dispatch

import (
	"tableflip.dev/flowstate/pkg/item"
	"tableflip.dev/flowstate/pkg/replica"
)

// Kind names a dispatchable intent. The set is closed: the router maps each
// kind to a handler and target collection through an explicit table instead
// of parsing verbs and nouns out of the name at runtime.
type Kind string

const (
	AddTask     Kind = "ADD_TASK"
	UpdateTask  Kind = "UPDATE_TASK"
	DeleteTask  Kind = "DELETE_TASK"
	RestoreTask Kind = "RESTORE_TASK"
	ArchiveTask Kind = "ARCHIVE_TASK"

	AddProject    Kind = "ADD_PROJECT"
	UpdateProject Kind = "UPDATE_PROJECT"
	DeleteProject Kind = "DELETE_PROJECT"
	TouchProject  Kind = "TOUCH_PROJECT"

	AddDoc    Kind = "ADD_DOC"
	UpdateDoc Kind = "UPDATE_DOC"
	DeleteDoc Kind = "DELETE_DOC"

	AddWhiteboard    Kind = "ADD_WHITEBOARD"
	UpdateWhiteboard Kind = "UPDATE_WHITEBOARD"
	DeleteWhiteboard Kind = "DELETE_WHITEBOARD"

	ImportData Kind = "IMPORT_DATA"
)

// Intent is one high-level mutation request. Payload carries the typed item
// for add/update kinds, the string id for delete/restore/archive/touch
// kinds, and a replica.Bundle for ImportData.
type Intent struct {
	Kind    Kind
	Payload any
}

// Constructors for the common intents, so call sites stay typo-proof.

func NewAddTask(t item.Task) Intent        { return Intent{Kind: AddTask, Payload: t} }
func NewUpdateTask(t item.Task) Intent     { return Intent{Kind: UpdateTask, Payload: t} }
func NewDeleteTask(id string) Intent       { return Intent{Kind: DeleteTask, Payload: id} }
func NewRestoreTask(id string) Intent      { return Intent{Kind: RestoreTask, Payload: id} }
func NewArchiveTask(id string) Intent      { return Intent{Kind: ArchiveTask, Payload: id} }
func NewAddProject(p item.Project) Intent  { return Intent{Kind: AddProject, Payload: p} }
func NewUpdateProject(p item.Project) Intent {
	return Intent{Kind: UpdateProject, Payload: p}
}
func NewDeleteProject(id string) Intent { return Intent{Kind: DeleteProject, Payload: id} }
func NewTouchProject(id string) Intent  { return Intent{Kind: TouchProject, Payload: id} }
func NewAddDoc(d item.Doc) Intent       { return Intent{Kind: AddDoc, Payload: d} }
func NewUpdateDoc(d item.Doc) Intent    { return Intent{Kind: UpdateDoc, Payload: d} }
func NewDeleteDoc(id string) Intent     { return Intent{Kind: DeleteDoc, Payload: id} }
func NewAddWhiteboard(w item.Whiteboard) Intent {
	return Intent{Kind: AddWhiteboard, Payload: w}
}
func NewUpdateWhiteboard(w item.Whiteboard) Intent {
	return Intent{Kind: UpdateWhiteboard, Payload: w}
}
func NewDeleteWhiteboard(id string) Intent { return Intent{Kind: DeleteWhiteboard, Payload: id} }
func NewImport(b replica.Bundle) Intent    { return Intent{Kind: ImportData, Payload: b} }
