package view

import "catchlog/internal/models"

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient user-facing message scoped to the action that
// produced it.
type Notice struct {
	Kind    NoticeKind
	Message string
}

type SortDir int

const (
	SortAsc SortDir = iota
	SortDesc
)

type Column int

const (
	ColSpecies Column = iota
	ColWeight
	ColLength
	ColDate
	ColTimeOfDay
	ColLocation
	ColBait
)

// SortState is the active table sort. Active is false until the user
// first toggles a column; records then show in fetch order.
type SortState struct {
	Col    Column
	Dir    SortDir
	Active bool
}

// State is the whole view state. Records are a transient in-memory
// projection of the collaborator's data, replaced wholesale on every
// successful fetch.
type State struct {
	Records    []models.CatchRecord
	IsFormOpen bool
	IsLoading  bool
	Form       FormValues
	Sort       SortState
	Page       int
	Notices    []Notice
}

func NewState() State {
	return State{
		Records: make([]models.CatchRecord, 0),
		Page:    1,
	}
}

type Event interface{ isEvent() }

type FormOpened struct{}

type FormCancelled struct{}

// FormChanged carries the full in-flight form values from the widget layer.
type FormChanged struct{ Form FormValues }

type FetchStarted struct{}

type FetchSucceeded struct{ Records []models.CatchRecord }

type FetchFailed struct{ Message string }

type SubmitSucceeded struct{}

type SubmitFailed struct{ Message string }

type SortToggled struct{ Col Column }

type PageSet struct{ Page int }

type NoticesCleared struct{}

func (FormOpened) isEvent()      {}
func (FormCancelled) isEvent()   {}
func (FormChanged) isEvent()     {}
func (FetchStarted) isEvent()    {}
func (FetchSucceeded) isEvent()  {}
func (FetchFailed) isEvent()     {}
func (SubmitSucceeded) isEvent() {}
func (SubmitFailed) isEvent()    {}
func (SortToggled) isEvent()     {}
func (PageSet) isEvent()         {}
func (NoticesCleared) isEvent()  {}

// Update is the unidirectional state transition: it returns the state
// after applying one event and never mutates its input.
func Update(s State, e Event) State {
	switch ev := e.(type) {
	case FormOpened:
		s.IsFormOpen = true

	case FormCancelled:
		s.IsFormOpen = false
		s.Form = FormValues{}

	case FormChanged:
		s.Form = ev.Form

	case FetchStarted:
		s.IsLoading = true

	case FetchSucceeded:
		s.Records = ev.Records
		s.IsLoading = false
		s.Page = clampPage(s.Page, len(ev.Records))

	case FetchFailed:
		// Records stay as last known good.
		s.IsLoading = false
		s.Notices = appendNotice(s.Notices, NoticeError, ev.Message)

	case SubmitSucceeded:
		s.IsFormOpen = false
		s.Form = FormValues{}
		s.Notices = appendNotice(s.Notices, NoticeSuccess, "Catch logged")

	case SubmitFailed:
		// Modal stays open with the entered values so the user can retry.
		s.Notices = appendNotice(s.Notices, NoticeError, ev.Message)

	case SortToggled:
		if s.Sort.Active && s.Sort.Col == ev.Col {
			if s.Sort.Dir == SortAsc {
				s.Sort.Dir = SortDesc
			} else {
				s.Sort.Dir = SortAsc
			}
		} else {
			s.Sort = SortState{Col: ev.Col, Dir: SortAsc, Active: true}
		}

	case PageSet:
		s.Page = clampPage(ev.Page, len(s.Records))

	case NoticesCleared:
		s.Notices = nil
	}
	return s
}

func appendNotice(notices []Notice, kind NoticeKind, message string) []Notice {
	out := make([]Notice, len(notices), len(notices)+1)
	copy(out, notices)
	return append(out, Notice{Kind: kind, Message: message})
}

func clampPage(page, records int) int {
	if page < 1 {
		return 1
	}
	last := lastPage(records)
	if page > last {
		return last
	}
	return page
}
