package view

import (
	"context"

	"catchlog/internal/models"
)

// ListResult is the collaborator's answer to a list request. Data is an
// empty slice, not nil, when there are no records.
type ListResult struct {
	Success bool
	Data    []models.CatchRecord
}

// CreateResult is the collaborator's answer to a create request. The view
// never uses Data directly: it re-fetches the list instead.
type CreateResult struct {
	Success bool
	Data    *models.CatchRecord
}

// Collaborator is the storage boundary. An error return is treated exactly
// like a Success=false response.
type Collaborator interface {
	List(ctx context.Context) (ListResult, error)
	Create(ctx context.Context, payload models.CatchInput) (CreateResult, error)
}

// View drives the catch log page: a record table with derived statistic
// cards and a modal creation form. All methods are meant for a single
// goroutine, matching a cooperative UI event loop; concurrent submissions
// are not coordinated and last completion wins.
type View struct {
	state  State
	collab Collaborator
}

func New(collab Collaborator) *View {
	return &View{
		state:  NewState(),
		collab: collab,
	}
}

func (v *View) State() State {
	return v.state
}

func (v *View) Dispatch(e Event) {
	v.state = Update(v.state, e)
}

func (v *View) OpenForm()               { v.Dispatch(FormOpened{}) }
func (v *View) CancelForm()             { v.Dispatch(FormCancelled{}) }
func (v *View) EditForm(f FormValues)   { v.Dispatch(FormChanged{Form: f}) }
func (v *View) ToggleSort(c Column)     { v.Dispatch(SortToggled{Col: c}) }
func (v *View) SetPage(page int)        { v.Dispatch(PageSet{Page: page}) }
func (v *View) ClearNotices()           { v.Dispatch(NoticesCleared{}) }

// Refresh fetches the full record list and replaces the table wholesale.
// One attempt, no retry; on failure the last known records stay and an
// error notice is raised. The loading flag is cleared on every path.
func (v *View) Refresh(ctx context.Context) {
	v.Dispatch(FetchStarted{})

	res, err := v.collab.List(ctx)
	if err != nil || !res.Success {
		v.Dispatch(FetchFailed{Message: "Could not load catches"})
		return
	}

	records := res.Data
	if records == nil {
		records = make([]models.CatchRecord, 0)
	}
	v.Dispatch(FetchSucceeded{Records: records})
}

// SubmitNewCatch validates the form and, when clean, sends exactly one
// create request. Validation failures are returned for inline display and
// no collaborator call is made. On success the modal closes, the fields
// clear and the list is re-fetched; on failure the modal stays open with
// the entered values intact.
func (v *View) SubmitNewCatch(ctx context.Context) []FieldError {
	if errs := v.state.Form.Validate(); len(errs) > 0 {
		return errs
	}

	res, err := v.collab.Create(ctx, v.state.Form.Payload())
	if err != nil || !res.Success {
		v.Dispatch(SubmitFailed{Message: "Could not save catch"})
		return nil
	}

	v.Dispatch(SubmitSucceeded{})
	v.Refresh(ctx)
	return nil
}

// Summary recomputes the derived statistics from the current records on
// every call; nothing is cached.
func (v *View) Summary() models.Summary {
	return models.Summarize(v.state.Records)
}

// VisibleRecords applies the active sort and pagination to the current
// records and returns the rows for the displayed page.
func (v *View) VisibleRecords() []models.CatchRecord {
	return PageOf(SortRecords(v.state.Records, v.state.Sort), v.state.Page)
}
