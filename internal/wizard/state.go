// Package wizard is the tenant creation wizard as a pure state machine.
// Every transition takes a State and returns a new one; nothing is mutated in place.
package wizard

import (
	"errors"
	"strings"
	"time"
)

// Step ordinal, 1 to 4
type Step int

const (
	StepTenantInfo Step = iota + 1
	StepLease
	StepUnit
	StepConfirmation
)

// StepCount number of wizard steps
const StepCount = 4

var stepTitles = [StepCount]string{"Tenant Information", "Lease Assignment", "Unit Assignment", "Confirmation"}

func (s Step) Title() string {
	if s < StepTenantInfo || s > StepConfirmation {
		return ""
	}
	return stepTitles[s-1]
}

// Status of a single step
type Status string

const (
	Incomplete Status = "incomplete"
	Complete   Status = "complete"
)

// ErrStepDisabled returned by Goto when the previous step is incomplete
var ErrStepDisabled = errors.New("step is disabled")

// FieldDelta a single edit
type FieldDelta struct {
	Field string
	Value string
}

// State wizard snapshot
type State struct {
	Form      Form
	Step      Step
	Statuses  [StepCount]Status
	Submitted bool
	Errors    map[string]string
	Location  *time.Location
}

// New starts the wizard on step one with every step incomplete
func New(loc *time.Location) State {
	return recompute(State{Form: NewForm(), Step: StepTenantInfo, Location: loc})
}

// Status of step
func (s State) Status(step Step) Status {
	if step < StepTenantInfo || step > StepConfirmation {
		return Incomplete
	}
	return s.Statuses[step-1]
}

// Enabled step k+1 is enabled iff step k is complete; step one always is
func (s State) Enabled(step Step) bool {
	if step == StepTenantInfo {
		return true
	}
	if step < StepTenantInfo || step > StepConfirmation {
		return false
	}
	return s.Statuses[step-2] == Complete
}

// Apply sets one field and recomputes every status
func Apply(s State, delta FieldDelta) (State, error) {
	form := s.Form
	if err := form.Set(delta.Field, delta.Value); err != nil {
		return s, err
	}
	s.Form = form
	s.Submitted = false
	return recompute(s), nil
}

// SetLeaseOption flips the new/existing lease toggle
func SetLeaseOption(s State, opt LeaseOption) State {
	if opt != LeaseExisting {
		opt = LeaseNew
	}
	s.Form.LeaseOption = opt
	s.Submitted = false
	return recompute(s)
}

// SelectUnit records the chosen unit id
func SelectUnit(s State, unitID string) State {
	s.Form.UnitID = unitID
	s.Submitted = false
	return recompute(s)
}

// Goto moves to step if it is enabled
func Goto(s State, step Step) (State, error) {
	if !s.Enabled(step) {
		return s, ErrStepDisabled
	}
	s.Step = step
	return s, nil
}

// Next advances when the current step is complete. On the last step it is a no-op;
// submission goes through BuildSubmission and MarkSubmitted.
func Next(s State) State {
	if s.Step >= StepConfirmation || s.Status(s.Step) != Complete {
		return s
	}
	s.Step++
	return s
}

// Back moves one step back
func Back(s State) State {
	if s.Step > StepTenantInfo {
		s.Step--
	}
	return s
}

// MarkSubmitted completes the confirmation step after the API accepted the submission
func MarkSubmitted(s State) State {
	if s.Status(StepUnit) != Complete {
		return s
	}
	s.Submitted = true
	return recompute(s)
}

func recompute(s State) State {
	errs := Validate(s.Form, s.Location)
	valid := len(errs) == 0

	s.Errors = make(map[string]string, len(errs))
	for _, e := range errs {
		s.Errors[e.Field] = e.Message
	}

	s1 := valid || (strings.TrimSpace(s.Form.FirstName) != "" && strings.TrimSpace(s.Form.LastName) != "")
	s2 := s1 && valid
	s3 := s2 && valid && s.Form.UnitID != ""
	s4 := s3 && s.Submitted

	for i, ok := range [StepCount]bool{s1, s2, s3, s4} {
		s.Statuses[i] = Incomplete
		if ok {
			s.Statuses[i] = Complete
		}
	}
	// an incomplete step forces every later step incomplete
	for i := 1; i < StepCount; i++ {
		if s.Statuses[i-1] != Complete {
			s.Statuses[i] = Incomplete
		}
	}
	return s
}
