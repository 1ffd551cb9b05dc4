// Package wizard drives the four-step event submission flow: basics, venue
// and schedule, organizer contact, review. Steps gate forward movement on
// validation; backward movement is always free.
package wizard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

const (
	FirstStep = 1
	LastStep  = 4

	// field errors surface this long after the keystroke that caused them
	debounceDelay = 500 * time.Millisecond

	maxImages = 5
)

// Categories a submission may pick from.
var Categories = []string{
	"Arts & Crafts", "Sports & Recreation", "Education", "Music & Dance",
	"Food & Dining", "Nature & Outdoors", "Technology", "Community Service",
	"Cultural Events", "Entertainment",
}

// PriceOptions are the preset price labels; "Custom" opens free-text entry
// which is accepted as typed.
var PriceOptions = []string{"Free", "$5", "$10", "$15", "$20", "$25", "$30", "Custom"}

// stepFields maps each step to the fields it must validate before the flow
// may advance past it. The review step validates nothing new.
var stepFields = map[int][]string{
	1: {"title", "description", "category"},
	2: {"location", "date", "time"},
	3: {"organizerName", "organizerEmail"},
	4: {},
}

// Publisher receives the finished submission. Failures are recoverable: the
// wizard keeps its state so the user can retry.
type Publisher interface {
	Publish(ctx context.Context, sub structs.EventSubmission) error
}

// Drafter receives incomplete submissions saved for later.
type Drafter interface {
	SaveDraft(sub structs.EventSubmission)
}

type Wizard struct {
	mu       sync.Mutex
	data     structs.EventSubmission
	step     int
	errors   map[string]string
	pending  map[string]*time.Timer
	busy     bool
	done     bool
	validate *validator.Validate
	banners  *notify.Queue
	pub      Publisher
	drafts   Drafter
}

func New(banners *notify.Queue, pub Publisher, drafts Drafter) *Wizard {
	return &Wizard{
		data: structs.EventSubmission{
			Price:        "Free",
			MaxAttendees: 50,
			AgeRange:     [2]int{0, 18},
		},
		step:     FirstStep,
		errors:   make(map[string]string),
		pending:  make(map[string]*time.Timer),
		validate: validator.New(),
		banners:  banners,
		pub:      pub,
		drafts:   drafts,
	}
}

func (wz *Wizard) Step() int {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.step
}

func (wz *Wizard) Data() structs.EventSubmission {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return cloneSubmission(wz.data)
}

func (wz *Wizard) Errors() map[string]string {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	out := make(map[string]string, len(wz.errors))
	for k, v := range wz.errors {
		out[k] = v
	}
	return out
}

func (wz *Wizard) Done() bool {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	return wz.done
}

// SetField updates one text field. The matching field error is re-evaluated
// after the debounce window; typing again before it fires restarts the
// window, so only the final value is ever judged.
func (wz *Wizard) SetField(name, value string) {
	wz.mu.Lock()
	defer wz.mu.Unlock()

	switch name {
	case "title":
		wz.data.Title = value
	case "description":
		wz.data.Description = value
	case "longDescription":
		wz.data.LongDescription = value
	case "category":
		wz.data.Category = value
	case "location":
		wz.data.Location = value
	case "date":
		wz.data.Date = value
	case "time":
		wz.data.Time = value
	case "endTime":
		wz.data.EndTime = value
	case "price":
		wz.data.Price = value
	case "customPrice":
		wz.data.CustomPrice = value
	case "organizerName":
		wz.data.OrganizerName = value
	case "organizerEmail":
		wz.data.OrganizerEmail = value
	case "organizerPhone":
		wz.data.OrganizerPhone = value
	case "organizerBio":
		wz.data.OrganizerBio = value
	default:
		return
	}

	if t, ok := wz.pending[name]; ok {
		t.Stop()
	}
	wz.pending[name] = time.AfterFunc(debounceDelay, func() {
		wz.mu.Lock()
		defer wz.mu.Unlock()
		if msg := wz.fieldError(name); msg != "" {
			wz.errors[name] = msg
		} else {
			delete(wz.errors, name)
		}
	})
}

func (wz *Wizard) SetAgeRange(min, max int) {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	wz.data.AgeRange = [2]int{min, max}
}

func (wz *Wizard) SetMaxAttendees(n int) {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	wz.data.MaxAttendees = n
}

// AddTag appends a tag. Duplicates compare case-sensitively, so "Fun" and
// "fun" are two tags.
func (wz *Wizard) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for _, t := range wz.data.Tags {
		if t == tag {
			return
		}
	}
	wz.data.Tags = append(wz.data.Tags, tag)
}

func (wz *Wizard) RemoveTag(tag string) {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for i, t := range wz.data.Tags {
		if t == tag {
			wz.data.Tags = append(wz.data.Tags[:i], wz.data.Tags[i+1:]...)
			return
		}
	}
}

// AddImages keeps image attachments only, capped at five total. Non-image
// files, oversized files and overflow are dropped without complaint.
func (wz *Wizard) AddImages(refs []structs.ImageRef) []structs.ImageRef {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for _, ref := range refs {
		if len(wz.data.Images) >= maxImages {
			break
		}
		if !strings.HasPrefix(ref.ContentType, "image/") {
			continue
		}
		if ref.Size > maxImageBytes {
			continue
		}
		wz.data.Images = append(wz.data.Images, ref)
	}
	return append([]structs.ImageRef(nil), wz.data.Images...)
}

func (wz *Wizard) RemoveImage(name string) {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for i, ref := range wz.data.Images {
		if ref.Name == name {
			wz.data.Images = append(wz.data.Images[:i], wz.data.Images[i+1:]...)
			return
		}
	}
}

// NextStep validates every field of the current step at once. On failure the
// step does not move and the full error set for the step is returned.
func (wz *Wizard) NextStep() structs.ValidationErrors {
	wz.mu.Lock()
	defer wz.mu.Unlock()

	if errs := wz.validateStep(wz.step); len(errs) > 0 {
		return errs
	}
	if wz.step < LastStep {
		wz.step++
	}
	return nil
}

func (wz *Wizard) PrevStep() {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	if wz.step > FirstStep {
		wz.step--
	}
}

// GoToStep jumps directly. Backward jumps are free; forward jumps validate
// every step in between, stopping at the first that fails.
func (wz *Wizard) GoToStep(target int) structs.ValidationErrors {
	wz.mu.Lock()
	defer wz.mu.Unlock()

	if target < FirstStep {
		target = FirstStep
	}
	if target > LastStep {
		target = LastStep
	}
	if target <= wz.step {
		wz.step = target
		return nil
	}
	for s := wz.step; s < target; s++ {
		if errs := wz.validateStep(s); len(errs) > 0 {
			wz.step = s
			return errs
		}
	}
	wz.step = target
	return nil
}

// SaveDraft hands the current state to the draft collaborator. Drafts are
// never validated; half-finished is the point.
func (wz *Wizard) SaveDraft() {
	wz.mu.Lock()
	sub := cloneSubmission(wz.data)
	wz.mu.Unlock()

	wz.drafts.SaveDraft(sub)
	wz.banners.Push(notify.BannerSave, "Draft saved", "Draft saved! You can continue editing later.")
}

// Submit publishes the submission. Only one submit may be in flight; a second
// call while busy is rejected. A publish failure restores the review step and
// keeps all entered data so the user can retry.
func (wz *Wizard) Submit(ctx context.Context) error {
	wz.mu.Lock()
	if wz.busy {
		wz.mu.Unlock()
		return structs.ErrSubmitInFlight
	}
	for s := FirstStep; s <= LastStep; s++ {
		if errs := wz.validateStep(s); len(errs) > 0 {
			wz.mu.Unlock()
			return errs
		}
	}
	wz.busy = true
	sub := cloneSubmission(wz.data)
	wz.mu.Unlock()

	err := wz.pub.Publish(ctx, sub)

	wz.mu.Lock()
	wz.busy = false
	if err == nil {
		wz.done = true
	}
	wz.mu.Unlock()

	if err != nil {
		wz.banners.Push(notify.BannerGeneral, "Submission failed", "Something went wrong. Please try again.")
		return &structs.CollaboratorError{Op: "publish event", Err: err}
	}
	wz.banners.Push(notify.BannerRegistration, "Event submitted", "Event submitted successfully! It will be reviewed within 24 hours.")
	return nil
}

// Reset returns the wizard to a fresh step-one state for a new submission.
func (wz *Wizard) Reset() {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for _, t := range wz.pending {
		t.Stop()
	}
	wz.pending = make(map[string]*time.Timer)
	wz.errors = make(map[string]string)
	wz.data = structs.EventSubmission{
		Price:        "Free",
		MaxAttendees: 50,
		AgeRange:     [2]int{0, 18},
	}
	wz.step = FirstStep
	wz.busy = false
	wz.done = false
}

// Close cancels pending debounce timers so none fire after disposal.
func (wz *Wizard) Close() {
	wz.mu.Lock()
	defer wz.mu.Unlock()
	for _, t := range wz.pending {
		t.Stop()
	}
	wz.pending = make(map[string]*time.Timer)
}

func cloneSubmission(s structs.EventSubmission) structs.EventSubmission {
	out := s
	out.Tags = append([]string(nil), s.Tags...)
	out.Images = append([]structs.ImageRef(nil), s.Images...)
	return out
}
