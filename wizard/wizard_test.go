package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigglesgo/notify"
	"gigglesgo/structs"
)

func newTestWizard(t *testing.T, pub Publisher) (*Wizard, *MemoryDrafts, *notify.Queue) {
	t.Helper()
	q := notify.NewQueue(10)
	t.Cleanup(q.Close)
	drafts := NewMemoryDrafts()
	if pub == nil {
		pub = NewMemoryPublisher()
	}
	wz := New(q, pub, drafts)
	t.Cleanup(wz.Close)
	return wz, drafts, q
}

func fillStepOne(wz *Wizard) {
	wz.SetField("title", "Mashramani Kids Parade")
	wz.SetField("description", "A family friendly parade through central Georgetown.")
	wz.SetField("category", "Cultural Events")
}

func fillStepTwo(wz *Wizard) {
	wz.SetField("location", "Main Street, Georgetown")
	wz.SetField("date", "2025-02-23")
	wz.SetField("time", "10:00")
}

func fillStepThree(wz *Wizard) {
	wz.SetField("organizerName", "Ministry of Culture")
	wz.SetField("organizerEmail", "events@culture.gov.gy")
}

func TestDefaults(t *testing.T) {
	wz, _, _ := newTestWizard(t, nil)

	data := wz.Data()
	assert.Equal(t, "Free", data.Price)
	assert.Equal(t, 50, data.MaxAttendees)
	assert.Equal(t, [2]int{0, 18}, data.AgeRange)
	assert.Equal(t, FirstStep, wz.Step())
}

func TestSetField(t *testing.T) {
	t.Run("optional fields land in the form data", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		wz.SetField("endTime", "12:00")
		wz.SetField("customPrice", "12.50")
		wz.SetField("longDescription", "Full schedule, vendor list and parking details.")
		wz.SetField("organizerPhone", "+592-555-0000")
		wz.SetField("organizerBio", "Community events team.")

		data := wz.Data()
		assert.Equal(t, "12:00", data.EndTime)
		assert.Equal(t, "12.50", data.CustomPrice)
		assert.Equal(t, "Full schedule, vendor list and parking details.", data.LongDescription)
		assert.Equal(t, "+592-555-0000", data.OrganizerPhone)
		assert.Equal(t, "Community events team.", data.OrganizerBio)
	})

	t.Run("custom price is accepted as typed, never validated", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		wz.SetField("customPrice", "whatever the gate charges")
		time.Sleep(debounceDelay + 100*time.Millisecond)

		assert.Empty(t, wz.Errors())
		assert.Equal(t, "whatever the gate charges", wz.Data().CustomPrice)
	})

	t.Run("optional fields never block step advancement", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		fillStepOne(wz)
		wz.SetField("endTime", "")
		wz.SetField("organizerBio", "")

		assert.Nil(t, wz.NextStep())
		assert.Equal(t, 2, wz.Step())
	})
}

func TestNextStep(t *testing.T) {
	t.Run("a four character title blocks step one", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		wz.SetField("title", "Expo")
		wz.SetField("description", "A long enough description for the basics step.")
		wz.SetField("category", "Education")

		errs := wz.NextStep()
		require.Len(t, errs, 1)
		assert.Equal(t, "Title must be at least 5 characters", errs["title"])
		assert.Equal(t, 1, wz.Step())
	})

	t.Run("five characters is enough", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		wz.SetField("title", "Expos")
		wz.SetField("description", "A long enough description for the basics step.")
		wz.SetField("category", "Education")

		assert.Nil(t, wz.NextStep())
		assert.Equal(t, 2, wz.Step())
	})

	t.Run("all failing fields are reported at once", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		errs := wz.NextStep()
		require.Len(t, errs, 3)
		assert.Contains(t, errs, "title")
		assert.Contains(t, errs, "description")
		assert.Contains(t, errs, "category")
	})

	t.Run("organizer email must actually be an email", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		fillStepOne(wz)
		fillStepTwo(wz)
		require.Nil(t, wz.NextStep())
		require.Nil(t, wz.NextStep())

		wz.SetField("organizerName", "Ministry of Culture")
		wz.SetField("organizerEmail", "not-an-email")

		errs := wz.NextStep()
		require.Len(t, errs, 1)
		assert.Equal(t, "Valid email is required", errs["organizerEmail"])
	})
}

func TestGoToStep(t *testing.T) {
	t.Run("backward jumps are free", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		fillStepOne(wz)
		require.Nil(t, wz.NextStep())

		assert.Nil(t, wz.GoToStep(1))
		assert.Equal(t, 1, wz.Step())
	})

	t.Run("forward jumps stop at the first invalid step", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		fillStepOne(wz)

		errs := wz.GoToStep(4)
		require.NotNil(t, errs)
		assert.Equal(t, 2, wz.Step())
		assert.Contains(t, errs, "location")
	})

	t.Run("out of range targets clamp", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)
		assert.Nil(t, wz.GoToStep(-3))
		assert.Equal(t, 1, wz.Step())
	})
}

func TestDebounce(t *testing.T) {
	t.Run("only the final value is judged", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		wz.SetField("title", "Hi")
		wz.SetField("title", "Big Family Day")

		time.Sleep(debounceDelay + 200*time.Millisecond)
		assert.Empty(t, wz.Errors())
	})

	t.Run("a settled invalid value surfaces its error", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		wz.SetField("title", "Hi")
		assert.Eventually(t, func() bool {
			return wz.Errors()["title"] == "Title must be at least 5 characters"
		}, 2*time.Second, 20*time.Millisecond)
	})
}

func TestTags(t *testing.T) {
	wz, _, _ := newTestWizard(t, nil)

	wz.AddTag("Fun")
	wz.AddTag("fun") // case-sensitive, both stay
	wz.AddTag("Fun") // exact duplicate, dropped
	wz.AddTag("  ")

	assert.Equal(t, []string{"Fun", "fun"}, wz.Data().Tags)

	wz.RemoveTag("Fun")
	assert.Equal(t, []string{"fun"}, wz.Data().Tags)
}

func TestAddImages(t *testing.T) {
	t.Run("non-images are dropped and the total caps at five", func(t *testing.T) {
		wz, _, _ := newTestWizard(t, nil)

		refs := []structs.ImageRef{
			{Name: "notes.pdf", ContentType: "application/pdf"},
			{Name: "huge.png", ContentType: "image/png", Size: 6 << 20},
		}
		for i := 0; i < 6; i++ {
			refs = append(refs, structs.ImageRef{Name: "p.jpg", ContentType: "image/jpeg"})
		}

		kept := wz.AddImages(refs)
		assert.Len(t, kept, 5)
		for _, ref := range kept {
			assert.Equal(t, "image/jpeg", ref.ContentType)
		}
	})
}

func TestSaveDraft(t *testing.T) {
	t.Run("drafts skip validation entirely", func(t *testing.T) {
		wz, drafts, q := newTestWizard(t, nil)

		wz.SetField("title", "Hm")
		wz.SaveDraft()

		saved := drafts.Drafts()
		require.Len(t, saved, 1)
		assert.Equal(t, "Hm", saved[0].Title)

		visible := q.Visible()
		require.NotEmpty(t, visible)
		assert.Equal(t, "Draft saved! You can continue editing later.", visible[len(visible)-1].Message)
	})
}

func TestSubmit(t *testing.T) {
	fillAll := func(wz *Wizard) {
		fillStepOne(wz)
		fillStepTwo(wz)
		fillStepThree(wz)
	}

	t.Run("a complete submission publishes and finishes", func(t *testing.T) {
		pub := NewMemoryPublisher()
		wz, _, q := newTestWizard(t, pub)
		fillAll(wz)

		require.NoError(t, wz.Submit(context.Background()))
		assert.True(t, wz.Done())
		require.Len(t, pub.Published(), 1)
		assert.Equal(t, "Mashramani Kids Parade", pub.Published()[0].Title)

		visible := q.Visible()
		require.NotEmpty(t, visible)
		assert.Equal(t, "Event submitted successfully! It will be reviewed within 24 hours.", visible[len(visible)-1].Message)
	})

	t.Run("an incomplete submission never reaches the publisher", func(t *testing.T) {
		pub := NewMemoryPublisher()
		wz, _, _ := newTestWizard(t, pub)

		err := wz.Submit(context.Background())
		var verrs structs.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Empty(t, pub.Published())
	})

	t.Run("publish failure keeps the data for a retry", func(t *testing.T) {
		calls := 0
		pub := PublisherFunc(func(ctx context.Context, sub structs.EventSubmission) error {
			calls++
			if calls == 1 {
				return errors.New("review service down")
			}
			return nil
		})
		wz, _, q := newTestWizard(t, pub)
		fillAll(wz)

		err := wz.Submit(context.Background())
		var cerr *structs.CollaboratorError
		require.ErrorAs(t, err, &cerr)
		assert.False(t, wz.Done())
		assert.Equal(t, "Mashramani Kids Parade", wz.Data().Title)

		visible := q.Visible()
		require.NotEmpty(t, visible)
		assert.Equal(t, "Something went wrong. Please try again.", visible[len(visible)-1].Message)

		require.NoError(t, wz.Submit(context.Background()))
		assert.True(t, wz.Done())
	})

	t.Run("only one submit runs at a time", func(t *testing.T) {
		release := make(chan struct{})
		pub := PublisherFunc(func(ctx context.Context, sub structs.EventSubmission) error {
			<-release
			return nil
		})
		wz, _, _ := newTestWizard(t, pub)
		fillAll(wz)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = wz.Submit(context.Background())
		}()

		assert.Eventually(t, func() bool {
			return errors.Is(wz.Submit(context.Background()), structs.ErrSubmitInFlight)
		}, time.Second, 5*time.Millisecond)

		close(release)
		wg.Wait()
		assert.True(t, wz.Done())
	})
}

func TestReset(t *testing.T) {
	wz, _, _ := newTestWizard(t, nil)
	fillStepOne(wz)
	require.Nil(t, wz.NextStep())

	wz.Reset()
	assert.Equal(t, FirstStep, wz.Step())
	assert.Empty(t, wz.Data().Title)
	assert.Equal(t, "Free", wz.Data().Price)
}
