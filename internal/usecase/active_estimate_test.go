package usecase

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestActiveEstimate(t *testing.T) {
	t.Run("ticket stays current while estimate is open", func(t *testing.T) {
		a := NewActiveEstimate(true)
		ticket := a.Begin("est-1")
		if a.ID() != "est-1" || !a.Current(ticket) {
			t.Fatalf("expected current ticket for est-1")
		}
		a.Select(" est-1 ")
		if !a.Current(ticket) {
			t.Fatalf("reselecting the same estimate must not invalidate the ticket")
		}
	})

	t.Run("switching estimate invalidates ticket", func(t *testing.T) {
		a := NewActiveEstimate(true)
		ticket := a.Begin("est-1")
		a.Select("est-2")
		if a.Current(ticket) {
			t.Fatalf("expected stale ticket")
		}
		a.Select("est-1")
		if a.Current(ticket) {
			t.Fatalf("switching back must not revive an older ticket")
		}
	})

	t.Run("guard disabled", func(t *testing.T) {
		a := NewActiveEstimate(false)
		ticket := a.Begin("est-1")
		a.Select("")
		if !a.Current(ticket) {
			t.Fatalf("expected every ticket current with guard off")
		}
	})

	t.Run("begin returns a ticket for the requested estimate under contention", func(t *testing.T) {
		a := NewActiveEstimate(true)
		var wg sync.WaitGroup
		errs := make(chan string, 64)
		for i := range 64 {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				if got := a.Begin(id); got.EstimateID != id {
					errs <- fmt.Sprintf("Begin(%q) returned ticket for %q", id, got.EstimateID)
				}
			}(fmt.Sprintf("est-%d", i%4))
		}
		wg.Wait()
		close(errs)
		for msg := range errs {
			t.Error(msg)
		}
	})
}

func TestActiveEstimate_Apply(t *testing.T) {
	t.Run("current ticket runs write", func(t *testing.T) {
		a := NewActiveEstimate(true)
		ticket := a.Begin("est-1")
		called := false
		if err := a.Apply(ticket, func() error { called = true; return nil }); err != nil || !called {
			t.Fatalf("expected write to run, err=%v called=%v", err, called)
		}
	})

	t.Run("stale ticket skips write", func(t *testing.T) {
		a := NewActiveEstimate(true)
		ticket := a.Begin("est-1")
		a.Select("est-2")
		err := a.Apply(ticket, func() error {
			t.Fatalf("write must not run for a stale ticket")
			return nil
		})
		if !errors.Is(err, ErrStaleAIResponse) {
			t.Fatalf("expected ErrStaleAIResponse, got %v", err)
		}
	})

	t.Run("write error is returned", func(t *testing.T) {
		a := NewActiveEstimate(true)
		boom := errors.New("boom")
		if err := a.Apply(a.Begin("est-1"), func() error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("expected write error, got %v", err)
		}
	})

	t.Run("select waits for an in-flight write", func(t *testing.T) {
		a := NewActiveEstimate(true)
		ticket := a.Begin("est-1")
		selected := make(chan struct{})

		err := a.Apply(ticket, func() error {
			go func() {
				a.Select("est-2")
				close(selected)
			}()
			select {
			case <-selected:
				return errors.New("select completed while write was in flight")
			case <-time.After(50 * time.Millisecond):
				return nil
			}
		})
		if err != nil {
			t.Fatal(err)
		}
		<-selected
		if a.ID() != "est-2" || a.Current(ticket) {
			t.Fatalf("expected est-2 active after write, got %q", a.ID())
		}
	})

	t.Run("guard disabled always writes", func(t *testing.T) {
		a := NewActiveEstimate(false)
		ticket := a.Begin("est-1")
		a.Select("est-2")
		called := false
		if err := a.Apply(ticket, func() error { called = true; return nil }); err != nil || !called {
			t.Fatalf("expected write with guard off, err=%v", err)
		}
	})
}
