// File: internal/registry/events_test.go
package registry

import (
	"testing"
)

// recorder captures events through the EventPublisher boundary.
type recorder struct {
	events []Event
}

func (rec *recorder) Publish(ev Event) { rec.events = append(rec.events, ev) }

func (rec *recorder) count(name string, kind Kind) int {
	n := 0
	for _, ev := range rec.events {
		if ev.Name == name && ev.Kind == kind {
			n++
		}
	}
	return n
}

func (rec *recorder) names() []string {
	names := make([]string, 0, len(rec.events))
	for _, ev := range rec.events {
		names = append(names, ev.Name)
	}
	return names
}

func TestOpenedEmittedOncePerConstruction(t *testing.T) {
	rec := &recorder{}
	r := New(WithPublisher(rec))

	if _, err := r.Acquire("settings", nil, stubFactory(nil, false)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Acquire("settings", nil, stubFactory(nil, false)); err != nil {
		t.Fatal(err)
	}

	if got := rec.count(EventOpened, "settings"); got != 1 {
		t.Errorf("opened emitted %d times; expected 1 (reuse must not emit)", got)
	}
}

func TestClosedEmittedAtMostOnce(t *testing.T) {
	tests := []struct {
		name string
		fire func(*stubPanel)
	}{
		{"finished", func(p *stubPanel) { p.bind.Finished() }},
		{"destroyed", func(p *stubPanel) { p.bind.Destroyed() }},
		{"finished then destroyed", func(p *stubPanel) { p.bind.Finished(); p.bind.Destroyed() }},
		{"destroyed then finished", func(p *stubPanel) { p.bind.Destroyed(); p.bind.Finished() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			r := New(WithPublisher(rec))
			var p *stubPanel
			if _, err := r.Acquire("logview", nil, stubFactory(&p, false)); err != nil {
				t.Fatal(err)
			}

			tt.fire(p)

			if got := rec.count(EventClosed, "logview"); got != 1 {
				t.Errorf("closed emitted %d times; expected 1", got)
			}
		})
	}
}

func TestAllClosedWhenLastEntryRemoved(t *testing.T) {
	rec := &recorder{}
	r := New(WithPublisher(rec))
	var a, b *stubPanel
	if _, err := r.Acquire("a", nil, stubFactory(&a, false)); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Acquire("b", nil, stubFactory(&b, false)); err != nil {
		t.Fatal(err)
	}

	a.bind.Finished()
	if got := rec.count(EventAllClosed, ""); got != 0 {
		t.Fatalf("all_closed emitted %d times while an entry remains; expected 0", got)
	}

	b.bind.Finished()
	if got := rec.count(EventAllClosed, ""); got != 1 {
		t.Errorf("all_closed emitted %d times after last removal; expected 1", got)
	}
}

func TestReleaseAllEmitsSingleAllClosed(t *testing.T) {
	// Resources that confirm closure synchronously are the worst case: each
	// removal empties the map a little further, and the final removal must
	// not emit its own all_closed on top of the one ReleaseAll emits.
	rec := &recorder{}
	r := New(WithPublisher(rec))
	for _, k := range []Kind{"a", "b", "c"} {
		if _, err := r.Acquire(k, nil, stubFactory(nil, true)); err != nil {
			t.Fatal(err)
		}
	}

	r.ReleaseAll()

	if got := rec.count(EventAllClosed, ""); got != 1 {
		t.Errorf("all_closed emitted %d times; expected exactly 1", got)
	}
	for _, k := range []Kind{"a", "b", "c"} {
		if got := rec.count(EventClosed, k); got != 1 {
			t.Errorf("closed(%s) emitted %d times; expected 1", k, got)
		}
	}
}

func TestSubscribersAndPublisherBothReceive(t *testing.T) {
	rec := &recorder{}
	r := New(WithPublisher(rec))
	var seen []Event
	r.Subscribe(func(ev Event) { seen = append(seen, ev) })

	var p *stubPanel
	if _, err := r.Acquire("help", nil, stubFactory(&p, false)); err != nil {
		t.Fatal(err)
	}
	p.bind.Finished()

	if len(rec.events) != len(seen) {
		t.Fatalf("publisher saw %d events, subscriber saw %d", len(rec.events), len(seen))
	}
	for i := range seen {
		if seen[i] != rec.events[i] {
			t.Errorf("event %d: subscriber %v, publisher %v", i, seen[i], rec.events[i])
		}
	}
}

func TestSingletonScenario(t *testing.T) {
	// Full walk: open, reopen (reuse), external destruction.
	rec := &recorder{}
	r := New(WithPublisher(rec))
	var login *stubPanel

	first, err := r.Acquire("login", nil, stubFactory(&login, false))
	if err != nil {
		t.Fatal(err)
	}
	if r.Count() != 1 {
		t.Fatalf("Count = %d; expected 1", r.Count())
	}
	if got := rec.count(EventOpened, "login"); got != 1 {
		t.Fatalf("opened emitted %d times; expected 1", got)
	}

	second, err := r.Acquire("login", nil, stubFactory(nil, false))
	if err != nil {
		t.Fatal(err)
	}
	if second != first {
		t.Error("re-acquire returned a different handle")
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d after reuse; expected 1", r.Count())
	}
	if got := rec.count(EventOpened, "login"); got != 1 {
		t.Errorf("opened emitted %d times after reuse; expected 1", got)
	}

	login.bind.Destroyed()

	if r.Count() != 0 {
		t.Errorf("Count = %d after destruction; expected 0", r.Count())
	}
	want := []string{EventOpened, EventClosed, EventAllClosed}
	got := rec.names()
	if len(got) != len(want) {
		t.Fatalf("event sequence %v; expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event sequence %v; expected %v", got, want)
		}
	}
}
