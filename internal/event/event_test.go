package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := NewDispatcher()
	killed := &recorder{}
	escaped := &recorder{}
	d.Subscribe(EnemyKilled, killed)
	d.Subscribe(EnemyEscaped, escaped)

	d.Dispatch(Event{Type: EnemyKilled, Data: 7})
	d.Dispatch(Event{Type: LevelAdvanced})

	if len(killed.got) != 1 || killed.got[0].Data != 7 {
		t.Fatalf("killed listener got %+v", killed.got)
	}
	if len(escaped.got) != 0 {
		t.Fatalf("escaped listener got %+v", escaped.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(PlayerDestroyed, a)
	d.Subscribe(PlayerDestroyed, b)
	d.Unsubscribe(PlayerDestroyed, a)

	d.Dispatch(Event{Type: PlayerDestroyed})

	if len(a.got) != 0 {
		t.Fatalf("unsubscribed listener still called: %+v", a.got)
	}
	if len(b.got) != 1 {
		t.Fatalf("remaining listener called %d times, want 1", len(b.got))
	}
}
