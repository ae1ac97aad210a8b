package core

import (
	"fmt"
	"testing"
)

func TestRoomHistoryBound(t *testing.T) {
	room := NewRoom("general", 100)

	for i := 0; i < 101; i++ {
		room.Append(newMessage("alice", fmt.Sprintf("m-%d", i)))
	}

	history := room.History()
	if len(history) != 100 {
		t.Fatalf("history length = %d, want 100", len(history))
	}
	if history[0].Body != "m-1" {
		t.Fatalf("oldest retained = %q, want m-1 (m-0 evicted)", history[0].Body)
	}
	if history[99].Body != "m-100" {
		t.Fatalf("newest retained = %q, want m-100", history[99].Body)
	}
}

func TestRoomEvictsOnePerAppend(t *testing.T) {
	room := NewRoom("general", 3)

	for i := 0; i < 10; i++ {
		room.Append(newMessage("alice", fmt.Sprintf("m-%d", i)))
		if got := len(room.History()); got > 3 {
			t.Fatalf("history length %d exceeds limit after append %d", got, i)
		}
	}
	history := room.History()
	if history[0].Body != "m-7" || history[2].Body != "m-9" {
		t.Fatalf("unexpected retained window: %q..%q", history[0].Body, history[2].Body)
	}
}

func TestRoomDeleteIdempotent(t *testing.T) {
	room := NewRoom("general", 0)
	m := newMessage("alice", "hi")
	room.Append(m)

	if !room.Delete(m.ID) {
		t.Fatal("first delete should succeed")
	}
	if room.Delete(m.ID) {
		t.Fatal("second delete should be a no-op")
	}
	if len(room.History()) != 0 {
		t.Fatalf("history not empty after delete")
	}
}

func TestRoomReact(t *testing.T) {
	room := NewRoom("general", 0)
	m := newMessage("alice", "hi")
	room.Append(m)

	if _, ok := room.React("missing", "🔥", "bob"); ok {
		t.Fatal("react on unknown id should fail")
	}

	// Duplicates are allowed and order is preserved.
	room.React(m.ID, "🔥", "bob")
	room.React(m.ID, "🔥", "bob")
	reactions, ok := room.React(m.ID, "👍", "carol")
	if !ok {
		t.Fatal("react on live message should succeed")
	}
	if len(reactions) != 3 {
		t.Fatalf("reactions length = %d, want 3", len(reactions))
	}
	if reactions[0] != (Reaction{Emoji: "🔥", User: "bob"}) || reactions[2] != (Reaction{Emoji: "👍", User: "carol"}) {
		t.Fatalf("unexpected reaction order: %+v", reactions)
	}
}

func TestRoomHistorySnapshotsAreIndependent(t *testing.T) {
	room := NewRoom("general", 0)
	m := newMessage("alice", "hi")
	room.Append(m)

	snap := room.History()
	room.React(m.ID, "🔥", "bob")

	if len(snap[0].Reactions) != 0 {
		t.Fatal("earlier snapshot observed a later reaction")
	}
}
