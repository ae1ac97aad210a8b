package core

import (
	"fmt"
	"sync"
	"testing"
)

func TestRegistryFirstRegistrantBecomesAdmin(t *testing.T) {
	reg := NewRegistry()

	if !reg.Register("alice", NewClient("s1")) {
		t.Fatal("first registration should grant admin")
	}
	if reg.Register("bob", NewClient("s2")) {
		t.Fatal("second registration must not grant admin")
	}
	if !reg.IsAdmin("alice") || reg.IsAdmin("bob") {
		t.Fatal("admin set should be exactly {alice}")
	}
}

func TestRegistryAdminGrantIsUniqueUnderConcurrency(t *testing.T) {
	reg := NewRegistry()

	const n = 100
	grants := make(chan bool, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", i)
			grants <- reg.Register(name, NewClient(name))
		}(i)
	}
	wg.Wait()
	close(grants)

	granted := 0
	for g := range grants {
		if g {
			granted++
		}
	}
	if granted != 1 {
		t.Fatalf("admin granted %d times, want exactly 1", granted)
	}
}

func TestRegistryAdminNeverDemoted(t *testing.T) {
	reg := NewRegistry()
	c := NewClient("s1")
	reg.Register("alice", c)

	reg.Unregister("alice", c.ID)
	if !reg.IsAdmin("alice") {
		t.Fatal("disconnect must not revoke admin")
	}
}

func TestRegistryUnregisterKeyedBySession(t *testing.T) {
	reg := NewRegistry()
	first := NewClient("s1")
	second := NewClient("s2")

	reg.Register("dave", first)
	// A later connection claims the same name; the mapping is overwritten.
	reg.Register("dave", second)

	if reg.Unregister("dave", first.ID) {
		t.Fatal("stale session must not clear a later claim")
	}
	if got := reg.Resolve("dave"); got != second {
		t.Fatalf("resolve returned %v, want the live claim", got)
	}
	if !reg.Unregister("dave", second.ID) {
		t.Fatal("owning session should clear its own mapping")
	}
	if reg.Resolve("dave") != nil {
		t.Fatal("mapping should be gone")
	}
}

func TestRegistryUsernamesSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Register("zoe", NewClient("s1"))
	reg.Register("amy", NewClient("s2"))

	names := reg.Usernames()
	if len(names) != 2 || names[0] != "amy" || names[1] != "zoe" {
		t.Fatalf("unexpected presence list: %v", names)
	}
}
