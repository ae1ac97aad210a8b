package core

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps claimed usernames to live clients and tracks the admin set.
// It carries its own locking so transport-side reads (presence listings,
// direct-message resolution) do not have to round-trip the hub loop.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*identity
	admins  map[string]struct{}
	granted atomic.Bool
}

// identity remembers which session installed a name so a stale disconnect
// cannot erase a later claim of the same name by a different session.
type identity struct {
	client  *Client
	session string
}

// NewRegistry constructs an empty registry with no admin granted yet.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*identity),
		admins:  make(map[string]struct{}),
	}
}

// Register installs the name→client mapping, overwriting any prior claim of
// the same name. The very first successful registration process-wide grants
// admin capability; the grant decision is a compare-and-set, so exactly one
// concurrent caller observes it. Returns true when admin was granted.
func (g *Registry) Register(name string, c *Client) bool {
	admin := g.granted.CompareAndSwap(false, true)
	g.mu.Lock()
	if admin {
		g.admins[name] = struct{}{}
	}
	g.entries[name] = &identity{client: c, session: c.ID}
	g.mu.Unlock()
	return admin
}

// Unregister removes the mapping for name, but only if it is still owned by
// the given session. Returns true if the mapping was cleared.
func (g *Registry) Unregister(name, session string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.entries[name]
	if !ok || e.session != session {
		return false
	}
	delete(g.entries, name)
	return true
}

// Resolve returns the live client for name, or nil.
func (g *Registry) Resolve(name string) *Client {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if e, ok := g.entries[name]; ok {
		return e.client
	}
	return nil
}

// IsAdmin reports whether name holds admin capability. The admin set never
// shrinks; disconnecting does not demote.
func (g *Registry) IsAdmin(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.admins[name]
	return ok
}

// Usernames returns the sorted presence list.
func (g *Registry) Usernames() []string {
	g.mu.RLock()
	names := make([]string, 0, len(g.entries))
	for name := range g.entries {
		names = append(names, name)
	}
	g.mu.RUnlock()
	sort.Strings(names)
	return names
}
