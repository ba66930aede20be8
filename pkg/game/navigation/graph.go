// Package navigation resolves room ids to loaded rooms and keeps every room
// that has been visited alive for the rest of the session.
package navigation

import (
	"errors"
	"fmt"
	"sort"

	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/world"
)

// Graph is the lazily loaded set of rooms reachable through doors
type Graph struct {
	store   world.Store
	factory entities.Factory
	rooms   map[string]*world.Room
}

// New creates an empty graph backed by store
func New(store world.Store, factory entities.Factory) *Graph {
	return &Graph{
		store:   store,
		factory: factory,
		rooms:   make(map[string]*world.Room),
	}
}

// Room returns the room for id, loading it on first use. Later calls return
// the same instance with whatever changes it has accumulated. A failed load
// is not cached, so a later call tries again.
func (g *Graph) Room(id string) (*world.Room, error) {
	id = entities.RoomID(id)
	if room, ok := g.rooms[id]; ok {
		return room, nil
	}

	room, err := world.LoadRoom(g.store, id, g.factory)
	if err != nil {
		logger.Error("Failed to load room", "room", id, "error", err)
		return nil, err
	}

	g.rooms[id] = room
	return room, nil
}

// Cached returns the room for id only if it has already been loaded
func (g *Graph) Cached(id string) (*world.Room, bool) {
	room, ok := g.rooms[entities.RoomID(id)]
	return room, ok
}

// IDs returns the ids of every loaded room, sorted
func (g *Graph) IDs() []string {
	ids := make([]string, 0, len(g.rooms))
	for id := range g.rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SaveAll writes every loaded room back to the store. All rooms are
// attempted; the errors are joined.
func (g *Graph) SaveAll() error {
	var errs []error
	for _, id := range g.IDs() {
		if err := g.rooms[id].Save(g.store); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("save rooms: %w", errors.Join(errs...))
	}
	return nil
}

// Store returns the store rooms are read from and written to
func (g *Graph) Store() world.Store {
	return g.store
}
