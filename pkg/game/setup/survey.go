package setup

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"dungeonescape/pkg/engine/logger"
	"dungeonescape/pkg/engine/world"
	"dungeonescape/pkg/game/entities"
	"dungeonescape/pkg/game/navigation"
	gameworld "dungeonescape/pkg/game/world"
)

// Survey describes the rooms reachable from the start room through doors
type Survey struct {
	Reachable []string // Room ids that loaded, sorted
	Broken    []string // Door targets that could not be loaded, sorted

	EscapeDoors int // Locked doors leading to the start room
	KeySources  int // Keys on the floor plus monsters that drop one
}

// Solvable is true when there is a way out and a way to get the key
func (s Survey) Solvable() bool {
	return s.EscapeDoors > 0 && s.KeySources > 0 && len(s.Broken) == 0
}

// SurveyRooms walks the door graph breadth first from start on a private
// graph, so nothing is cached in the game's own graph. Problems are logged
// as warnings; the game is still playable without a way out.
func SurveyRooms(store gameworld.Store, factory entities.Factory, start string) Survey {
	graph := navigation.New(store, factory)
	start = entities.RoomID(start)

	visited := mapset.New[string]()
	broken := mapset.New[string]()
	queue := []string{start}
	var survey Survey

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		if visited.Has(id) || broken.Has(id) {
			continue
		}

		room, err := graph.Room(id)
		if err != nil {
			broken.Put(id)
			continue
		}
		visited.Put(id)

		room.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
			if gameworld.HasDoor(cell) {
				door := gameworld.GetDoor(cell)
				if door.RequiresKey && door.Target == start {
					survey.EscapeDoors++
				}
				queue = append(queue, door.Target)
				return
			}

			switch o := gameworld.GetGameData(cell).Object.(type) {
			case *entities.Key:
				survey.KeySources++
			case *entities.Monster:
				if o.DropsKey() {
					survey.KeySources++
				}
			}
		})
	}

	survey.Reachable = sortedKeys(visited)
	survey.Broken = sortedKeys(broken)

	if !survey.Solvable() {
		logger.Warning("Rooms may not be escapable",
			"start", start,
			"reachable", survey.Reachable,
			"broken", survey.Broken,
			"escape_doors", survey.EscapeDoors,
			"key_sources", survey.KeySources)
	}
	return survey
}

func sortedKeys(set mapset.Set[string]) []string {
	keys := make([]string, 0, set.Size())
	set.Each(func(key string) {
		keys = append(keys, key)
	})
	sort.Strings(keys)
	return keys
}
