package core

import "github.com/zyedidia/generic/queue"

// Distances runs a breadth-first search from start over linked pipes and
// returns the step distance of every reached cell.
func Distances(m *TileMap, start Coord) map[Coord]int {
	dist := map[Coord]int{start: 0}
	work := queue.New[Coord]()
	work.Enqueue(start)

	for !work.Empty() {
		c := work.Dequeue()
		for _, d := range AllDirs {
			n, ok := m.Linked(c, d)
			if !ok {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[c] + 1
			work.Enqueue(n)
		}
	}
	return dist
}

// FarthestFromStart returns the largest breadth-first distance from Start
// along linked pipes. For a well-formed puzzle it equals Loop.Farthest.
func FarthestFromStart(m *TileMap) (int, error) {
	start, err := m.Start()
	if err != nil {
		return 0, err
	}

	farthest := 0
	for _, d := range Distances(m, start) {
		if d > farthest {
			farthest = d
		}
	}
	return farthest, nil
}
