package level

import "math"

// Cell is a tile coordinate.
type Cell struct {
	X, Y int
}

// TileAt returns the tile containing the pixel (x, y).
func (g *Grid) TileAt(x, y float64) Cell {
	return Cell{X: int(math.Floor(x / g.TileSize)), Y: int(math.Floor(y / g.TileSize))}
}

// CellCenter is the pixel center of c.
func (g *Grid) CellCenter(c Cell) (float64, float64) {
	return (float64(c.X) + 0.5) * g.TileSize, (float64(c.Y) + 0.5) * g.TileSize
}

// Path finds a 4-connected walk from start to goal around walls with A*. The
// result includes both ends. It is nil when the goal is a wall, out of the
// grid, or not found within maxNodes expansions.
func (g *Grid) Path(start, goal Cell, maxNodes int) []Cell {
	if !g.InBounds(start.X, start.Y) || !g.InBounds(goal.X, goal.Y) || g.At(goal.X, goal.Y) == Wall {
		return nil
	}
	if start == goal {
		return []Cell{start}
	}

	cost := map[Cell]float64{start: 0}
	score := map[Cell]float64{start: manhattan(start, goal)}
	from := map[Cell]Cell{}
	open := []Cell{start}
	queued := map[Cell]bool{start: true}

	for expanded := 0; len(open) > 0 && expanded < maxNodes; expanded++ {
		best := 0
		for i, c := range open {
			if score[c] < score[open[best]] {
				best = i
			}
		}
		cur := open[best]
		open = append(open[:best], open[best+1:]...)
		delete(queued, cur)

		if cur == goal {
			return walkBack(from, start, goal)
		}

		for _, d := range [4]Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			next := Cell{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.InBounds(next.X, next.Y) || g.Tiles[next.Y][next.X] == Wall {
				continue
			}
			tentative := cost[cur] + 1
			if prev, seen := cost[next]; seen && tentative >= prev {
				continue
			}
			from[next] = cur
			cost[next] = tentative
			score[next] = tentative + manhattan(next, goal)
			if !queued[next] {
				open = append(open, next)
				queued[next] = true
			}
		}
	}
	return nil
}

func walkBack(from map[Cell]Cell, start, goal Cell) []Cell {
	path := []Cell{goal}
	for cur := goal; cur != start; {
		prev, ok := from[cur]
		if !ok {
			return nil
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Cell) float64 {
	return math.Abs(float64(a.X-b.X)) + math.Abs(float64(a.Y-b.Y))
}
