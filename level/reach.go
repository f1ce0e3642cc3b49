package level

// Reachable reports whether the exit can be walked to from the spawn tile
// through 4-connected non-wall cells. Generation does not guarantee this.
func Reachable(g *Grid) bool {
	ex, ey, ok := g.ExitTile()
	if !ok {
		return false
	}
	sx, sy := g.SpawnTile()

	visited := make([]bool, g.Width*g.Height)
	queue := [][2]int{{sx, sy}}
	visited[sy*g.Width+sx] = true
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur[0] == ex && cur[1] == ey {
			return true
		}
		for _, d := range dirs {
			nx, ny := cur[0]+d[0], cur[1]+d[1]
			if !g.InBounds(nx, ny) || visited[ny*g.Width+nx] || g.Tiles[ny][nx] == Wall {
				continue
			}
			visited[ny*g.Width+nx] = true
			queue = append(queue, [2]int{nx, ny})
		}
	}
	return false
}
