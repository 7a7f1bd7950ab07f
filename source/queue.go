// Package source — BFS queue with deduplication.
// Holds directories still to scan; a directory reached twice (through a
// symlink, for example) is scanned once.
package source

// Queue is a BFS queue of directories.
type Queue struct {
	items   []string
	visited map[string]bool
	idx     int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		visited: make(map[string]bool),
	}
}

// Add enqueues dir under key unless key has been seen before. It reports
// whether dir was added.
func (q *Queue) Add(key, dir string) bool {
	if q.visited[key] {
		return false
	}
	q.visited[key] = true
	q.items = append(q.items, dir)
	return true
}

// HasNext returns true if there are unscanned directories.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unscanned directory and advances the pointer.
func (q *Queue) Next() string {
	dir := q.items[q.idx]
	q.idx++
	return dir
}

// Visited returns the number of unique directories seen.
func (q *Queue) Visited() int {
	return len(q.visited)
}
