// Package task holds the in-memory task collection and the filtered views derived from it.
package task

// Task is a single entry in the collection.
type Task struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
