package primary

// TaskQueue serializes state-mutating work onto a single goroutine.
// Every event-handler body and every post-judge continuation runs as one
// task, so a task sees no interleaved mutations from other tasks.
type TaskQueue interface {
	Enqueue(task func())
}
