package queue

// Queue carries serialized follow-up task descriptors from the synchronous
// action path to the async task runner. At-least-once semantics; no ordering
// guarantee across partitions.
type Queue interface {
	Push(taskId string, message []byte) error
	Pop(batchSize int) ([]string, error)
}
