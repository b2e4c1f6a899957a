package queue

import "sync"

type memoryQueue struct {
	mu       sync.Mutex
	messages []string
}

var _ Queue = new(memoryQueue)

func NewMemoryQueue() *memoryQueue {
	return &memoryQueue{messages: make([]string, 0)}
}

func (mq *memoryQueue) Push(taskId string, message []byte) error {
	mq.mu.Lock()
	defer mq.mu.Unlock()
	mq.messages = append(mq.messages, string(message))
	return nil
}

func (mq *memoryQueue) Pop(batchSize int) ([]string, error) {
	mq.mu.Lock()
	defer mq.mu.Unlock()
	if batchSize > len(mq.messages) {
		batchSize = len(mq.messages)
	}
	result := mq.messages[:batchSize]
	mq.messages = mq.messages[batchSize:]
	return result, nil
}
