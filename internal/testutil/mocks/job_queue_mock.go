package mocks

import "github.com/stretchr/testify/mock"

// MockJobQueue is a mock implementation of jobs.JobQueue
type MockJobQueue struct {
	mock.Mock
}

func (m *MockJobQueue) EnqueueDeckImport(path, deckName string) error {
	args := m.Called(path, deckName)
	return args.Error(0)
}
