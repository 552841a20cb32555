package git

import "context"

// MockHistorySource is a test double for a history source. It lets
// tests provide predefined commit records without a real repository.
type MockHistorySource struct {
	Records []CommitRecord
	Error   error
}

// NewMockHistorySource creates a mock source with the given data.
func NewMockHistorySource(records []CommitRecord, err error) *MockHistorySource {
	return &MockHistorySource{Records: records, Error: err}
}

// ReadCommits returns the predefined records or error.
func (m *MockHistorySource) ReadCommits(_ context.Context) ([]CommitRecord, error) {
	return m.Records, m.Error
}
