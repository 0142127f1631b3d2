package service

import (
	"context"

	"locations-sqlgen/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRowSource is a mock implementation of the RowSource interface
type MockRowSource struct {
	mock.Mock
}

// ReadRows implements RowSource.
func (m *MockRowSource) ReadRows(ctx context.Context) ([][]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([][]string), args.Error(1)
}

// MockLocationSource is a mock implementation of the LocationSource interface
type MockLocationSource struct {
	mock.Mock
}

// ReadLocations implements LocationSource.
func (m *MockLocationSource) ReadLocations(ctx context.Context) ([]models.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Location), args.Error(1)
}

// MockScriptWriter is a mock implementation of the ScriptWriter interface
type MockScriptWriter struct {
	mock.Mock
}

// WriteScript implements ScriptWriter.
func (m *MockScriptWriter) WriteScript(ctx context.Context, name string, content []byte) (string, error) {
	args := m.Called(ctx, name, content)
	return args.String(0), args.Error(1)
}
