package external

import (
	"testing"

	"farmwatch.app/internal/mocks"
	"github.com/stretchr/testify/mock"
)

// setupLoggerMock returns a logger mock accepting any call with up to
// eight fields
func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	for n := 0; n <= 8; n++ {
		fields := make([]interface{}, n)
		for i := range fields {
			fields[i] = mock.Anything
		}
		mockLogger.EXPECT().Debug(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, fields...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, fields...).Maybe()
	}

	return mockLogger
}
