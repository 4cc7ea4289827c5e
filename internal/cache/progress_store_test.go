package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuizProgressFinished(t *testing.T) {
	tests := []struct {
		name     string
		progress QuizProgress
		finished bool
	}{
		{
			name:     "fresh quiz",
			progress: QuizProgress{WordIDs: []uint{1, 2, 3}, Position: 0},
			finished: false,
		},
		{
			name:     "mid quiz",
			progress: QuizProgress{WordIDs: []uint{1, 2, 3}, Position: 2},
			finished: false,
		},
		{
			name:     "past last question",
			progress: QuizProgress{WordIDs: []uint{1, 2, 3}, Position: 3},
			finished: true,
		},
		{
			name:     "empty word list",
			progress: QuizProgress{WordIDs: nil, Position: 0},
			finished: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.finished, tt.progress.Finished())
		})
	}
}
