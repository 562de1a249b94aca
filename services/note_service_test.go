package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"notes-app/events"
	"notes-app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==================== MOCKS ====================

// MockRepository is a mock implementation of NoteRepository interface
type MockRepository struct {
	mock.Mock
}

// Ensure MockRepository implements NoteRepository interface
var _ NoteRepository = (*MockRepository)(nil)

func (m *MockRepository) CreateNote(ctx context.Context, title, content string) (int64, error) {
	args := m.Called(ctx, title, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockRepository) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Note), args.Error(1)
}

func (m *MockRepository) UpdateNote(ctx context.Context, note *models.Note) (bool, error) {
	args := m.Called(ctx, note)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) DeleteNote(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockPublisher is a mock implementation of Publisher interface
type MockPublisher struct {
	mock.Mock
}

var _ Publisher = (*MockPublisher)(nil)

func (m *MockPublisher) Publish(ev events.Event) {
	m.Called(ev)
}

// MockRecorder is a mock implementation of Recorder interface
type MockRecorder struct {
	mock.Mock
}

var _ Recorder = (*MockRecorder)(nil)

func (m *MockRecorder) Observe(operation, outcome string, elapsed time.Duration) {
	m.Called(operation, outcome, elapsed)
}

func (m *MockRecorder) SetNotes(count int) {
	m.Called(count)
}

// ==================== TESTS ====================

func TestNoteService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		mockSetup     func(*MockRepository, *MockPublisher)
		expectedNote  *models.Note
		expectedError error
	}{
		{
			name: "Success - publishes created event",
			mockSetup: func(repo *MockRepository, pub *MockPublisher) {
				repo.On("CreateNote", ctx, "Groceries", "Milk, eggs").Return(int64(1), nil)
				pub.On("Publish", events.Event{Kind: events.KindCreated, NoteID: 1}).Return()
			},
			expectedNote: &models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs"},
		},
		{
			name: "Error - store failure is propagated, nothing published",
			mockSetup: func(repo *MockRepository, pub *MockPublisher) {
				repo.On("CreateNote", ctx, "Groceries", "Milk, eggs").Return(models.NewNoteID, errors.New("disk full"))
			},
			expectedError: errors.New("disk full"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			pub := new(MockPublisher)
			tt.mockSetup(repo, pub)

			service := NewNoteService(repo, pub, nil)
			note, err := service.Create(ctx, "Groceries", "Milk, eggs")

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, note)
				pub.AssertNotCalled(t, "Publish", mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedNote, note)
			}

			repo.AssertExpectations(t)
			pub.AssertExpectations(t)
		})
	}
}

func TestNoteService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - records note count", func(t *testing.T) {
		repo := new(MockRepository)
		rec := new(MockRecorder)
		notes := []models.Note{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}

		repo.On("ListNotes", ctx).Return(notes, nil)
		rec.On("Observe", "list", "applied", mock.AnythingOfType("time.Duration")).Return()
		rec.On("SetNotes", 2).Return()

		service := NewNoteService(repo, nil, rec)
		result, err := service.List(ctx)

		require.NoError(t, err)
		assert.Equal(t, notes, result)
		repo.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("Error - database failure", func(t *testing.T) {
		repo := new(MockRepository)
		rec := new(MockRecorder)

		repo.On("ListNotes", ctx).Return(nil, errors.New("database error"))
		rec.On("Observe", "list", "error", mock.AnythingOfType("time.Duration")).Return()

		service := NewNoteService(repo, nil, rec)
		result, err := service.List(ctx)

		assert.Error(t, err)
		assert.Nil(t, result)
		rec.AssertNotCalled(t, "SetNotes", mock.Anything)
	})
}

func TestNoteService_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		id            int64
		mockSetup     func(*MockRepository)
		expectedNote  *models.Note
		expectedError bool
	}{
		{
			name: "Success - note exists",
			id:   4,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(4)).Return(&models.Note{ID: 4, Title: "t", Content: "c"}, nil)
			},
			expectedNote: &models.Note{ID: 4, Title: "t", Content: "c"},
		},
		{
			name: "Missing note - returns empty new note",
			id:   9,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(9)).Return(nil, nil)
			},
			expectedNote: &models.Note{ID: models.NewNoteID},
		},
		{
			name:         "New id - store is not consulted",
			id:           models.NewNoteID,
			mockSetup:    func(repo *MockRepository) {},
			expectedNote: &models.Note{ID: models.NewNoteID},
		},
		{
			name: "Error - database failure",
			id:   4,
			mockSetup: func(repo *MockRepository) {
				repo.On("GetNote", ctx, int64(4)).Return(nil, errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.mockSetup(repo)

			service := NewNoteService(repo, nil, nil)
			note, err := service.Get(ctx, tt.id)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, note)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedNote, note)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestNoteService_Update(t *testing.T) {
	ctx := context.Background()
	note := &models.Note{ID: 1, Title: "Groceries", Content: "Milk, eggs, bread"}

	t.Run("Applied - publishes updated event", func(t *testing.T) {
		repo := new(MockRepository)
		pub := new(MockPublisher)
		repo.On("UpdateNote", ctx, note).Return(true, nil)
		pub.On("Publish", events.Event{Kind: events.KindUpdated, NoteID: 1}).Return()

		service := NewNoteService(repo, pub, nil)
		outcome, err := service.Update(ctx, 1, "Groceries", "Milk, eggs, bread")

		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.NoError(t, outcome.Err())
		pub.AssertExpectations(t)
	})

	t.Run("Not found - no error, no event", func(t *testing.T) {
		repo := new(MockRepository)
		pub := new(MockPublisher)
		repo.On("UpdateNote", ctx, note).Return(false, nil)

		service := NewNoteService(repo, pub, nil)
		outcome, err := service.Update(ctx, 1, "Groceries", "Milk, eggs, bread")

		require.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, outcome)
		assert.ErrorIs(t, outcome.Err(), ErrNoteNotFound)
		pub.AssertNotCalled(t, "Publish", mock.Anything)
	})

	t.Run("Error - records error outcome", func(t *testing.T) {
		repo := new(MockRepository)
		rec := new(MockRecorder)
		repo.On("UpdateNote", ctx, note).Return(false, errors.New("database error"))
		rec.On("Observe", "update", "error", mock.AnythingOfType("time.Duration")).Return()

		service := NewNoteService(repo, nil, rec)
		_, err := service.Update(ctx, 1, "Groceries", "Milk, eggs, bread")

		assert.Error(t, err)
		rec.AssertExpectations(t)
	})
}

func TestNoteService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Applied - publishes deleted event", func(t *testing.T) {
		repo := new(MockRepository)
		pub := new(MockPublisher)
		rec := new(MockRecorder)
		repo.On("DeleteNote", ctx, int64(2)).Return(true, nil)
		pub.On("Publish", events.Event{Kind: events.KindDeleted, NoteID: 2}).Return()
		rec.On("Observe", "delete", "applied", mock.AnythingOfType("time.Duration")).Return()

		service := NewNoteService(repo, pub, rec)
		outcome, err := service.Delete(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		pub.AssertExpectations(t)
		rec.AssertExpectations(t)
	})

	t.Run("Not found - no error, no event", func(t *testing.T) {
		repo := new(MockRepository)
		pub := new(MockPublisher)
		repo.On("DeleteNote", ctx, int64(2)).Return(false, nil)

		service := NewNoteService(repo, pub, nil)
		outcome, err := service.Delete(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, outcome)
		pub.AssertNotCalled(t, "Publish", mock.Anything)
	})
}

func TestNoteService_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("New id creates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateNote", ctx, "Todo", "Call Bob").Return(int64(2), nil)

		service := NewNoteService(repo, nil, nil)
		note, outcome, err := service.Save(ctx, models.NewNoteID, "Todo", "Call Bob")

		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, &models.Note{ID: 2, Title: "Todo", Content: "Call Bob"}, note)
		repo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything)
	})

	t.Run("Existing id updates", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateNote", ctx, &models.Note{ID: 2, Title: "Todo", Content: "Call Bob today"}).Return(true, nil)

		service := NewNoteService(repo, nil, nil)
		note, outcome, err := service.Save(ctx, 2, "Todo", "Call Bob today")

		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, int64(2), note.ID)
		repo.AssertNotCalled(t, "CreateNote", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing id reports not found", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("UpdateNote", ctx, mock.AnythingOfType("*models.Note")).Return(false, nil)

		service := NewNoteService(repo, nil, nil)
		_, outcome, err := service.Save(ctx, 77, "x", "y")

		require.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, outcome)
	})

	t.Run("Blank note is skipped", func(t *testing.T) {
		for _, id := range []int64{models.NewNoteID, 3} {
			repo := new(MockRepository)
			pub := new(MockPublisher)
			rec := new(MockRecorder)
			rec.On("Observe", "save", "skipped", mock.AnythingOfType("time.Duration")).Return()

			service := NewNoteService(repo, pub, rec)
			note, outcome, err := service.Save(ctx, id, "", "")

			require.NoError(t, err)
			assert.Equal(t, OutcomeSkipped, outcome)
			assert.NoError(t, outcome.Err())
			assert.Nil(t, note)
			repo.AssertNotCalled(t, "CreateNote", mock.Anything, mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "UpdateNote", mock.Anything, mock.Anything)
			pub.AssertNotCalled(t, "Publish", mock.Anything)
			rec.AssertExpectations(t)
		}
	})

	t.Run("Title or content alone is saved", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateNote", ctx, "", "Call Bob").Return(int64(5), nil)

		service := NewNoteService(repo, nil, nil)
		note, outcome, err := service.Save(ctx, models.NewNoteID, "", "Call Bob")

		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, int64(5), note.ID)
	})

	t.Run("Create failure is never reported as applied", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("CreateNote", ctx, "Todo", "Call Bob").Return(models.NewNoteID, errors.New("disk full"))

		service := NewNoteService(repo, nil, nil)
		note, outcome, err := service.Save(ctx, models.NewNoteID, "Todo", "Call Bob")

		assert.EqualError(t, err, "disk full")
		assert.Nil(t, note)
		assert.NotEqual(t, OutcomeApplied, outcome)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "applied", OutcomeApplied.String())
	assert.Equal(t, "not_found", OutcomeNotFound.String())
	assert.Equal(t, "skipped", OutcomeSkipped.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
