package planner_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/studyease/backend/core"
	"github.com/studyease/backend/core/planner"
	inmemdb "github.com/studyease/backend/storage/database/inmem"
)

func setup(t *testing.T, upsert bool) *planner.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	return planner.NewService(inmemdb.NewPlanRepository(db), core.UpdateOptions{Upsert: upsert})
}

func TestService_Create(t *testing.T) {
	svc := setup(t, true)
	ctx := context.Background()

	task, err := svc.Create(ctx, planner.NewTask{User: "a@test.io", Title: "Read chapter 3"})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, planner.StatusTodo, task.Status)

	done, err := svc.Create(ctx, planner.NewTask{User: "a@test.io", Title: "Essay", Status: "done"})
	require.NoError(t, err)
	assert.Equal(t, "done", done.Status)

	tasks, err := svc.Query(ctx, " a@test.io ")
	require.NoError(t, err)
	assert.Equal(t, []planner.Task{task, done}, tasks)
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		upsert   bool
		known    bool
		id       string
		status   string
		want     core.UpdateResult
		wantKind core.ErrorKind
	}{
		{name: "modified", upsert: true, known: true, status: "in-progress", want: core.UpdateResult{Matched: 1, Modified: 1}},
		{name: "same status", upsert: true, known: true, status: planner.StatusTodo, want: core.UpdateResult{Matched: 1}},
		{name: "unknown id (upsert)", upsert: true, status: "done", want: core.UpdateResult{Upserted: 1}},
		{name: "unknown id", status: "done", wantKind: core.KindNotFound},
		{name: "invalid id", upsert: true, id: "123", status: "done", wantKind: core.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setup(t, tt.upsert)
			id := tt.id
			if id == "" {
				id = primitive.NewObjectID().Hex()
			}
			if tt.known {
				task, err := svc.Create(ctx, planner.NewTask{User: "a@test.io", Title: "t"})
				require.NoError(t, err)
				id = task.ID
			}

			res, err := svc.UpdateStatus(ctx, planner.UpdateStatus{ID: id, Value: tt.status})
			if tt.wantKind != core.KindUnknown {
				assert.True(t, core.IsKind(err, tt.wantKind), "error = %v", err)
				return
			}
			require.NoError(t, err)
			if tt.want.Upserted > 0 {
				tt.want.UpsertedID = id
			}
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestService_Delete(t *testing.T) {
	svc := setup(t, true)
	ctx := context.Background()

	task, err := svc.Create(ctx, planner.NewTask{User: "a@test.io", Title: "t"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, task.ID))
	assert.True(t, core.IsKind(svc.Delete(ctx, task.ID), core.KindNotFound))

	tasks, err := svc.Query(ctx, "a@test.io")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
