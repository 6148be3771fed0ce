package store_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/codec"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/kvs/memory"
	"github.com/nexus-lab/frontdesk/pkg/store"
)

func newTestStore() (*store.Store, *memory.Memory) {
	kv := memory.New()
	return store.New(kv, codec.New()), kv
}

func TestReadAbsentCollection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	customers, err := store.Read[model.Customer](ctx, s, types.CollectionCustomers)
	gt.NoError(t, err).Required()
	gt.Array(t, customers).Length(0)
}

func TestAppendPrepends(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "t1", Title: "first"})).Required()
	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "t2", Title: "second"})).Required()

	tasks, err := store.Read[model.Task](ctx, s, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(2)
	gt.Value(t, tasks[0].ID).Equal(types.RecordID("t2"))
	gt.Value(t, tasks[1].ID).Equal(types.RecordID("t1"))
}

func TestBulkAppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "old"})).Required()
	gt.NoError(t, store.BulkAppend(ctx, s, types.CollectionTasks, []model.Task{
		{ID: "a"}, {ID: "b"},
	})).Required()

	tasks, err := store.Read[model.Task](ctx, s, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(3)
	gt.Value(t, tasks[0].ID).Equal(types.RecordID("a"))
	gt.Value(t, tasks[1].ID).Equal(types.RecordID("b"))
	gt.Value(t, tasks[2].ID).Equal(types.RecordID("old"))
}

func TestUpdateWhere(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "t1", Title: "before"})).Required()

	updated, err := store.UpdateWhere(ctx, s, types.CollectionTasks,
		func(task *model.Task) bool { return task.ID == "t1" },
		model.Task{ID: "t1", Title: "after", Done: true},
	)
	gt.NoError(t, err).Required()
	gt.Value(t, updated).Equal(true)

	tasks, err := store.Read[model.Task](ctx, s, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(1)
	gt.Value(t, tasks[0].Title).Equal("after")
	gt.Value(t, tasks[0].Done).Equal(true)
}

func TestUpdateWhereNoMatch(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "t1"})).Required()

	updated, err := store.UpdateWhere(ctx, s, types.CollectionTasks,
		func(task *model.Task) bool { return task.ID == "missing" },
		model.Task{ID: "missing"},
	)
	gt.NoError(t, err)
	gt.Value(t, updated).Equal(false)
}

func TestDeleteWhere(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore()

	gt.NoError(t, store.BulkAppend(ctx, s, types.CollectionTasks, []model.Task{
		{ID: "t1"}, {ID: "t2"}, {ID: "t3"},
	})).Required()

	deleted, err := store.DeleteWhere(ctx, s, types.CollectionTasks,
		func(task *model.Task) bool { return task.ID == "t2" },
	)
	gt.NoError(t, err).Required()
	gt.Value(t, deleted).Equal(true)

	tasks, err := store.Read[model.Task](ctx, s, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(2)
	gt.Value(t, tasks[0].ID).Equal(types.RecordID("t1"))
	gt.Value(t, tasks[1].ID).Equal(types.RecordID("t3"))
}

func TestCorruptBlobReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	s, kv := newTestStore()

	gt.NoError(t, store.Append(ctx, s, types.CollectionTasks, model.Task{ID: "t1"})).Required()
	gt.NoError(t, kv.Set(ctx, types.CollectionTasks.Key(), []byte("not a valid blob"))).Required()

	tasks, err := store.Read[model.Task](ctx, s, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(0)
}

func TestForeignSecretReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.New()
	writer := store.New(kv, codec.New(codec.WithSecret("one secret")))
	reader := store.New(kv, codec.New(codec.WithSecret("another secret")))

	gt.NoError(t, store.Append(ctx, writer, types.CollectionTasks, model.Task{ID: "t1"})).Required()

	tasks, err := store.Read[model.Task](ctx, reader, types.CollectionTasks)
	gt.NoError(t, err).Required()
	gt.Array(t, tasks).Length(0)
}
