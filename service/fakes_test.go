package service

import (
	"Kudos/models"
	"Kudos/types"
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
)

type fakeActions struct {
	items []*models.Action
	err   error
}

func (f *fakeActions) GetAll(context.Context) ([]*models.Action, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f *fakeActions) GetByID(_ context.Context, actionID int64) (*models.Action, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.items {
		if a.ActionID == actionID {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type cellKey struct {
	parentID   int64
	parentType models.ParentType
	userID     int64
}

// fakeStore 每个 (内容, 用户) 至多一行
type fakeStore struct {
	rows   map[cellKey]*models.Reaction
	nextID uint64
	err    error
	calls  int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: map[cellKey]*models.Reaction{}}
}

func (f *fakeStore) GetByUser(_ context.Context, parentID int64, parentType models.ParentType, userID int64) (*models.Reaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	row, ok := f.rows[cellKey{parentID, parentType, userID}]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (f *fakeStore) ListByParent(_ context.Context, parentID int64, parentType models.ParentType) ([]*models.Reaction, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var items []*models.Reaction
	for k, row := range f.rows {
		if k.parentID == parentID && k.parentType == parentType {
			items = append(items, row)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeStore) CountByParentAuthor(_ context.Context, authorID int64, actionID int64) (int64, error) {
	var n int64
	for _, row := range f.rows {
		if row.ParentAuthorID == authorID && row.ActionID == actionID {
			n++
		}
	}
	return n, f.err
}

func (f *fakeStore) Insert(_ context.Context, item *models.Reaction) error {
	if f.err != nil {
		return f.err
	}
	k := cellKey{item.ParentID, item.ParentType, item.InsertUserID}
	if _, ok := f.rows[k]; ok {
		return errors.New("duplicate reaction")
	}
	f.nextID++
	item.ID = f.nextID
	cp := *item
	f.rows[k] = &cp
	return nil
}

func (f *fakeStore) UpdateAction(_ context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64, at time.Time) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	row, ok := f.rows[cellKey{parentID, parentType, userID}]
	if !ok {
		return 0, nil
	}
	row.ActionID = actionID
	row.DateInserted = at
	return 1, nil
}

func (f *fakeStore) Delete(_ context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	k := cellKey{parentID, parentType, userID}
	row, ok := f.rows[k]
	if !ok || row.ActionID != actionID {
		return 0, nil
	}
	delete(f.rows, k)
	return 1, nil
}

type scoreCall struct {
	itemID int64
	userID int64
	score  int
}

type fakeScorer struct {
	calls []scoreCall
	err   error
}

func (f *fakeScorer) SetUserScore(_ context.Context, itemID int64, userID int64, score int) error {
	f.calls = append(f.calls, scoreCall{itemID, userID, score})
	return f.err
}

type pointCall struct {
	userID int64
	delta  int
	reason string
	source PointSource
}

type fakeLedger struct {
	calls []pointCall
	err   error
}

func (f *fakeLedger) GivePoints(ctx context.Context, userID int64, delta int, reason string) error {
	f.calls = append(f.calls, pointCall{userID, delta, reason, pointSourceFrom(ctx)})
	return f.err
}

func (f *fakeLedger) total(userID int64) int {
	var sum int
	for _, c := range f.calls {
		if c.userID == userID {
			sum += c.delta
		}
	}
	return sum
}

type recordedEvent struct {
	name  string
	event types.ReactionEvent
}

type recorder struct {
	events []recordedEvent
	err    error
}

func (r *recorder) Handle(_ context.Context, name string, event *types.ReactionEvent) error {
	r.events = append(r.events, recordedEvent{name, *event})
	return r.err
}

// failingCache 所有操作都返回错误
type failingCache struct {
	err error
}

func (f failingCache) Get(context.Context, string) ([]*types.ReactionSummary, bool, error) {
	return nil, false, f.err
}

func (f failingCache) Set(context.Context, string, []*types.ReactionSummary) error {
	return f.err
}

func (f failingCache) Invalidate(context.Context, string) error {
	return f.err
}
