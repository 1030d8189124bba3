package service

import (
	"Kudos/dao"
	"Kudos/dao/cache"
	"Kudos/models"
	"Kudos/pkg/database/dbtest"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentService_AuthorOf(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	require.NoError(t, db.Create(&models.Discussion{DiscussionID: 12, InsertUserID: 3}).Error)
	require.NoError(t, db.Create(&models.Comment{CommentID: 5, DiscussionID: 12, InsertUserID: 4}).Error)
	require.NoError(t, db.Create(&models.Activity{ActivityID: 2, ActivityUserID: 11, InsertUserID: 5}).Error)

	svc := &ParentService{
		DiscussionDAO: dao.NewDiscussion(db),
		CommentDAO:    dao.NewComment(db),
		ActivityDAO:   dao.NewActivity(db),
	}

	cases := []struct {
		parentType models.ParentType
		parentID   int64
		author     int64
		err        error
	}{
		{models.ParentDiscussion, 12, 3, nil},
		{models.ParentComment, 5, 4, nil},
		{models.ParentActivity, 2, 11, nil},
		{models.ParentDiscussion, 404, 0, ErrParentNotFound},
		{"user", 1, 0, ErrParentNotFound},
	}
	for _, tc := range cases {
		author, err := svc.AuthorOf(ctx, tc.parentType, tc.parentID)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.author, author, tc.parentType)
	}
}

func TestPointsLedgerIntegration(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	require.NoError(t, db.Create(&models.Discussion{DiscussionID: 12, InsertUserID: 3}).Error)

	actions := dao.NewActionDAO(db)
	all, err := actions.GetAll(ctx)
	require.NoError(t, err)
	promote := all[0]

	svc := &ReactionService{
		Store:   dao.NewReactionDAO(db),
		Actions: actions,
		Scorers: NewItemScorers(dao.NewDiscussion(db), dao.NewComment(db)),
		Points:  &PointService{PointDAO: dao.NewPoint(db)},
		Events:  NewBus(),
		Cache:   cache.NewMemorySummaryCache(),
	}

	_, err = svc.Set(ctx, 12, models.ParentDiscussion, 3, 7, promote.ActionID)
	require.NoError(t, err)

	var d models.Discussion
	require.NoError(t, db.First(&d, 12).Error)
	assert.Equal(t, promote.AwardValue, d.Score)

	acc, err := dao.NewPoint(db).GetAccount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(promote.AwardValue), acc.Balance)

	summary, err := svc.GetSummary(ctx, 12, models.ParentDiscussion)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, summary[0].UserIDs)

	_, err = svc.Set(ctx, 12, models.ParentDiscussion, 3, 7, promote.ActionID)
	require.NoError(t, err)
	require.NoError(t, db.First(&d, 12).Error)
	assert.Equal(t, 0, d.Score)
	acc, err = dao.NewPoint(db).GetAccount(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)
}
