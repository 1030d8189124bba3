package service

import (
	"Kudos/dao"
	"Kudos/models"
	"Kudos/pkg/database/dbtest"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointService_GivePoints(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	svc := &PointService{PointDAO: dao.NewPoint(db)}

	src := WithPointSource(ctx, PointSource{
		SourceID: "reaction:discussion12:7",
		Meta:     map[string]interface{}{"action_id": 1},
	})
	require.NoError(t, svc.GivePoints(src, 3, 5, "Reaction"))
	require.NoError(t, svc.GivePoints(ctx, 3, -3, "Reaction"))
	// 0 不写流水
	require.NoError(t, svc.GivePoints(ctx, 3, 0, "Reaction"))

	acc, err := svc.GetAccountDashboard(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, acc.Balance)
	assert.Equal(t, 5, acc.TotalEarned)
	assert.Equal(t, 3, acc.TotalUsed)

	var logs []models.PointsLog
	require.NoError(t, db.Order("id ASC").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(5), logs[0].Balance)
	assert.Equal(t, int8(models.TypeReactionAward), logs[0].ChangeType)
	assert.Equal(t, "reaction:discussion12:7", logs[0].SourceID)
	assert.Equal(t, json.Number("1"), logs[0].Meta["action_id"])
	assert.Equal(t, int64(2), logs[1].Balance)
	assert.Equal(t, int8(models.TypeReactionRevoke), logs[1].ChangeType)
	assert.Equal(t, "Reaction", logs[1].Remark)
	assert.Equal(t, int8(models.StatusPosted), logs[1].Status)
}

func TestPointService_DashboardNewUser(t *testing.T) {
	svc := &PointService{PointDAO: dao.NewPoint(dbtest.New(t))}
	acc, err := svc.GetAccountDashboard(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, acc.Balance)
}

func TestPointService_ListPointRecords(t *testing.T) {
	ctx := context.Background()
	svc := &PointService{PointDAO: dao.NewPoint(dbtest.New(t))}
	for _, delta := range []int{5, -3, 2} {
		require.NoError(t, svc.GivePoints(ctx, 3, delta, "Reaction"))
	}

	page, err := svc.ListPointRecords(ctx, 3, "all", 0, 2)
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	assert.True(t, page.HasMore)
	assert.Equal(t, 2, page.Records[0].Amount)
	assert.Equal(t, "EXPENSE", page.Records[1].OrderType)

	page, err = svc.ListPointRecords(ctx, 3, "all", page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.False(t, page.HasMore)
	assert.Equal(t, "INCOME", page.Records[0].OrderType)
}
