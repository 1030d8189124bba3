package service

import (
	"Kudos/dao"
	"Kudos/models"
	"Kudos/pkg/log"
	"Kudos/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type pointSourceKey struct{}

// PointSource 积分流水关联的业务来源
type PointSource struct {
	SourceID string
	Meta     map[string]interface{}
}

func WithPointSource(ctx context.Context, src PointSource) context.Context {
	return context.WithValue(ctx, pointSourceKey{}, src)
}

func pointSourceFrom(ctx context.Context) PointSource {
	src, _ := ctx.Value(pointSourceKey{}).(PointSource)
	return src
}

type PointService struct {
	PointDAO *dao.Point
}

var (
	_ IPointService = (*PointService)(nil)
	_ PointsLedger  = (*PointService)(nil)
)

type IPointService interface {
	GivePoints(ctx context.Context, userID int64, delta int, reason string) error

	// 查询
	GetAccountDashboard(ctx context.Context, userID int64) (*types.PointsAccount, error)
	ListPointRecords(ctx context.Context, userID int64, action string, cursor int64, limit int) (*types.ListPointsRecord, error)
}

// GivePoints 变动余额并记录流水，delta 为 0 时不做任何写入
func (p *PointService) GivePoints(ctx context.Context, userID int64, delta int, reason string) error {
	if delta == 0 {
		return nil
	}
	changeType := models.TypeReactionAward
	if delta < 0 {
		changeType = models.TypeReactionRevoke
	}
	src := pointSourceFrom(ctx)

	return p.PointDAO.Transaction(ctx, func(tx *dao.Point) error {
		if err := tx.AddBalance(ctx, userID, int64(delta)); err != nil {
			return err
		}
		acc, err := tx.GetAccount(ctx, userID)
		if err != nil {
			return err
		}

		logRecord := &models.PointsLog{
			UserID:     userID,
			Amount:     int64(delta),
			Balance:    acc.Balance,
			ChangeType: int8(changeType),
			Status:     models.StatusPosted,
			SourceID:   src.SourceID,
			Remark:     reason,
		}
		if src.Meta != nil {
			logRecord.Meta = datatypes.JSONMap(src.Meta)
		}
		if err := tx.CreatePointLog(ctx, logRecord); err != nil {
			return err
		}
		log.L.Debug("points given", zap.Int64("user_id", userID), zap.Int("delta", delta), zap.Int64("balance", acc.Balance))
		return nil
	})
}

func (p *PointService) GetAccountDashboard(ctx context.Context, userID int64) (*types.PointsAccount, error) {
	account, err := p.PointDAO.GetAccount(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 如果没记录，说明是新用户，直接返回初始状态
			return &types.PointsAccount{}, nil
		}
		return nil, err
	}
	return &types.PointsAccount{
		Balance:     int(account.Balance),
		TotalEarned: int(account.TotalEarned),
		TotalUsed:   int(account.TotalUsed),
	}, nil
}

func (p *PointService) ListPointRecords(ctx context.Context, userID int64, action string, cursor int64, limit int) (*types.ListPointsRecord, error) {
	logs, err := p.PointDAO.ListRecords(ctx, userID, action, cursor, limit+1)
	if err != nil {
		return nil, err
	}

	resp := &types.ListPointsRecord{
		Records: make([]types.PointRecord, 0),
		HasMore: false,
	}

	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
		resp.NextCursor = int64(logs[len(logs)-1].ID)
	}

	for _, l := range logs {
		orderType := "INCOME"
		if l.Amount < 0 {
			orderType = "EXPENSE"
		}
		resp.Records = append(resp.Records, types.PointRecord{
			ID:          int(l.ID),
			Amount:      int(l.Amount),
			Description: l.Remark,
			OrderType:   orderType,
			SourceID:    l.SourceID,
			Status:      int(l.Status),
			CreatedAt:   l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
