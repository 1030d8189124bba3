package service

import (
	"Kudos/config"
	"Kudos/models"
	"Kudos/pkg/log"
	"Kudos/pkg/snowflake"
	"Kudos/types"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultPointsReason 反应产生的积分流水备注
const DefaultPointsReason = "Reaction"

// ActionLookup action 只读数据源
type ActionLookup interface {
	GetAll(ctx context.Context) ([]*models.Action, error)
	GetByID(ctx context.Context, actionID int64) (*models.Action, error)
}

type ReactionStore interface {
	GetByUser(ctx context.Context, parentID int64, parentType models.ParentType, userID int64) (*models.Reaction, error)
	ListByParent(ctx context.Context, parentID int64, parentType models.ParentType) ([]*models.Reaction, error)
	CountByParentAuthor(ctx context.Context, authorID int64, actionID int64) (int64, error)
	Insert(ctx context.Context, item *models.Reaction) error
	UpdateAction(ctx context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64, at time.Time) (int64, error)
	Delete(ctx context.Context, parentID int64, parentType models.ParentType, userID int64, actionID int64) (int64, error)
}

// SummaryCache 汇总缓存，key 为 SummaryKey 的结果
type SummaryCache interface {
	Get(ctx context.Context, key string) ([]*types.ReactionSummary, bool, error)
	Set(ctx context.Context, key string, summary []*types.ReactionSummary) error
	Invalidate(ctx context.Context, key string) error
}

// PointsLedger 给内容作者加减积分
type PointsLedger interface {
	GivePoints(ctx context.Context, userID int64, delta int, reason string) error
}

var _ IReactionService = (*ReactionService)(nil)

type IReactionService interface {
	GetSummary(ctx context.Context, parentID int64, parentType models.ParentType) ([]*types.ReactionSummary, error)
	GetByUser(ctx context.Context, parentID int64, parentType models.ParentType, userID int64) (*models.Reaction, error)
	GetUserReactionCount(ctx context.Context, userID int64, actionID int64) (int64, error)
	Set(ctx context.Context, parentID int64, parentType models.ParentType, authorID int64, userID int64, actionID int64) (*types.SetResult, error)
	ListActions(ctx context.Context) ([]*models.Action, error)
}

type ReactionService struct {
	Config  *config.Config
	Store   ReactionStore
	Actions ActionLookup
	Scorers *ItemScorers
	Points  PointsLedger
	Events  EventBus
	Cache   SummaryCache
	Clock   clockwork.Clock
}

// SummaryKey 缓存 key，如 discussion12
func SummaryKey(parentType models.ParentType, parentID int64) string {
	return string(parentType) + strconv.FormatInt(parentID, 10)
}

func (s *ReactionService) ListActions(ctx context.Context) ([]*models.Action, error) {
	return s.Actions.GetAll(ctx)
}

// GetSummary 内容上每种 action 的用户列表，类型或 id 不合法时返回 nil
func (s *ReactionService) GetSummary(ctx context.Context, parentID int64, parentType models.ParentType) ([]*types.ReactionSummary, error) {
	if !parentType.Valid() || parentID <= 0 {
		return nil, nil
	}

	key := SummaryKey(parentType, parentID)
	cached, ok, err := s.Cache.Get(ctx, key)
	if err != nil {
		// 缓存不可用时直接查库
		log.L.Warn("get reaction summary cache failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		summaryCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	summaryCacheTotal.WithLabelValues("miss").Inc()

	actions, err := s.Actions.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.Store.ListByParent(ctx, parentID, parentType)
	if err != nil {
		return nil, err
	}

	summary := make([]*types.ReactionSummary, 0, len(actions))
	byAction := make(map[int64]*types.ReactionSummary, len(actions))
	for _, action := range actions {
		item := &types.ReactionSummary{
			ActionID:    action.ActionID,
			Name:        action.Name,
			Description: action.Description,
			Tooltip:     action.Tooltip,
			CssClass:    action.CssClass,
			AwardValue:  action.AwardValue,
			Permission:  action.Permission,
			UserIDs:     make([]int64, 0),
			Dates:       make([]time.Time, 0),
		}
		summary = append(summary, item)
		byAction[action.ActionID] = item
	}
	for _, row := range rows {
		item, ok := byAction[row.ActionID]
		if !ok {
			continue
		}
		item.UserIDs = append(item.UserIDs, row.InsertUserID)
		item.Dates = append(item.Dates, row.DateInserted)
	}

	if err := s.Cache.Set(ctx, key, summary); err != nil {
		log.L.Warn("set reaction summary cache failed", zap.String("key", key), zap.Error(err))
	}
	return summary, nil
}

func (s *ReactionService) GetByUser(ctx context.Context, parentID int64, parentType models.ParentType, userID int64) (*models.Reaction, error) {
	return s.Store.GetByUser(ctx, parentID, parentType, userID)
}

// GetUserReactionCount 用户的内容收到某种反应的次数
func (s *ReactionService) GetUserReactionCount(ctx context.Context, userID int64, actionID int64) (int64, error) {
	return s.Store.CountByParentAuthor(ctx, userID, actionID)
}

// Set 切换用户在内容上的反应
// 没有反应时新增，相同 action 时取消，不同 action 时替换
func (s *ReactionService) Set(ctx context.Context, parentID int64, parentType models.ParentType, authorID int64, userID int64, actionID int64) (*types.SetResult, error) {
	if err := s.Cache.Invalidate(ctx, SummaryKey(parentType, parentID)); err != nil {
		return nil, err
	}

	action, err := s.Actions.GetByID(ctx, actionID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Store.GetByUser(ctx, parentID, parentType, userID)
	if err != nil {
		return nil, err
	}

	var oldAction *models.Action
	if existing != nil {
		oldAction, err = s.Actions.GetByID(ctx, existing.ActionID)
		if err != nil {
			return nil, err
		}
	}

	now := s.now()
	result := &types.SetResult{}
	points := action.AwardValue
	switch {
	case existing == nil:
		row := &models.Reaction{
			ActionID:       actionID,
			ParentID:       parentID,
			ParentType:     parentType,
			ParentAuthorID: authorID,
			InsertUserID:   userID,
			DateInserted:   now,
		}
		if err := s.Store.Insert(ctx, row); err != nil {
			return nil, err
		}
		result.Op, result.RowsAffected, result.Reaction = types.OpInserted, 1, row
		result.Exists = true
		result.Score = action.AwardValue

	case existing.ActionID == actionID:
		rows, err := s.Store.Delete(ctx, parentID, parentType, userID, actionID)
		if err != nil {
			return nil, err
		}
		result.Op, result.RowsAffected, result.Reaction = types.OpDeleted, rows, existing
		result.Exists = false
		result.Score = 0
		points = -1 * oldAction.AwardValue

	default:
		rows, err := s.Store.UpdateAction(ctx, parentID, parentType, userID, actionID, now)
		if err != nil {
			return nil, err
		}
		updated := *existing
		updated.ActionID = actionID
		updated.DateInserted = now
		result.Op, result.RowsAffected, result.Reaction = types.OpUpdated, rows, &updated
		result.Exists = true
		result.Score = action.AwardValue
		points = -1 * (oldAction.AwardValue - points)
	}
	result.Points = points
	reactionSetTotal.WithLabelValues(string(parentType), string(result.Op)).Inc()

	if _, err := s.setItemScore(ctx, parentID, parentType, userID, result.Score); err != nil {
		return nil, err
	}

	pctx := WithPointSource(ctx, PointSource{
		SourceID: fmt.Sprintf("reaction:%s:%d", SummaryKey(parentType, parentID), userID),
		Meta: map[string]interface{}{
			"parent_id":      parentID,
			"parent_type":    string(parentType),
			"insert_user_id": userID,
			"action_id":      actionID,
			"op":             string(result.Op),
		},
	})
	if err := s.Points.GivePoints(pctx, authorID, points, s.pointsReason()); err != nil {
		return nil, err
	}

	event := &types.ReactionEvent{
		EventID:      snowflake.GenID(),
		ParentID:     parentID,
		ParentType:   parentType,
		ParentUserID: authorID,
		InsertUserID: userID,
		ActionID:     actionID,
		Exists:       result.Exists,
	}
	if err := s.Events.Fire(ctx, EventAfterReactionSave, event); err != nil {
		return nil, err
	}

	log.L.Info("reaction saved",
		zap.String("parent", SummaryKey(parentType, parentID)),
		zap.Int64("user_id", userID),
		zap.Int64("action_id", actionID),
		zap.String("op", string(result.Op)),
		zap.Int("points", points),
	)
	return result, nil
}

// setItemScore 按内容类型写入用户打分，没有对应的打分器时返回 false
func (s *ReactionService) setItemScore(ctx context.Context, parentID int64, parentType models.ParentType, userID int64, score int) (bool, error) {
	scorer := s.Scorers.For(parentType)
	if scorer == nil {
		return false, nil
	}
	if err := scorer.SetUserScore(ctx, parentID, userID, score); err != nil {
		return true, err
	}
	return true, nil
}

func (s *ReactionService) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func (s *ReactionService) pointsReason() string {
	if s.Config == nil || s.Config.Reaction == nil || s.Config.Reaction.PointsReason == "" {
		return DefaultPointsReason
	}
	return s.Config.Reaction.PointsReason
}
