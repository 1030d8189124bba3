package handler

import (
	"Kudos/config"
	"Kudos/middleware"
	"Kudos/models"
	"Kudos/pkg/context"
	"Kudos/pkg/response"
	"Kudos/service"
	"Kudos/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sourcegraph/conc/iter"
	"gorm.io/gorm"
)

// 批量汇总时并发查询的上限
const batchConcurrency = 8

type Reaction struct {
	Config          *config.Config
	ReactionService service.IReactionService
	ParentService   service.IParentService
}

func (h *Reaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	v1 := r.Group("/v1")
	v1.GET("/actions", context.Wrap(h.Actions))
	v1.GET("/users/:user_id/reactions/:action_id/count", context.Wrap(h.UserCount))

	reactions := v1.Group("/reactions")
	reactions.POST("", authorize, context.Wrap(h.Set))
	reactions.POST("/summaries", context.Wrap(h.BatchSummary))
	reactions.GET("/:type/:id", context.Wrap(h.Summary))
	reactions.GET("/:type/:id/mine", authorize, context.Wrap(h.Mine))
}

func (h *Reaction) Actions(c *gin.Context) error {
	actions, err := h.ReactionService.ListActions(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, actions)
	return nil
}

func parseParent(c *gin.Context) (models.ParentType, int64, error) {
	parentType := models.ParentType(c.Param("type"))
	parentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || parentID <= 0 || !parentType.Valid() {
		return "", 0, response.NewError(http.StatusNotFound, "内容不存在")
	}
	return parentType, parentID, nil
}

// Summary 内容上的反应汇总
func (h *Reaction) Summary(c *gin.Context) error {
	parentType := models.ParentType(c.Param("type"))
	parentID, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	summary, err := h.ReactionService.GetSummary(c.Request.Context(), parentID, parentType)
	if err != nil {
		return err
	}
	if summary == nil {
		return response.NewError(http.StatusNotFound, "内容不存在")
	}
	response.Success(c, summary)
	return nil
}

// BatchSummary 一次返回多条内容的汇总，顺序与请求一致
func (h *Reaction) BatchSummary(c *gin.Context) error {
	var req types.BatchSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request.Context()
	mapper := iter.Mapper[types.SummaryItem, *types.ItemSummary]{MaxGoroutines: batchConcurrency}
	items, err := mapper.MapErr(req.Items, func(item *types.SummaryItem) (*types.ItemSummary, error) {
		summary, err := h.ReactionService.GetSummary(ctx, item.ParentID, item.ParentType)
		if err != nil {
			return nil, err
		}
		return &types.ItemSummary{
			ParentType: item.ParentType,
			ParentID:   item.ParentID,
			Reactions:  summary,
		}, nil
	})
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// Mine 当前用户在内容上的反应，没有时 data 为空
func (h *Reaction) Mine(c *gin.Context) error {
	parentType, parentID, err := parseParent(c)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	reaction, err := h.ReactionService.GetByUser(c.Request.Context(), parentID, parentType, userID)
	if err != nil {
		return err
	}
	response.Success(c, reaction)
	return nil
}

// Set 做出、切换或取消反应
func (h *Reaction) Set(c *gin.Context) error {
	var req types.SetReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	ctx := c.Request.Context()
	authorID, err := h.ParentService.AuthorOf(ctx, req.ParentType, req.ParentID)
	if errors.Is(err, service.ErrParentNotFound) {
		return response.NewError(http.StatusNotFound, "内容不存在")
	}
	if err != nil {
		return err
	}
	if authorID == userID {
		return response.NewError(http.StatusForbidden, service.ErrSelfReaction.Error())
	}

	result, err := h.ReactionService.Set(ctx, req.ParentID, req.ParentType, authorID, userID, req.ActionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NewError(http.StatusNotFound, "反应类型不存在")
	}
	if err != nil {
		return err
	}

	response.Success(c, types.SetReactionResponse{
		Op:       result.Op,
		Exists:   result.Exists,
		ActionID: req.ActionID,
	})
	return nil
}

// UserCount 用户的内容收到某种反应的次数
func (h *Reaction) UserCount(c *gin.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		return response.NewError(http.StatusBadRequest, "user_id参数错误")
	}
	actionID, err := strconv.ParseInt(c.Param("action_id"), 10, 64)
	if err != nil || actionID <= 0 {
		return response.NewError(http.StatusBadRequest, "action_id参数错误")
	}

	count, err := h.ReactionService.GetUserReactionCount(c.Request.Context(), userID, actionID)
	if err != nil {
		return err
	}
	response.Success(c, types.ReactionCountResponse{UserID: userID, ActionID: actionID, Count: count})
	return nil
}
