package service

import (
	"Kudos/config"
	"Kudos/pkg/log"
	"Kudos/types"
	"context"
	"encoding/json"
	"sync"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

const EventAfterReactionSave = "AfterReactionSave"

// EventBus 反应变更后的事件通知
type EventBus interface {
	Fire(ctx context.Context, name string, event *types.ReactionEvent) error
}

type EventListener interface {
	Handle(ctx context.Context, name string, event *types.ReactionEvent) error
}

type EventListenerFunc func(ctx context.Context, name string, event *types.ReactionEvent) error

func (f EventListenerFunc) Handle(ctx context.Context, name string, event *types.ReactionEvent) error {
	return f(ctx, name, event)
}

// Bus 进程内事件总线，按订阅顺序同步通知，遇到错误立即返回
type Bus struct {
	mu        sync.RWMutex
	listeners []EventListener
}

var _ EventBus = (*Bus)(nil)

func NewBus(listeners ...EventListener) *Bus {
	return &Bus{listeners: listeners}
}

func (b *Bus) Subscribe(l EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *Bus) Fire(ctx context.Context, name string, event *types.ReactionEvent) error {
	b.mu.RLock()
	listeners := b.listeners
	b.mu.RUnlock()

	for _, l := range listeners {
		if err := l.Handle(ctx, name, event); err != nil {
			return err
		}
	}
	return nil
}

// LogListener 记录每一次反应变更
func LogListener() EventListener {
	return EventListenerFunc(func(ctx context.Context, name string, event *types.ReactionEvent) error {
		log.L.Info("event fired",
			zap.String("event", name),
			zap.Int64("event_id", event.EventID),
			zap.String("parent", SummaryKey(event.ParentType, event.ParentID)),
			zap.Int64("insert_user_id", event.InsertUserID),
			zap.Bool("exists", event.Exists),
		)
		return nil
	})
}

// MessageSender rocketmq.Producer 的发送部分
type MessageSender interface {
	SendSync(ctx context.Context, mq ...*primitive.Message) (*primitive.SendResult, error)
}

// MQPublisher 把事件投递到 rocketmq，供其他进程和服务消费
type MQPublisher struct {
	Producer MessageSender
	Topic    string
	Origin   string
}

func (p *MQPublisher) Handle(ctx context.Context, name string, event *types.ReactionEvent) error {
	payload := *event
	payload.Origin = p.Origin
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := primitive.NewMessage(p.Topic, body)
	msg.WithTag(name)
	msg.WithKeys([]string{SummaryKey(event.ParentType, event.ParentID)})
	msg.WithShardingKey(SummaryKey(event.ParentType, event.ParentID))

	res, err := p.Producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send reaction event success", zap.String("msgId", res.MsgID), zap.Int64("event_id", event.EventID))
	return nil
}

// NewEventBus 未配置 rocketmq 时事件只在进程内分发
func NewEventBus(conf *config.Config, producer rocketmq.Producer) *Bus {
	bus := NewBus(LogListener())
	if producer != nil {
		bus.Subscribe(&MQPublisher{
			Producer: producer,
			Topic:    conf.Reaction.EventTopic,
			Origin:   NodeID(),
		})
	}
	return bus
}
