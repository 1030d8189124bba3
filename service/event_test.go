package service

import (
	"Kudos/config"
	"Kudos/models"
	"Kudos/types"
	"context"
	"errors"
	"testing"

	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestBus_FireInOrder(t *testing.T) {
	var order []string
	bus := NewBus(EventListenerFunc(func(context.Context, string, *types.ReactionEvent) error {
		order = append(order, "first")
		return nil
	}))
	bus.Subscribe(EventListenerFunc(func(context.Context, string, *types.ReactionEvent) error {
		order = append(order, "second")
		return nil
	}))

	require.NoError(t, bus.Fire(context.Background(), EventAfterReactionSave, &types.ReactionEvent{ParentID: 1}))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	last := &recorder{}
	bus := NewBus(
		EventListenerFunc(func(context.Context, string, *types.ReactionEvent) error { return boom }),
		last,
	)

	err := bus.Fire(context.Background(), EventAfterReactionSave, &types.ReactionEvent{})
	assert.Equal(t, boom, err)
	assert.Empty(t, last.events)
}

type fakeSender struct {
	msgs []*primitive.Message
	err  error
}

func (f *fakeSender) SendSync(_ context.Context, mq ...*primitive.Message) (*primitive.SendResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.msgs = append(f.msgs, mq...)
	return &primitive.SendResult{Status: primitive.SendOK, MsgID: "msg-1"}, nil
}

func TestMQPublisher(t *testing.T) {
	sender := &fakeSender{}
	pub := &MQPublisher{Producer: sender, Topic: "FORUM_REACTION_EVENTS", Origin: "node-a"}
	event := &types.ReactionEvent{
		EventID: 99, ParentID: 12, ParentType: models.ParentDiscussion,
		ParentUserID: 3, InsertUserID: 7, ActionID: 1, Exists: true,
	}

	require.NoError(t, pub.Handle(context.Background(), EventAfterReactionSave, event))
	require.Len(t, sender.msgs, 1)
	msg := sender.msgs[0]
	assert.Equal(t, "FORUM_REACTION_EVENTS", msg.Topic)
	assert.Equal(t, EventAfterReactionSave, msg.GetTags())
	assert.Equal(t, "discussion12", msg.GetKeys())

	assert.Equal(t, "discussion", gjson.GetBytes(msg.Body, "parent_type").String())
	assert.Equal(t, int64(12), gjson.GetBytes(msg.Body, "parent_id").Int())
	assert.Equal(t, "99", gjson.GetBytes(msg.Body, "event_id").String())
	assert.True(t, gjson.GetBytes(msg.Body, "exists").Bool())
	assert.Equal(t, "node-a", gjson.GetBytes(msg.Body, "origin").String())
	// 不修改调用方的事件
	assert.Empty(t, event.Origin)
}

func TestMQPublisher_SendError(t *testing.T) {
	boom := errors.New("broker unavailable")
	pub := &MQPublisher{Producer: &fakeSender{err: boom}, Topic: "t"}
	err := pub.Handle(context.Background(), EventAfterReactionSave, &types.ReactionEvent{ParentType: models.ParentComment, ParentID: 1})
	assert.ErrorIs(t, err, boom)
}

func TestNewEventBus_WithoutProducer(t *testing.T) {
	conf := &config.Config{Reaction: &config.Reaction{EventTopic: "t"}}
	bus := NewEventBus(conf, nil)
	require.Len(t, bus.listeners, 1)
	assert.NoError(t, bus.Fire(context.Background(), EventAfterReactionSave, &types.ReactionEvent{ParentType: models.ParentDiscussion, ParentID: 1}))
}
