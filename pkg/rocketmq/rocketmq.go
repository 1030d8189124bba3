package rocketmq

import (
	"Kudos/config"
	"Kudos/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

// MessageHandler 处理单条消息体
type MessageHandler func(ctx context.Context, body []byte) error

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 未配置 nameserver 时返回 nil，事件只在进程内分发
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, skip producer")
		return nil
	}
	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		log.L.Fatal("init producer error", zap.Error(err))
	}
	if err = p.Start(); err != nil {
		log.L.Fatal("start producer error", zap.Error(err))
	}
	log.L.Info("init producer success")

	return p
}

// InitBroadcastConsumer 广播模式：每个进程都会收到全部消息
func InitBroadcastConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	return rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
		consumer.WithConsumerModel(consumer.BroadCasting),
		consumer.WithConsumeFromWhere(consumer.ConsumeFromLastOffset),
	)
}

// Subscribe 订阅 topic，handler 返回错误时稍后重试
func Subscribe(c rocketmq.PushConsumer, topic string, handler MessageHandler) error {
	return c.Subscribe(topic, consumer.MessageSelector{}, func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
		for _, msg := range msgs {
			if err := handler(ctx, msg.Body); err != nil {
				log.L.Warn("consume message failed", zap.String("msgId", msg.MsgId), zap.Error(err))
				return consumer.ConsumeRetryLater, nil
			}
		}
		return consumer.ConsumeSuccess, nil
	})
}
