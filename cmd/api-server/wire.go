//go:build wireinject
// +build wireinject

package main

import (
	"Kudos/config"
	"Kudos/dao"
	"Kudos/handler"
	"Kudos/pkg/database"
	"Kudos/pkg/rocketmq"
	"Kudos/pkg/server"
	"Kudos/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		config.ProvideRocketMQConfig,
		rocketmq.InitProducer,
		server.NewGinEngine,
		wire.Struct(new(handler.Reaction), "*"),
		wire.Struct(new(handler.Point), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
