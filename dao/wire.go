//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewReactionDAO,
	NewActionDAO,
	NewDiscussion,
	NewComment,
	NewActivity,
	NewPoint,
)
