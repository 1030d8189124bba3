package server

import (
	"Kudos/handler"
)

type Handlers struct {
	Reaction *handler.Reaction
	Points   *handler.Point
}
