package room

import (
	"tricktaker-server/pkg/playable"
	"tricktaker-server/pkg/playable/tricks"
)

func newGameResponse(state *tricks.GameState) *playable.Response {
	return &playable.Response{
		Key:   "game",
		Value: string(state.Phase),
		Data:  state,
	}
}

func newErrorResponse(ctx string, err error) *playable.Response {
	return &playable.Response{
		Key:     "error",
		Value:   err.Error(),
		Context: ctx,
	}
}
