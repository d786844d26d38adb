package ipc

import (
	"context"
	"errors"

	"github.com/haakonleg/watchface-sway/util"
)

var ErrNoOutput = errors.New("no focused output")

type Rect struct {
	X, Y          int
	Width, Height int
}

// FocusedOutput returns the geometry of the focused output.
func (s *SwayIpcClient) FocusedOutput(ctx context.Context) (Rect, error) {
	if err := s.Send(NewMsg(GetOutputs, []byte{})); err != nil {
		return Rect{}, err
	}

	msg, err := s.Await(ctx, GetOutputs)
	if err != nil {
		return Rect{}, err
	}

	return parseFocusedOutput(msg.Payload)
}

// WaitShutdown subscribes to the shutdown event and blocks until sway
// sends it, the connection drops or ctx is done.
func (s *SwayIpcClient) WaitShutdown(ctx context.Context) error {
	if err := s.SubscribeEvent(Shutdown); err != nil {
		return err
	}

	_, err := s.Await(ctx, EventShutdown)
	return err
}

func parseFocusedOutput(payload []byte) (Rect, error) {
	node, err := util.NewJsonNode(payload)
	if err != nil {
		return Rect{}, err
	}

	for _, output := range node.Array() {
		if !output.Get("focused").Bool() {
			continue
		}

		rect := output.Get("rect")
		return Rect{
			X:      rect.Get("x").Int(),
			Y:      rect.Get("y").Int(),
			Width:  rect.Get("width").Int(),
			Height: rect.Get("height").Int(),
		}, nil
	}

	return Rect{}, ErrNoOutput
}
