package ipc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

// frame encodes a raw reply the way sway writes it
func frame(rawType uint32, payload string) []byte {
	msg := NewMsg(MsgType(rawType), []byte(payload))
	return msg.bytes()
}

func readRequest(t *testing.T, conn net.Conn) *Msg {
	t.Helper()

	header := make([]byte, HEADER_LEN+8)
	if _, err := io.ReadFull(conn, header); err != nil {
		t.Errorf("read header: %v", err)
		return nil
	}
	payload := make([]byte, bytesToInt32(header[HEADER_LEN:HEADER_LEN+4]))
	if _, err := io.ReadFull(conn, payload); err != nil {
		t.Errorf("read payload: %v", err)
		return nil
	}
	return NewMsg(MsgType(bytesToInt32(header[HEADER_LEN+4:])), payload)
}

func TestMsgBytes(t *testing.T) {
	data := NewMsg(GetOutputs, []byte("{}")).bytes()

	if !bytes.HasPrefix(data, IPC_HEADER) {
		t.Fatalf("missing magic: %q", data)
	}
	if got := bytesToInt32(data[HEADER_LEN : HEADER_LEN+4]); got != 2 {
		t.Errorf("payload length = %d, want 2", got)
	}
	if got := MsgType(bytesToInt32(data[HEADER_LEN+4 : HEADER_LEN+8])); got != GetOutputs {
		t.Errorf("type = %s, want %s", got, GetOutputs)
	}
	if string(data[HEADER_LEN+8:]) != "{}" {
		t.Errorf("payload = %q", data[HEADER_LEN+8:])
	}
}

func TestFocusedOutput(t *testing.T) {
	server, clientConn := net.Pipe()
	defer server.Close()

	client := newClient(clientConn, logger.Nop())
	defer client.Close()

	go func() {
		req := readRequest(t, server)
		if req == nil {
			return
		}
		if req.MsgType != GetOutputs {
			t.Errorf("request type = %s", req.MsgType)
		}
		server.Write(frame(uint32(GetOutputs), `[
			{"name":"HDMI-A-1","focused":false,"rect":{"x":0,"y":0,"width":2560,"height":1440}},
			{"name":"eDP-1","focused":true,"rect":{"x":2560,"y":0,"width":1920,"height":1080}}
		]`))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	rect, err := client.FocusedOutput(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Rect{X: 2560, Y: 0, Width: 1920, Height: 1080}
	if rect != want {
		t.Errorf("rect = %+v, want %+v", rect, want)
	}
}

func TestParseFocusedOutputNone(t *testing.T) {
	_, err := parseFocusedOutput([]byte(`[{"name":"eDP-1","focused":false}]`))
	if !errors.Is(err, ErrNoOutput) {
		t.Errorf("expected ErrNoOutput, got %v", err)
	}
}

func TestWaitShutdown(t *testing.T) {
	server, clientConn := net.Pipe()
	defer server.Close()

	client := newClient(clientConn, logger.Nop())
	defer client.Close()

	go func() {
		req := readRequest(t, server)
		if req == nil {
			return
		}
		if req.MsgType != Subscribe || string(req.Payload) != `["shutdown"]` {
			t.Errorf("unexpected request %s %q", req.MsgType, req.Payload)
		}
		server.Write(frame(uint32(Subscribe), `{"success":true}`))
		// events have the high bit set
		server.Write(frame(0x80000006, `{"change":"exit"}`))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.WaitShutdown(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAwaitClosed(t *testing.T) {
	server, clientConn := net.Pipe()
	client := newClient(clientConn, logger.Nop())

	server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := client.Await(ctx, GetOutputs); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	client.Close()
}
