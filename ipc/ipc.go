package ipc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-json"

	"github.com/haakonleg/watchface-sway/internal/logger"
)

var ErrClosed = errors.New("sway ipc connection closed")

type SwayIpcClient struct {
	conn     net.Conn
	log      *logger.Logger
	MsgQueue chan *Msg
}

func Connect(log *logger.Logger) (*SwayIpcClient, error) {
	addr, err := getSwaySockAddr()
	if err != nil {
		return nil, err
	}

	conn, err := net.DialUnix("unix", nil, addr)
	if err != nil {
		return nil, err
	}

	return newClient(conn, log), nil
}

func newClient(conn net.Conn, log *logger.Logger) *SwayIpcClient {
	client := &SwayIpcClient{
		conn:     conn,
		log:      log,
		MsgQueue: make(chan *Msg, 10),
	}

	go client.readMsg()
	return client
}

func (s *SwayIpcClient) Close() {
	s.conn.Close()
}

// Send sends a sway ipc message over the socket
func (s *SwayIpcClient) Send(msg *Msg) error {
	return s.writeMsg(msg)
}

// SubscribeEvent subscribes to event types in the sway ipc protocol.
// Events arrive on MsgQueue.
func (s *SwayIpcClient) SubscribeEvent(events ...Event) error {
	payload, err := json.Marshal(events)
	if err != nil {
		return err
	}

	return s.writeMsg(NewMsg(Subscribe, payload))
}

// Await returns the next message of type msgType, discarding others.
func (s *SwayIpcClient) Await(ctx context.Context, msgType MsgType) (*Msg, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()

		case msg, ok := <-s.MsgQueue:
			if !ok {
				return nil, ErrClosed
			}
			if msg.MsgType == msgType {
				return msg, nil
			}
		}
	}
}

func (s *SwayIpcClient) writeMsg(msg *Msg) error {
	data := msg.bytes()

	writeLen := 0
	for writeLen != len(data) {
		n, err := s.conn.Write(data[writeLen:])
		if err != nil {
			return fmt.Errorf("write sway ipc message: %w", err)
		}
		writeLen += n
	}

	s.log.Debugw("wrote sway ipc message", "type", msg.MsgType, "len", msg.PayloadLen)
	return nil
}

// readMsg continuously reads from the socket and queues messages until
// the connection is closed
func (s *SwayIpcClient) readMsg() {
	defer close(s.MsgQueue)

	header := make([]byte, HEADER_LEN+8)

	for {
		if _, err := io.ReadFull(s.conn, header); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.log.Warnw("sway ipc read failed", "err", err)
			}
			return
		}

		if !bytes.Equal(header[:HEADER_LEN], IPC_HEADER) {
			s.log.Warnw("did not receive expected magic string in reply")
			return
		}

		payloadLen := bytesToInt32(header[HEADER_LEN : HEADER_LEN+4])
		msgType := bytesToInt32(header[HEADER_LEN+4 : HEADER_LEN+8])
		// check if event
		if (msgType >> 31) == 1 {
			msgType = (msgType & 0x7F) + 1000
		}

		payload := make([]byte, payloadLen)
		if _, err := io.ReadFull(s.conn, payload); err != nil {
			s.log.Warnw("sway ipc read failed", "err", err)
			return
		}

		msg := NewMsg(MsgType(msgType), payload)
		s.log.Debugw("received sway ipc message", "type", msg.MsgType)

		select {
		case s.MsgQueue <- msg:
		default:
			// queue is full, discard first
			<-s.MsgQueue
			s.MsgQueue <- msg
		}
	}
}

func bytesToInt32(bytes []byte) uint32 {
	var val uint32
	val |= uint32(bytes[0])
	val |= uint32(bytes[1]) << 8
	val |= uint32(bytes[2]) << 16
	val |= uint32(bytes[3]) << 24
	return val
}

func getSwaySockAddr() (*net.UnixAddr, error) {
	swaySock := os.Getenv("SWAYSOCK")

	// if env variable didn't work for whatever reason
	if len(swaySock) == 0 {
		stdout, err := exec.Command("sway", "--get-socketpath").Output()
		if err != nil {
			return nil, err
		}
		swaySock = strings.TrimSpace(string(stdout))
	}

	return net.ResolveUnixAddr("unix", swaySock)
}
