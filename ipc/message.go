package ipc

import "fmt"

type MsgType uint32

const (
	RunCmd MsgType = iota
	GetWorkspaces
	Subscribe
	GetOutputs
	GetTree
	GetMarks
	GetBarConfig
	GetVersion
	GetBindingModes
	GetConfig
	SendTick
	Sync
	GetBindingState
	GetInputs MsgType = 100
	GetSeats  MsgType = 101

	// used to identify async events after subscribe
	EventShutdown MsgType = 1006
)

func (t MsgType) String() string {
	switch t {
	case Subscribe:
		return "subscribe"
	case GetOutputs:
		return "get_outputs"
	case GetTree:
		return "get_tree"
	case EventShutdown:
		return "shutdown"
	default:
		return fmt.Sprintf("type(%d)", uint32(t))
	}
}

type Event string

const Shutdown Event = "shutdown"

var IPC_HEADER = []byte("i3-ipc")
var HEADER_LEN = len(IPC_HEADER)

type Msg struct {
	MsgType    MsgType
	PayloadLen int32
	Payload    []byte
}

func NewMsg(msgType MsgType, payload []byte) *Msg {
	return &Msg{
		MsgType:    msgType,
		PayloadLen: (int32)(len(payload)),
		Payload:    payload,
	}
}

func (msg *Msg) bytes() []byte {
	bytes := make([]byte, HEADER_LEN, HEADER_LEN+8)
	copy(bytes, IPC_HEADER)

	payloadLen := int32(len(msg.Payload))
	bytes = append(bytes, byte(payloadLen), byte(payloadLen>>8), byte(payloadLen>>16), byte(payloadLen>>24))
	bytes = append(bytes, byte(msg.MsgType), byte(msg.MsgType>>8), byte(msg.MsgType>>16), byte(msg.MsgType>>24))
	bytes = append(bytes, []byte(msg.Payload)...)

	return bytes
}
