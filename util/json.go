package util

import (
	"github.com/goccy/go-json"
)

// JsonNode wraps a decoded JSON value for ad hoc traversal. Accessors on
// a node of the wrong kind, or on a missing node, return zero values, so
// lookups can be chained without checks.
type JsonNode struct {
	data     interface{}
	IsNumber bool
	IsString bool
	IsBool   bool
	IsArray  bool
	IsObject bool
	IsNull   bool
}

func NewJsonNode(input []byte) (*JsonNode, error) {
	var data interface{}
	if err := json.Unmarshal(input, &data); err != nil {
		return nil, err
	}

	return getJsonNode(data), nil
}

func (n *JsonNode) Number() float64 {
	if n == nil || !n.IsNumber {
		return 0
	}
	return n.data.(float64)
}

func (n *JsonNode) Int() int {
	return int(n.Number())
}

func (n *JsonNode) Bool() bool {
	if n == nil || !n.IsBool {
		return false
	}
	return n.data.(bool)
}

func (n *JsonNode) Array() []*JsonNode {
	if n == nil || !n.IsArray {
		return nil
	}

	arr := n.data.([]interface{})
	nodes := make([]*JsonNode, len(arr))
	for idx, data := range arr {
		nodes[idx] = getJsonNode(data)
	}
	return nodes
}

func (n *JsonNode) Get(key string) *JsonNode {
	if n == nil || !n.IsObject {
		return nil
	}
	obj := n.data.(map[string]interface{})
	return getJsonNode(obj[key])
}

func getJsonNode(data interface{}) *JsonNode {
	node := &JsonNode{data: data}
	switch data.(type) {
	case bool:
		node.IsBool = true
	case float64:
		node.IsNumber = true
	case string:
		node.IsString = true
	case []interface{}:
		node.IsArray = true
	case map[string]interface{}:
		node.IsObject = true
	default:
		node.IsNull = true
	}

	return node
}
