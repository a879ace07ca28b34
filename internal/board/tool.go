package board

import (
	"fmt"
	"strings"

	"github.com/example/roughboard/internal/shape"
)

// Tool is the active pointer tool.
type Tool int

const (
	ToolSelection Tool = iota
	ToolLine
	ToolRectangle
	ToolBrush
	ToolText
)

var toolNames = [...]string{
	ToolSelection: "selection",
	ToolLine:      "line",
	ToolRectangle: "rectangle",
	ToolBrush:     "brush",
	ToolText:      "text",
}

// Tools lists every tool in toolbar order.
func Tools() []Tool {
	return []Tool{ToolSelection, ToolLine, ToolRectangle, ToolBrush, ToolText}
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Kind returns the shape kind a drawing tool creates. The selection tool
// creates nothing and reports false.
func (t Tool) Kind() (shape.Kind, bool) {
	switch t {
	case ToolLine:
		return shape.Line, true
	case ToolRectangle:
		return shape.Rectangle, true
	case ToolBrush:
		return shape.Brush, true
	case ToolText:
		return shape.Text, true
	}
	return 0, false
}

// ParseTool maps a tool name to its Tool.
func ParseTool(s string) (Tool, error) {
	for t, name := range toolNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Tool(t), nil
		}
	}
	return ToolSelection, fmt.Errorf("unknown tool %q", s)
}

// State is the phase of the gesture in progress.
type State int

const (
	StateNone State = iota
	StateDrawing
	StateMoving
	StateResizing
	StateWriting
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateDrawing:
		return "drawing"
	case StateMoving:
		return "moving"
	case StateResizing:
		return "resizing"
	case StateWriting:
		return "writing"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
