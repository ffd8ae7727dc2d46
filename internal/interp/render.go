package interp

import (
	"fmt"
	"strconv"
	"strings"
)

// Render formats a result value for display: integers print as
// decimal, booleans as true/false, unit as (), strings quoted,
// closures as <fun>, records as {field=value; ...} in declaration
// order, and arrays as [|v; v; ...|].
func Render(v Value, heap *Heap) string {
	switch x := v.(type) {
	case VInt:
		return strconv.FormatInt(int64(x), 10)
	case VBool:
		if x {
			return "true"
		}
		return "false"
	case VUnit:
		return "()"
	case VString:
		return fmt.Sprintf("%q", string(x))
	case *Closure:
		return "<fun>"
	case VPtr:
		switch obj := heap.Get(x).(type) {
		case *Cell:
			return Render(obj.Value, heap)
		case *RecordInstance:
			return renderRecord(obj, heap)
		case *ArrayInstance:
			return renderArray(obj, heap)
		}
	}
	return "<unknown>"
}

func renderRecord(obj *RecordInstance, heap *Heap) string {
	parts := make([]string, len(obj.Decl.Fields))
	for i, f := range obj.Decl.Fields {
		parts[i] = fmt.Sprintf("%s=%s", f.Name, Render(obj.Fields[f.Name], heap))
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, "; "))
}

func renderArray(obj *ArrayInstance, heap *Heap) string {
	parts := make([]string, len(obj.Elements))
	for i, el := range obj.Elements {
		parts[i] = Render(el, heap)
	}
	return fmt.Sprintf("[|%s|]", strings.Join(parts, "; "))
}
