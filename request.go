package yamlinc

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// includeRequest is the canonical form of the include tag's arguments,
// normalized from the scalar, sequence and mapping syntaxes.
type includeRequest struct {
	pathname  string
	recursive bool
	encoding  string
}

// parseRequest extracts include arguments from the tagged node.
//
// Supported forms:
//
//	!include pathname
//	!include [pathname, recursive, encoding]   (trailing arguments optional)
//	!include {pathname: ..., recursive: ..., encoding: ...}
func parseRequest(node *yaml.Node) (includeRequest, error) {
	var req includeRequest

	switch node.Kind {
	case yaml.ScalarNode:
		req.pathname = node.Value

	case yaml.SequenceNode:
		if len(node.Content) < 1 || len(node.Content) > 3 {
			return req, fmt.Errorf("line %d: include takes 1 to 3 arguments, got %d", node.Line, len(node.Content))
		}
		req.pathname = node.Content[0].Value
		if len(node.Content) > 1 {
			if err := node.Content[1].Decode(&req.recursive); err != nil {
				return req, fmt.Errorf("line %d: include recursive argument: %w", node.Content[1].Line, err)
			}
		}
		if len(node.Content) > 2 {
			req.encoding = node.Content[2].Value
		}

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			value := node.Content[i+1]
			switch key {
			case "pathname":
				req.pathname = value.Value
			case "recursive":
				if err := value.Decode(&req.recursive); err != nil {
					return req, fmt.Errorf("line %d: include recursive argument: %w", value.Line, err)
				}
			case "encoding":
				req.encoding = value.Value
			default:
				return req, fmt.Errorf("line %d: unknown include argument %q", node.Content[i].Line, key)
			}
		}

	default:
		return req, fmt.Errorf("line %d: %w", node.Line, ErrUnsupportedNode)
	}

	if req.pathname == "" {
		return req, fmt.Errorf("line %d: include pathname cannot be empty", node.Line)
	}
	return req, nil
}
