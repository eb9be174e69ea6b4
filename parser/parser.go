/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser decodes design token documents into the token tree.
//
// Both JSON and YAML input decode through yaml.Node so that mapping key
// order survives into the tree; emission order in the renderers is source
// order. JSON input may carry comments and trailing commas.
package parser

import (
	"fmt"
	"strconv"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/smalim/expr"
	"bennypowers.dev/smalim/token"
)

// Parse decodes a token document body into its root group.
func Parse(data []byte) (*token.Group, error) {
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if len(root.Content) == 0 {
		return token.NewGroup(), nil
	}
	body := root.Content[0]
	if body.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root must be an object")
	}
	return decodeGroup(body)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON documents start with '{', optionally preceded by whitespace or a BOM.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func decodeGroup(node *yaml.Node) (*token.Group, error) {
	group := token.NewGroup()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if valueNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%s: expected a token or group object", keyNode.Value)
		}
		child, err := decodeNode(valueNode)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyNode.Value, err)
		}
		group.Set(keyNode.Value, child)
	}
	return group, nil
}

// decodeNode tries the token shape first: a mapping with both value and
// type fields is a token, anything else is a group. Token-shape precedence
// keeps the decode unambiguous when a group happens to contain children
// named like token fields.
func decodeNode(node *yaml.Node) (token.Node, error) {
	valueNode := mappingValue(node, "value", "$value")
	typeNode := mappingValue(node, "type", "$type")
	if valueNode != nil && typeNode != nil {
		return decodeToken(node, valueNode, typeNode)
	}
	return decodeGroup(node)
}

func decodeToken(node, valueNode, typeNode *yaml.Node) (*token.Token, error) {
	tv, err := decodeTokenValue(valueNode)
	if err != nil {
		return nil, err
	}
	t := &token.Token{
		Category: token.CategoryFromString(typeNode.Value),
		Value:    tv,
	}
	if extNode := mappingValue(node, "$extensions", "extensions"); extNode != nil {
		ext, err := decodeExtensions(extNode)
		if err != nil {
			return nil, err
		}
		t.Extension = ext
	}
	return t, nil
}

func decodeTokenValue(node *yaml.Node) (token.TokenValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		e, err := decodeExpression(node)
		if err != nil {
			return token.TokenValue{}, err
		}
		return token.Scalar(e), nil
	case yaml.MappingNode:
		entries := make([]token.DictEntry, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			e, err := decodeExpression(node.Content[i+1])
			if err != nil {
				return token.TokenValue{}, fmt.Errorf("%s: %w", node.Content[i].Value, err)
			}
			entries = append(entries, token.DictEntry{Key: node.Content[i].Value, Expression: e})
		}
		return token.Composite(entries), nil
	default:
		return token.TokenValue{}, fmt.Errorf("unsupported token value shape")
	}
}

// decodeExpression parses a scalar value node. Native numbers bypass the
// string grammar and become bare-number literals.
func decodeExpression(node *yaml.Node) (expr.Expression, error) {
	switch node.Tag {
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", node.Value, err)
		}
		return expr.FromNumber(f), nil
	default:
		return expr.Parse(node.Value)
	}
}

// decodeExtensions decodes the $extensions field. The only supported kind
// is studio.tokens with a modify action:
//
//	{"studio.tokens": {"modify": {"type": "lighten", "value": "0.5", "space": "hsl"}}}
func decodeExtensions(node *yaml.Node) (*token.Extension, error) {
	if node.Kind != yaml.MappingNode || len(node.Content) < 2 {
		return nil, fmt.Errorf("malformed $extensions field")
	}
	kind := node.Content[0].Value
	if kind != "studio.tokens" {
		return nil, fmt.Errorf("unknown extension kind %q", kind)
	}
	payload := node.Content[1]

	modify := mappingValue(payload, "modify")
	if modify == nil {
		return nil, fmt.Errorf("unknown studio.tokens extension action")
	}

	typeNode := mappingValue(modify, "type")
	amountNode := mappingValue(modify, "value", "amount")
	spaceNode := mappingValue(modify, "space")
	if typeNode == nil || amountNode == nil || spaceNode == nil {
		return nil, fmt.Errorf("modify extension requires type, value and space")
	}
	amount, err := strconv.ParseFloat(amountNode.Value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid modify amount %q: %w", amountNode.Value, err)
	}

	return &token.Extension{
		Type:   token.ModifyType(typeNode.Value),
		Space:  token.ColorSpace(spaceNode.Value),
		Amount: amount,
	}, nil
}

// mappingValue returns the value node for the first of keys present in a
// mapping node, or nil.
func mappingValue(node *yaml.Node, keys ...string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		for _, k := range keys {
			if node.Content[i].Value == k {
				return node.Content[i+1]
			}
		}
	}
	return nil
}
