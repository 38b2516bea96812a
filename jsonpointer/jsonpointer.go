// Package jsonpointer walks a parsed JSON value (the tree produced by
// encoding/json: map[string]interface{}, []interface{} and scalars) using a
// RFC 6901 style pointer. It never touches raw bytes - the document is
// assumed to already be decoded - which keeps it reusable both for resolving
// "$ref": "#/..." schema references and for any other place a pointer into a
// decoded document is needed.
package jsonpointer

import (
	"net/url"
	"strconv"
	"strings"
)

// Pointer is a parsed json pointer: an ordered list of already ~0/~1- and
// percent-decoded tokens. Each token is either an object key or, when every
// rune in it is a digit, an array index.
type Pointer []string

// Parse splits a pointer string ("" or "/a/b/0") into its decoded tokens.
// A non-empty pointer must start with '/'.
func Parse(path string) (Pointer, error) {
	if path == "" || path == "/" {
		return Pointer{}, nil
	}

	if path[0] != '/' {
		return nil, &SyntaxError{Path: path, Reason: "non-empty pointer must start with '/'"}
	}

	rawTokens := strings.Split(path, "/")[1:]
	tokens := make(Pointer, len(rawTokens))

	for i, raw := range rawTokens {
		decoded, err := decodeToken(raw)
		if err != nil {
			return nil, &SyntaxError{Path: path, Reason: err.Error()}
		}
		tokens[i] = decoded
	}

	return tokens, nil
}

// decodeToken reverses "~1" -> "/" and "~0" -> "~" (in that order, per
// RFC 6901) and then percent-decodes what remains.
func decodeToken(token string) (string, error) {
	token = strings.ReplaceAll(token, "~1", "/")
	token = strings.ReplaceAll(token, "~0", "~")

	decoded, err := url.PathUnescape(token)
	if err != nil {
		return "", err
	}

	return decoded, nil
}

// Evaluate walks data token by token and returns the value the pointer
// refers to.
func (p Pointer) Evaluate(data interface{}) (interface{}, error) {
	current := data

	for _, token := range p {
		next, err := step(token, current)
		if err != nil {
			return nil, &EvaluationError{
				Pointer: "/" + strings.Join([]string(p), "/"),
				Reason:  err.Error(),
			}
		}
		current = next
	}

	return current, nil
}

// step evaluates a single token against the current node, dispatching on
// the node's kind: an object key for maps, an integer index for arrays.
func step(token string, data interface{}) (interface{}, error) {
	switch v := data.(type) {
	case map[string]interface{}:
		if value, ok := v[token]; ok {
			return value, nil
		}
		return nil, MissingTokenError(token)
	case []interface{}:
		if !isArrayIndex(token) {
			return nil, MissingTokenError(token)
		}

		index, err := strconv.Atoi(token)
		if err != nil {
			return nil, MissingTokenError(token)
		}

		if index < 0 || index >= len(v) {
			return nil, IndexError(index)
		}

		return v[index], nil
	default:
		return nil, MissingTokenError(token)
	}
}

func isArrayIndex(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Evaluate parses path and walks data in one step.
func Evaluate(data interface{}, path string) (interface{}, error) {
	pointer, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return pointer.Evaluate(data)
}
