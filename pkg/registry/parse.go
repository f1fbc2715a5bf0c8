package registry

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoRoot is returned when the input holds no element at all.
var ErrNoRoot = errors.New("registry has no root element")

// Parse decodes a registry from XML bytes and returns its root element.
func Parse(data []byte) (*Node, error) {
	root, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}
	return root, nil
}

// Load loads and parses a registry from a file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Decode reads XML tokens from r and builds the node tree of the first root
// element. Comments, processing instructions and directives are dropped.
func Decode(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var (
		root  *Node
		stack []*Node
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				n.Attrs = append(n.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else if root == nil {
				root = n
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, fmt.Errorf("unexpected </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, &Node{Text: string(t)})
		}
	}

	if root == nil {
		return nil, ErrNoRoot
	}
	return root, nil
}
