package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// localName отрезает namespace-префикс: "ns0:Relay" -> "Relay".
// encoding/xml отдаёт Space отдельно, но префиксы в атрибутах (@xsi:..., @ns0:...)
// всё равно приходят с двоеточием — чистим и их.
func localName(n xml.Name) string {
	local := n.Local
	if i := strings.LastIndexByte(local, ':'); i >= 0 {
		local = local[i+1:]
	}
	return local
}

// Parse читает XML из потока и строит дерево: один проход декодером,
// namespace'ы уже сняты, повторяющиеся элементы уже лежат срезами.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xml parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := newNode(localName(t.Name))
			for _, a := range t.Attr {
				name := localName(a.Name)
				// служебные xmlns-декларации в данные не тащим
				if name == "xmlns" || a.Name.Space == "xmlns" {
					continue
				}
				n.addAttr(name, a.Value)
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xml parse: multiple root elements")
				}
				root = n
			} else {
				stack[len(stack)-1].addChild(n)
			}
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

		case xml.CharData:
			if len(stack) > 0 {
				text := strings.TrimSpace(string(t))
				if text != "" {
					cur := stack[len(stack)-1]
					if cur.Text != "" {
						cur.Text += " "
					}
					cur.Text += text
				}
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("xml parse: empty document")
	}
	return root, nil
}

// LoadFile — удобная обёртка: файл -> дерево.
func LoadFile(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xml open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}
