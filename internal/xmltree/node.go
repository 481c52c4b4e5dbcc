package xmltree

// Node — узел XML-дерева после загрузки: атрибуты отдельно, дочерние
// элементы отдельно. Дочерние элементы с одним именем ВСЕГДА лежат срезом,
// даже если в исходнике элемент встретился один раз. Это снимает вопрос
// "один или много" со всех экстракторов разом — коэрция делается один раз
// на границе загрузки.
type Node struct {
	Name      string
	Attrs     map[string]string
	AttrKeys  []string // порядок атрибутов как в документе
	Children  map[string][]*Node
	ChildKeys []string // порядок имён дочерних элементов (первое вхождение)
	Text      string   // текстовое содержимое (#text), trimmed
}

// Attr возвращает значение атрибута ("" если нет).
func (n *Node) Attr(name string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[name]
}

// AttrOK — как Attr, но с признаком наличия.
func (n *Node) AttrOK(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// HasAttr — есть ли атрибут (пустое значение тоже считается).
func (n *Node) HasAttr(name string) bool {
	_, ok := n.AttrOK(name)
	return ok
}

// First возвращает первый дочерний элемент с данным именем (nil если нет).
func (n *Node) First(name string) *Node {
	if n == nil {
		return nil
	}
	kids := n.Children[name]
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

// All возвращает все дочерние элементы с данным именем (может быть пусто).
func (n *Node) All(name string) []*Node {
	if n == nil {
		return nil
	}
	return n.Children[name]
}

// Has — есть ли хотя бы один дочерний элемент с данным именем.
func (n *Node) Has(name string) bool {
	return n != nil && len(n.Children[name]) > 0
}

func (n *Node) addAttr(key, val string) {
	if _, seen := n.Attrs[key]; !seen {
		n.AttrKeys = append(n.AttrKeys, key)
	}
	n.Attrs[key] = val
}

func (n *Node) addChild(c *Node) {
	if _, seen := n.Children[c.Name]; !seen {
		n.ChildKeys = append(n.ChildKeys, c.Name)
	}
	n.Children[c.Name] = append(n.Children[c.Name], c)
}

func newNode(name string) *Node {
	return &Node{
		Name:     name,
		Attrs:    map[string]string{},
		Children: map[string][]*Node{},
	}
}
