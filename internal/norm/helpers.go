package norm

import "zaslon/internal/xmltree"

// attrVal: значение атрибута или nil, если атрибута нет.
// Разница важна для выгрузки: nil -> NULL/пустая ячейка.
func attrVal(n *xmltree.Node, name string) any {
	if v, ok := n.AttrOK(name); ok {
		return v
	}
	return nil
}

func fnum(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func fbool(p *bool) any {
	if p == nil {
		return nil
	}
	return *p
}

// structured — считаем узел "структурным", если у него есть атрибуты или
// дочерние элементы. Голый текст там, где ожидался элемент с атрибутами,
// пропускаем (порядковый номер при этом расходуется — ID соседей не едут).
func structured(n *xmltree.Node) bool {
	return n != nil && (len(n.Attrs) > 0 || len(n.Children) > 0)
}
