package outline

// Node is a heading with its subordinate headings nested under it,
// for consumers that want the outline as a tree rather than a flat
// list.
type Node struct {
	Level    Level   `json:"level"`
	Text     string  `json:"text"`
	Page     int     `json:"page"`
	Children []*Node `json:"children,omitempty"`
}

// BuildTree nests a flat heading sequence by level: each heading
// becomes a child of the nearest preceding heading with a shallower
// level, and headings at or above the top of the stack close it. A
// document that opens below H1 simply produces multiple roots.
func BuildTree(headings []Heading) []*Node {
	var roots []*Node
	var stack []*Node

	for _, h := range headings {
		node := &Node{Level: h.Level, Text: h.Text, Page: h.Page}
		for len(stack) > 0 && stack[len(stack)-1].Level.rank() >= h.Level.rank() {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	return roots
}
