package builder

// Section is a top level grouping node such as head or body. It has no
// attributes and no text and always renders as an opening/closing pair.
type Section struct {
	Name       string
	ChildNodes NodeList
}

func NewSection(name string) *Section {
	return &Section{Name: name}
}

func (s *Section) NodeName() string {
	return s.Name
}

func (s *Section) Children() NodeList {
	return s.ChildNodes
}

// AppendChild adds on as the last child and returns the section.
func (s *Section) AppendChild(on Node) *Section {
	s.ChildNodes = append(s.ChildNodes, on)
	return s
}

func (s *Section) String() string {
	return "<" + s.Name + ">\n" + s.ChildNodes.String() + "</" + s.Name + ">\n"
}
