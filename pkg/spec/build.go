package spec

import (
	"fmt"
	"strings"

	"github.com/isncg/glad-go/pkg/registry"
	"github.com/isncg/glad-go/pkg/version"
)

// Build constructs the model from a registry root. The first malformed entry
// aborts the build with an error wrapping ErrMalformed.
func Build(root *registry.Node) (*Spec, error) {
	s := &Spec{commands: make(map[string]*Command)}

	for _, n := range root.Elements("") {
		switch n.Tag {
		case "enums":
			e, err := buildEnumeration(n, len(s.Enumerations))
			if err != nil {
				return nil, err
			}
			s.Enumerations = append(s.Enumerations, e)

		case "commands":
			for _, cn := range n.Elements("command") {
				cmd, err := buildCommand(cn)
				if err != nil {
					return nil, fmt.Errorf("command #%d: %w", len(s.Commands), err)
				}
				s.Commands = append(s.Commands, cmd)
				if _, dup := s.commands[cmd.Name]; !dup {
					s.commands[cmd.Name] = cmd
				}
			}

		case "feature":
			f, err := buildFeature(n)
			if err != nil {
				return nil, err
			}
			s.Features = append(s.Features, f)

		case "extensions":
			for _, xn := range n.Elements("extension") {
				x, err := buildExtension(xn)
				if err != nil {
					return nil, err
				}
				s.Extensions = append(s.Extensions, x)
			}
		}
	}

	return s, nil
}

func buildEnumeration(n *registry.Node, index int) (*Enumeration, error) {
	e := &Enumeration{
		Namespace: n.Attr("namespace"),
		Group:     strings.TrimSpace(n.Attr("group")),
		Type:      strings.TrimSpace(n.Attr("type")),
		Vendor:    strings.TrimSpace(n.Attr("vendor")),
		Start:     n.Attr("start"),
		End:       n.Attr("end"),
		Comment:   n.Attr("comment"),
	}

	byName := make(map[string]*Group)
	for _, mn := range n.Elements("enum") {
		m, err := buildEnumMember(mn, index)
		if err != nil {
			return nil, fmt.Errorf("<enums namespace=%q> #%d: %w", e.Namespace, index, err)
		}
		e.Members = append(e.Members, m)

		for _, name := range e.GroupsOf(m) {
			g, ok := byName[name]
			if !ok {
				g = NewGroup(name)
				byName[name] = g
				e.Groups = append(e.Groups, g)
			}
			g.Add(m)
			g.AddHint(m.Type)
		}
	}

	if e.Type != "" {
		for _, g := range e.Groups {
			g.AddHint(e.Type)
		}
	}

	return e, nil
}

func buildEnumMember(n *registry.Node, index int) (*EnumMember, error) {
	name := strings.TrimSpace(n.Attr("name"))
	if name == "" {
		return nil, fmt.Errorf("%w: <enum> without name", ErrMalformed)
	}

	value := strings.TrimSpace(n.Attr("value"))
	if value == "" {
		return nil, fmt.Errorf("%w: <enum name=%q> without value", ErrMalformed, name)
	}

	m := &EnumMember{
		Name:        name,
		Value:       value,
		Type:        strings.TrimSpace(n.Attr("type")),
		Alias:       n.Attr("alias"),
		Enumeration: index,
	}
	for _, g := range strings.Split(n.Attr("group"), ",") {
		if g = strings.TrimSpace(g); g != "" {
			m.Groups = append(m.Groups, g)
		}
	}
	return m, nil
}

func buildCommandItem(n *registry.Node) (CommandItem, error) {
	var item CommandItem

	nameNode := n.Child("name")
	if nameNode == nil || strings.TrimSpace(nameNode.InnerText()) == "" {
		return item, fmt.Errorf("%w: <%s> without name", ErrMalformed, n.Tag)
	}
	item.Name = strings.TrimSpace(nameNode.InnerText())

	for _, c := range n.Children {
		w := strings.TrimSpace(c.InnerText())
		if w == "" {
			continue
		}
		item.Words = append(item.Words, w)
		item.Stars += strings.Count(w, "*")
	}
	item.Group = strings.TrimSpace(n.Attr("group"))
	return item, nil
}

// singleWordType returns the <ptype> text when it is a single word.
func singleWordType(n *registry.Node) string {
	pt := n.Child("ptype")
	if pt == nil {
		return ""
	}
	t := strings.TrimSpace(pt.InnerText())
	if len(strings.Fields(t)) != 1 {
		return ""
	}
	return t
}

func buildParameter(n *registry.Node) (*Parameter, error) {
	item, err := buildCommandItem(n)
	if err != nil {
		return nil, err
	}
	return &Parameter{
		CommandItem: item,
		Len:         n.Attr("len"),
		Type:        singleWordType(n),
	}, nil
}

func buildPrototype(n *registry.Node) (Prototype, error) {
	item, err := buildCommandItem(n)
	if err != nil {
		return Prototype{}, err
	}
	p := Prototype{CommandItem: item, Type: singleWordType(n)}
	if p.Type != "" {
		return p, nil
	}

	// No <ptype>: the return type is spelled in the leading text ("void *").
	for _, c := range n.Children {
		if c.Tag == "name" {
			break
		}
		for _, w := range strings.Fields(strings.ReplaceAll(c.InnerText(), "*", " ")) {
			if w != "const" {
				p.Type = w
				return p, nil
			}
		}
	}
	return p, nil
}

func buildCommand(n *registry.Node) (*Command, error) {
	pn := n.Child("proto")
	if pn == nil {
		return nil, fmt.Errorf("%w: <command> without <proto>", ErrMalformed)
	}
	proto, err := buildPrototype(pn)
	if err != nil {
		return nil, err
	}

	cmd := &Command{Name: proto.Name, Proto: proto}
	for i, paramNode := range n.Elements("param") {
		p, err := buildParameter(paramNode)
		if err != nil {
			return nil, fmt.Errorf("%s parameter %d: %w", cmd.Name, i, err)
		}
		cmd.Params = append(cmd.Params, p)
	}
	if a := n.Child("alias"); a != nil {
		cmd.Alias = a.Attr("name")
	}
	return cmd, nil
}

func buildRequire(n *registry.Node) Require {
	r := Require{API: n.Attr("api"), Profile: n.Attr("profile")}
	for _, c := range n.Elements("") {
		name := c.Attr("name")
		if name == "" {
			continue
		}
		switch c.Tag {
		case "command":
			r.Commands = append(r.Commands, name)
		case "enum":
			r.Enums = append(r.Enums, name)
		}
	}
	return r
}

func buildFeature(n *registry.Node) (*Feature, error) {
	name := n.Attr("name")
	if name == "" {
		return nil, fmt.Errorf("%w: <feature> without name", ErrMalformed)
	}
	number, err := version.Parse(n.Attr("number"))
	if err != nil {
		return nil, fmt.Errorf("%w: <feature name=%q>: %v", ErrMalformed, name, err)
	}

	f := &Feature{API: n.Attr("api"), Name: name, Number: number}
	for _, c := range n.Elements("") {
		switch c.Tag {
		case "require":
			f.Requires = append(f.Requires, buildRequire(c))
		case "remove":
			f.Removes = append(f.Removes, buildRequire(c))
		}
	}
	return f, nil
}

func buildExtension(n *registry.Node) (*Extension, error) {
	name := n.Attr("name")
	if name == "" {
		return nil, fmt.Errorf("%w: <extension> without name", ErrMalformed)
	}

	x := &Extension{Name: name}
	for _, api := range strings.Split(n.Attr("supported"), "|") {
		if api = strings.TrimSpace(api); api != "" {
			x.Supported = append(x.Supported, api)
		}
	}
	for _, c := range n.Elements("require") {
		x.Requires = append(x.Requires, buildRequire(c))
	}
	return x, nil
}
