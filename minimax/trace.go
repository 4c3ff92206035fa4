package minimax

import (
	"io"

	"gopkg.in/yaml.v3"
)

// LogNode is the YAML form of a searched node.
type LogNode struct {
	Move       string    `json:"move,omitempty" yaml:"move,omitempty"`
	Player     string    `json:"player" yaml:"player"`
	Depth      int       `json:"depth" yaml:"depth"`
	Estimation int       `json:"estimation" yaml:"estimation"`
	Chosen     bool      `json:"chosen,omitempty" yaml:"chosen,omitempty"`
	Children   []LogNode `json:"children,omitempty" yaml:"children,omitempty"`
}

func toLogNode(n *Node, chosen bool) LogNode {
	ln := LogNode{
		Player:     n.player.String(),
		Depth:      n.depth,
		Estimation: n.estimation,
		Chosen:     chosen,
	}
	if n.move != nil {
		ln.Move = n.move.ShortDescription()
	}
	for i, c := range n.children {
		ln.Children = append(ln.Children, toLogNode(c, i == n.chosen))
	}
	return ln
}

func writeTrace(w io.Writer, root *Node) error {
	out, err := yaml.Marshal(toLogNode(root, false))
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
