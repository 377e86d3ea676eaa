package element

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for an element tree. The diagram is in
// GraphViz (DOT) format. A root marker is drawn as a point-shaped node.
func ToGraphViz(n *Node, w io.Writer) error {
	tmpl, err := template.New("elements").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("elnode").Funcs(
		template.FuncMap{
			"label": nodeLabel,
		}).Parse(elNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("eledge").Parse(elEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	if n != nil {
		dict := make(map[*Node]string, 64)
		if err = nodes(n, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

type dotNode struct {
	N    *Node
	Name string
}

type dotEdge struct {
	N1, N2 dotNode
}

func nodes(n *Node, w io.Writer, dict map[*Node]string, gparams *graphParamsType) error {
	from := dotNode{n, nodeName(n, dict)}
	if err := gparams.NodeTmpl.Execute(w, from); err != nil {
		return err
	}
	for _, ch := range n.Children {
		if err := nodes(ch, w, dict, gparams); err != nil {
			return err
		}
		to := dotNode{ch, nodeName(ch, dict)}
		if err := gparams.EdgeTmpl.Execute(w, dotEdge{from, to}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n *Node, dict map[*Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func nodeLabel(n *Node) string {
	s := n.String()
	if len(s) > 24 {
		s = s[:24] + "..."
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elNodeTmpl = `{{ if .N.IsRoot }}{{ .Name }}	[ shape=point ] ;
{{ else }}{{ .Name }}	[ label={{ label .N }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}`

const elEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
