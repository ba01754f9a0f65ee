// Package report renders collected graphs as a Google Charts HTML snippet.
// The whole document is assembled in memory and written in one shot; it is
// meant for embedding in a page that loads the charting library separately
// and is not a standalone document.
package report

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"seqbench/internal/graphs"
)

// DefaultPath is where the report lands unless configured otherwise.
const DefaultPath = "graph.html"

// table is one graph reshaped for rendering: series columns in first
// appearance order, group rows in ascending numeric order.
type table struct {
	series []string
	groups []string
	cells  map[string]map[string]uint64 // group -> series -> value
}

func tabulate(g *graphs.Graph) table {
	t := table{cells: make(map[string]map[string]uint64)}
	seenSeries := make(map[string]bool)

	for _, s := range g.Samples {
		if !seenSeries[s.Series] {
			seenSeries[s.Series] = true
			t.series = append(t.series, s.Series)
		}
		row := t.cells[s.Group]
		if row == nil {
			row = make(map[string]uint64)
			t.cells[s.Group] = row
			t.groups = append(t.groups, s.Group)
		}
		row[s.Series] = s.Value
	}

	// Group labels order by numeric value; a label that does not parse counts
	// as 0 and so sorts before every real size.
	sort.SliceStable(t.groups, func(i, j int) bool {
		return atoiOrZero(t.groups[i]) < atoiOrZero(t.groups[j])
	})
	return t
}

func atoiOrZero(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// Render builds the full report: one draw_<name> routine per graph, a
// draw_all dispatcher registered on the charts loader, then a display region
// and a log-scale toggle per graph.
func Render(gs []*graphs.Graph) []byte {
	var b bytes.Buffer

	b.WriteString("<script type=\"text/javascript\">\n")
	for _, g := range gs {
		writeDrawFunc(&b, g)
	}

	b.WriteString("function draw_all(){\n")
	for _, g := range gs {
		fmt.Fprintf(&b, "draw_%s();\n", g.Name)
	}
	b.WriteString("}\n")
	b.WriteString("google.setOnLoadCallback(draw_all);\n")
	b.WriteString("</script>\n\n")

	for _, g := range gs {
		fmt.Fprintf(&b, "<div id=\"graph_%s\" style=\"width: 600px; height: 400px;\"></div>\n", g.Name)
		fmt.Fprintf(&b, "<input id=\"graph_button_%s\" type=\"button\" value=\"Logarithmic scale\">\n", g.Name)
	}

	return b.Bytes()
}

func writeDrawFunc(b *bytes.Buffer, g *graphs.Graph) {
	t := tabulate(g)

	fmt.Fprintf(b, "function draw_%s(){\n", g.Name)

	b.WriteString("var data = google.visualization.arrayToDataTable([\n")
	b.WriteString("['x'")
	for _, s := range t.series {
		fmt.Fprintf(b, ", '%s'", s)
	}
	b.WriteString("],\n")
	for _, group := range t.groups {
		fmt.Fprintf(b, "['%s'", group)
		for _, s := range t.series {
			fmt.Fprintf(b, ", %d", t.cells[group][s])
		}
		b.WriteString("],\n")
	}
	b.WriteString("]);\n")

	fmt.Fprintf(b, "var graph = new google.visualization.LineChart(document.getElementById('graph_%s'));\n", g.Name)
	fmt.Fprintf(b, "var options = {curveType: \"function\","+
		"title: \"%s\","+
		"animation: {duration:1200, easing:\"in\"},"+
		"width: 600, height: 400,"+
		"hAxis: {title:\"Number of elements\", slantedText:true},"+
		"vAxis: {viewWindow: {min:0}, title:\"%s\"}};\n", g.Title, g.Unit)
	b.WriteString("graph.draw(data, options);\n")

	fmt.Fprintf(b, "var button = document.getElementById('graph_button_%s');\n", g.Name)
	b.WriteString("button.onclick = function(){\n")
	b.WriteString("if(options.vAxis.logScale){\n")
	b.WriteString("button.value=\"Logarithmic Scale\";\n")
	b.WriteString("} else {\n")
	b.WriteString("button.value=\"Normal scale\";\n")
	b.WriteString("}\n")
	b.WriteString("options.vAxis.logScale=!options.vAxis.logScale;\n")
	b.WriteString("graph.draw(data, options);\n")
	b.WriteString("};\n")

	b.WriteString("}\n")
}

// WriteFile renders gs and overwrites path with the result.
func WriteFile(path string, gs []*graphs.Graph) error {
	return os.WriteFile(path, Render(gs), 0644)
}
