package domain

import (
	"reflect"
	"testing"
)

func labels(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Label
	}
	return out
}

func TestSortSiblingsGroupsBeforeFiles(t *testing.T) {
	tests := []struct {
		name  string
		nodes []*Node
		want  []string
	}{
		{
			name: "mixed types",
			nodes: []*Node{
				NewFile("/x/zeta.txt"),
				NewGroup("beta"),
				NewFile("/x/alpha.txt"),
				NewGroup("alpha"),
			},
			want: []string{"alpha", "beta", "alpha.txt", "zeta.txt"},
		},
		{
			name: "case-insensitive labels",
			nodes: []*Node{
				NewGroup("Zebra"),
				NewGroup("apple"),
				NewGroup("Mango"),
			},
			want: []string{"apple", "Mango", "Zebra"},
		},
		{
			name:  "empty list",
			nodes: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortSiblings(tt.nodes)
			got := labels(tt.nodes)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortForestRecursive(t *testing.T) {
	inner := NewGroup("inner")
	inner.Children = []*Node{
		NewFile("/p/c.txt"),
		NewGroup("z"),
		NewFile("/p/a.txt"),
	}
	roots := []*Node{
		NewFile("/p/root.txt"),
		inner,
	}

	SortForest(roots)

	if got := labels(roots); !reflect.DeepEqual(got, []string{"inner", "root.txt"}) {
		t.Errorf("root order = %v", got)
	}
	if got := labels(inner.Children); !reflect.DeepEqual(got, []string{"z", "a.txt", "c.txt"}) {
		t.Errorf("inner order = %v", got)
	}
}

func TestSortForestIdempotent(t *testing.T) {
	build := func() []*Node {
		g := NewGroup("g")
		g.Children = []*Node{NewFile("/f/b"), NewGroup("a"), NewFile("/f/a")}
		return []*Node{NewFile("/f/top"), g, NewGroup("other")}
	}

	once := build()
	SortForest(once)

	twice := build()
	SortForest(twice)
	SortForest(twice)

	var flatten func(ns []*Node) []string
	flatten = func(ns []*Node) []string {
		var out []string
		for _, n := range ns {
			out = append(out, n.Label)
			out = append(out, flatten(n.Children)...)
		}
		return out
	}

	if !reflect.DeepEqual(flatten(once), flatten(twice)) {
		t.Errorf("double sort diverged: %v vs %v", flatten(once), flatten(twice))
	}
}

func TestSortOrderingLaw(t *testing.T) {
	siblings := []*Node{
		NewFile("/d/m.txt"), NewGroup("q"), NewFile("/d/a.txt"),
		NewGroup("b"), NewGroup("a"), NewFile("/d/z.txt"),
	}
	SortSiblings(siblings)

	sawFile := false
	for i, n := range siblings {
		if n.Type == TypeFile {
			sawFile = true
		} else if sawFile {
			t.Fatalf("group %q at %d after a file", n.Label, i)
		}
		if i > 0 && siblings[i-1].Type == n.Type {
			if Less(n, siblings[i-1]) {
				t.Errorf("labels out of order at %d: %q before %q", i, siblings[i-1].Label, n.Label)
			}
		}
	}
}
