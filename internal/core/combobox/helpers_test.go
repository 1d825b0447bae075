package combobox

type fruit struct{ name string }

func fruitLabel(f *fruit) string { return f.name }

func fruits(names ...string) []*fruit {
	out := make([]*fruit, len(names))
	for i, n := range names {
		out[i] = &fruit{name: n}
	}
	return out
}

func labels(items []*fruit) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}
