package convert

// TypeMap maps a native alias to the type it stands for.
type TypeMap map[string]string

// TypeMaps is an ordered, append-only list of alias maps. Earlier maps are
// consulted first on every resolution pass.
type TypeMaps struct {
	maps []TypeMap
}

// NewTypeMaps returns a list holding the given maps in order.
func NewTypeMaps(maps ...TypeMap) *TypeMaps {
	tm := &TypeMaps{}
	for _, m := range maps {
		tm.Append(m)
	}
	return tm
}

// Append adds m after all existing maps. The map is copied; empty maps are
// ignored.
func (tm *TypeMaps) Append(m TypeMap) {
	if len(m) == 0 {
		return
	}
	cp := make(TypeMap, len(m))
	for k, v := range m {
		cp[k] = v
	}
	tm.maps = append(tm.maps, cp)
}

// Len returns the number of maps.
func (tm *TypeMaps) Len() int {
	return len(tm.maps)
}

// Lookup returns the direct alias of name in the i-th map.
func (tm *TypeMaps) Lookup(i int, name string) (string, bool) {
	to, ok := tm.maps[i][name]
	return to, ok
}

// Resolve follows aliases until no map applies any more.
func (tm *TypeMaps) Resolve(name string) string {
	chain := tm.Chain(name)
	return chain[len(chain)-1]
}

// Chain returns name followed by every alias it resolves through. The walk
// applies the maps in order, repeating full passes until nothing changes;
// an alias cycle ends the walk at the last new name.
func (tm *TypeMaps) Chain(name string) []string {
	chain := []string{name}
	seen := map[string]bool{name: true}

	for changed := true; changed; {
		changed = false
		for _, m := range tm.maps {
			to, ok := m[name]
			if !ok || seen[to] {
				continue
			}
			seen[to] = true
			chain = append(chain, to)
			name = to
			changed = true
		}
	}
	return chain
}
