package bpevocab

// SymbolTable maps a symbol id to the byte string it expands to.
// Expansions are flattened at assignment time, so the table never stores
// tree pointers: expand(compound) already equals expand(left)+expand(right).
type SymbolTable struct {
	expansions map[Symbol][]byte
}

// NewDefaultSymbolTable returns a table populated with all 256 single-byte
// entries, each expanding to its own byte value.
func NewDefaultSymbolTable() *SymbolTable {
	t := &SymbolTable{expansions: make(map[Symbol][]byte, 512)}
	for b := 0; b < 256; b++ {
		t.expansions[Symbol(b)] = []byte{byte(b)}
	}
	return t
}

// Expand returns the byte string a symbol id expands to, if present.
func (t *SymbolTable) Expand(id Symbol) ([]byte, bool) {
	b, ok := t.expansions[id]
	return b, ok
}

// Contains reports whether id is currently present in the table.
func (t *SymbolTable) Contains(id Symbol) bool {
	_, ok := t.expansions[id]
	return ok
}

// Len returns the number of distinct symbol ids currently in the table.
func (t *SymbolTable) Len() int {
	return len(t.expansions)
}

// Assign allocates a fresh compound symbol for pair and inserts its
// flattened expansion into the table. If hint is non-nil and not already
// in use, it is used as the new id; otherwise the smallest unused id
// >= 256 is chosen. Both components of pair must already be in the table.
func (t *SymbolTable) Assign(pair Pair, hint *Symbol) Symbol {
	left, right := Unpack(pair)

	newID := firstCompoundSymbol
	if hint != nil && !t.Contains(*hint) {
		newID = *hint
	} else {
		for t.Contains(newID) {
			newID++
		}
	}

	leftBytes, _ := t.Expand(left)
	rightBytes, _ := t.Expand(right)
	expansion := make([]byte, 0, len(leftBytes)+len(rightBytes))
	expansion = append(expansion, leftBytes...)
	expansion = append(expansion, rightBytes...)

	t.expansions[newID] = expansion
	return newID
}

// Prune removes every id not referenced by seq, except that ids < 256 are
// kept when keepSingletons is true. It returns the number of ids removed.
func (t *SymbolTable) Prune(seq []Symbol, keepSingletons bool) int {
	referenced := make(map[Symbol]struct{}, len(seq))
	for _, s := range seq {
		referenced[s] = struct{}{}
	}

	var toRemove []Symbol
	for id := range t.expansions {
		if _, ok := referenced[id]; ok {
			continue
		}
		if keepSingletons && id < firstCompoundSymbol {
			continue
		}
		toRemove = append(toRemove, id)
	}

	for _, id := range toRemove {
		delete(t.expansions, id)
	}
	return len(toRemove)
}
