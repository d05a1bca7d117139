package sus

// maxBpmIdentifiers is the size of the identifier pool. Numbering starts
// at 1 so the all zero identifier is never produced.
const maxBpmIdentifiers = 36*36 - 1

// BpmTable assigns each distinct tempo value a two character base-36
// identifier, in order of first appearance.
type BpmTable struct {
	identifiers map[float64]string
}

func NewBpmTable() *BpmTable {
	return &BpmTable{identifiers: map[float64]string{}}
}

// Identifier returns the identifier for value, assigning the next free
// one on first sight. fresh reports whether this call assigned it.
func (t *BpmTable) Identifier(value float64) (id string, fresh bool, err error) {
	if id, ok := t.identifiers[value]; ok {
		return id, false, nil
	}
	next := len(t.identifiers) + 1
	if next > maxBpmIdentifiers {
		return "", false, &ResourceExhaustedError{Resource: "bpm identifiers", Limit: maxBpmIdentifiers}
	}
	id = formatBase36(next, 2)
	t.identifiers[value] = id
	return id, true, nil
}
