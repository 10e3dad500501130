package usecase

// MaxCompare es la cantidad máxima de productos que se comparan a la vez.
const MaxCompare = 4

// SelectionSet es la lista ordenada de productos elegidos para comparar.
// No es segura para uso concurrente; el dueño sincroniza.
type SelectionSet struct {
	ids []string
}

func NewSelectionSet(ids ...string) *SelectionSet {
	s := &SelectionSet{}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add agrega id al final si no estaba y hay lugar. Devuelve si cambió el conjunto.
func (s *SelectionSet) Add(id string) bool {
	if id == "" || len(s.ids) >= MaxCompare || s.Contains(id) {
		return false
	}
	s.ids = append(s.ids, id)
	return true
}

// Remove quita id si está. Devuelve si cambió el conjunto.
func (s *SelectionSet) Remove(id string) bool {
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			return true
		}
	}
	return false
}

func (s *SelectionSet) Contains(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// IDs devuelve una copia en orden de inserción.
func (s *SelectionSet) IDs() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

func (s *SelectionSet) Len() int { return len(s.ids) }

func (s *SelectionSet) Full() bool { return len(s.ids) >= MaxCompare }

func (s *SelectionSet) Clear() { s.ids = nil }
