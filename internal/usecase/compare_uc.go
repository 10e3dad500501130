package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/phenrril/retailq/internal/domain"
	"github.com/phenrril/retailq/internal/money"
)

const availableLimit = 5

// Comparison es el estado que ve la vista de comparación.
type Comparison struct {
	Selected []string `json:"selected"`
	Full     bool     `json:"full"`
	Matrix   Matrix   `json:"matrix"`
}

// CompareUC guarda una selección por sesión de comparación. Cada SelectionSet se
// toca sólo con mu tomado.
type CompareUC struct {
	Products domain.ProductRepo

	mu       sync.Mutex
	sessions map[string]*SelectionSet
}

func NewCompareUC(products domain.ProductRepo) *CompareUC {
	return &CompareUC{Products: products, sessions: map[string]*SelectionSet{}}
}

func (uc *CompareUC) session(id string) *SelectionSet {
	if uc.sessions == nil {
		uc.sessions = map[string]*SelectionSet{}
	}
	s, ok := uc.sessions[id]
	if !ok {
		s = NewSelectionSet()
		uc.sessions[id] = s
	}
	return s
}

// Add agrega un producto a la sesión. Un id que no está en el catálogo devuelve
// domain.ErrNotFound; un id repetido o la selección llena no cambian nada.
func (uc *CompareUC) Add(ctx context.Context, session, productID string) (bool, error) {
	productID = strings.TrimSpace(productID)
	if _, err := uc.Products.FindByID(ctx, productID); err != nil {
		return false, err
	}
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.session(session).Add(productID), nil
}

// Remove quita el producto de la sesión. Sólo Add crea sesiones: una sesión
// desconocida no se registra y devuelve false, y una que queda vacía se descarta.
func (uc *CompareUC) Remove(ctx context.Context, session, productID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[session]
	if !ok {
		return false
	}
	changed := s.Remove(strings.TrimSpace(productID))
	if s.Len() == 0 {
		delete(uc.sessions, session)
	}
	return changed
}

// Clear descarta la sesión (equivale a desmontar la vista).
func (uc *CompareUC) Clear(ctx context.Context, session string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.sessions, session)
}

func (uc *CompareUC) Selected(session string) []string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if s, ok := uc.sessions[session]; ok {
		return s.IDs()
	}
	return []string{}
}

func (uc *CompareUC) View(ctx context.Context, session string, f money.Formatter) (*Comparison, error) {
	ids := uc.Selected(session)
	m, err := uc.Matrix(ctx, ids, f)
	if err != nil {
		return nil, err
	}
	return &Comparison{Selected: ids, Full: len(ids) >= MaxCompare, Matrix: m}, nil
}

// Matrix proyecta una lista de ids arbitraria, sin pasar por una sesión.
func (uc *CompareUC) Matrix(ctx context.Context, ids []string, f money.Formatter) (Matrix, error) {
	catalog, err := uc.Products.All(ctx)
	if err != nil {
		return Matrix{}, err
	}
	return Project(NewSelectionSet(ids...).IDs(), catalog, f), nil
}

// Available lista candidatos para agregar a la sesión (máximo 5).
func (uc *CompareUC) Available(ctx context.Context, session, query string) ([]domain.Product, error) {
	catalog, err := uc.Products.All(ctx)
	if err != nil {
		return nil, err
	}
	sel := NewSelectionSet(uc.Selected(session)...)
	return Available(catalog, sel, query, availableLimit), nil
}
