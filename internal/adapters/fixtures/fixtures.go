package fixtures

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phenrril/retailq/internal/domain"
)

//go:embed fixtures.yaml
var embedded []byte

// Data es el conjunto de datos fijos que la app carga una sola vez.
type Data struct {
	Products  []domain.Product  `yaml:"products"`
	Orders    []domain.Order    `yaml:"orders"`
	Customers []domain.Customer `yaml:"customers"`
}

// Load lee los fixtures de path, o los embebidos si path está vacío.
func Load(path string) (*Data, error) {
	raw := embedded
	if strings.TrimSpace(path) != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate controla las invariantes de los datos fijos: ids únicos, stock no negativo,
// rating entre 0 y 5 y estados conocidos.
func (d *Data) Validate() error {
	var errs []error
	seen := map[string]struct{}{}
	for i, p := range d.Products {
		if strings.TrimSpace(p.ID) == "" {
			errs = append(errs, fmt.Errorf("product %d: id vacío", i))
			continue
		}
		if _, dup := seen[p.ID]; dup {
			errs = append(errs, fmt.Errorf("product %s: id duplicado", p.ID))
		}
		seen[p.ID] = struct{}{}
		if p.StockCount < 0 {
			errs = append(errs, fmt.Errorf("product %s: stock negativo", p.ID))
		}
		if p.Rating < 0 || p.Rating > 5 {
			errs = append(errs, fmt.Errorf("product %s: rating fuera de rango", p.ID))
		}
	}
	for _, o := range d.Orders {
		if !o.Status.Valid() {
			errs = append(errs, fmt.Errorf("order %s: estado %q", o.ID, o.Status))
		}
	}
	for _, c := range d.Customers {
		if !c.Status.Valid() {
			errs = append(errs, fmt.Errorf("customer %s: estado %q", c.ID, c.Status))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid fixtures: %w", errors.Join(errs...))
	}
	return nil
}
