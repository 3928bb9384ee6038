package memory

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
)

//go:embed fixtures/*.json
var embeddedFixtures embed.FS

// Archivos de fixtures (JSON con las claves camelCase de las entidades).
const (
	productsFile       = "products.json"
	stockLevelsFile    = "stock_levels.json"
	ordersFile         = "orders.json"
	stockMovementsFile = "stock_movements.json"
	suppliersFile      = "suppliers.json"
	invoicesFile       = "invoices.json"
)

// Fixtures datos iniciales del almacén.
type Fixtures struct {
	Products       []*entity.Product
	StockLevels    []*entity.StockLevel
	Orders         []*entity.Order
	StockMovements []*entity.StockMovement
	Suppliers      []*entity.Supplier
	Invoices       []*entity.Invoice
}

// LoadFixtures lee los fixtures embebidos o, si dir no está vacío, los de ese directorio.
// En un directorio, un archivo ausente deja vacía la colección correspondiente.
func LoadFixtures(dir string) (*Fixtures, error) {
	if dir == "" {
		sub, err := fs.Sub(embeddedFixtures, "fixtures")
		if err != nil {
			return nil, fmt.Errorf("fixtures embebidos: %w", err)
		}
		return readFixtures(sub)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("seed dir %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("seed dir %q no es un directorio", dir)
	}
	return readFixtures(os.DirFS(dir))
}

func readFixtures(fsys fs.FS) (*Fixtures, error) {
	f := &Fixtures{}
	steps := []struct {
		name string
		dst  any
	}{
		{productsFile, &f.Products},
		{stockLevelsFile, &f.StockLevels},
		{ordersFile, &f.Orders},
		{stockMovementsFile, &f.StockMovements},
		{suppliersFile, &f.Suppliers},
		{invoicesFile, &f.Invoices},
	}
	for _, s := range steps {
		if err := readJSON(fsys, s.name, s.dst); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func readJSON(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", name, err)
	}
	return nil
}
