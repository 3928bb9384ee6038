package usecase

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/jhoicas/inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/inventario-dashboard/internal/domain/inventory"
	"github.com/jhoicas/inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/inventario-dashboard/pkg/textutil"
)

const topRatedSuppliers = 5

// SupplierUseCase gestión de proveedores: filtros, calificaciones, KPIs y estadísticas.
type SupplierUseCase struct {
	repo repository.SupplierRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo}
}

// List filtra, ordena y pagina. Sin SortBy se conserva el orden del almacén (más recientes primero).
func (uc *SupplierUseCase) List(ctx context.Context, f dto.SupplierFilter) (*dto.PagedResponse[*entity.Supplier], error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	f.DefaultPage()

	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]*entity.Supplier, 0, len(all))
	for _, s := range all {
		if matchesSupplier(s, f) {
			filtered = append(filtered, s)
		}
	}
	sortSuppliers(filtered, f.SortBy)

	total := len(filtered)
	start := (f.Page - 1) * f.Limit
	end := start + f.Limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return &dto.PagedResponse[*entity.Supplier]{
		Data:       filtered[start:end],
		Total:      total,
		Page:       f.Page,
		Limit:      f.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(f.Limit))),
	}, nil
}

func matchesSupplier(s *entity.Supplier, f dto.SupplierFilter) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Category != "" && !containsString(s.Categories, f.Category) {
		return false
	}
	if f.MinRating > 0 && s.Rating.Overall < f.MinRating {
		return false
	}
	fields := append([]string{s.Name, s.Email, s.CompanyType}, s.Categories...)
	return textutil.ContainsFold(f.Search, fields...)
}

func sortSuppliers(ss []*entity.Supplier, by string) {
	switch by {
	case dto.SupplierSortName:
		c := textutil.Collator()
		sort.SliceStable(ss, func(i, j int) bool { return c.CompareString(ss[i].Name, ss[j].Name) < 0 })
	case dto.SupplierSortRating:
		sortByRating(ss)
	case dto.SupplierSortCreated:
		sort.SliceStable(ss, func(i, j int) bool { return ss[i].CreatedAt.After(ss[j].CreatedAt) })
	case dto.SupplierSortUpdated:
		sort.SliceStable(ss, func(i, j int) bool { return ss[i].UpdatedAt.After(ss[j].UpdatedAt) })
	}
}

func sortByRating(ss []*entity.Supplier) {
	sort.SliceStable(ss, func(i, j int) bool { return ss[i].Rating.Overall > ss[j].Rating.Overall })
}

func containsString(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	return uc.repo.GetByID(ctx, id)
}

// Create crea el proveedor activo, con calificaciones y KPIs en cero.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	categories := in.Categories
	if categories == nil {
		categories = []string{}
	}
	return uc.repo.Create(ctx, &entity.Supplier{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         in.Phone,
		Address:       in.Address,
		ContactPerson: in.ContactPerson,
		CompanyType:   in.CompanyType,
		Status:        entity.SupplierStatusActive,
		Categories:    categories,
	})
}

func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	return uc.repo.Update(ctx, id, in.Patch())
}

// Delete borrado lógico (status inactive).
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// UpdateRating reemplaza las cuatro calificaciones; Overall es su promedio con un decimal.
func (uc *SupplierUseCase) UpdateRating(ctx context.Context, id string, in dto.UpdateSupplierRatingRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	rating := entity.SupplierRating{
		Delivery:      in.Delivery,
		Quality:       in.Quality,
		Pricing:       in.Pricing,
		Communication: in.Communication,
	}
	rating.Overall = inventory.SupplierOverallRating(rating)
	return uc.repo.Update(ctx, id, entity.SupplierPatch{Rating: &rating})
}

// UpdateKPIs mezcla los KPIs enviados con los actuales.
func (uc *SupplierUseCase) UpdateKPIs(ctx context.Context, id string, in dto.UpdateSupplierKPIsRequest) (*entity.Supplier, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	kpis := in.Patch()
	return uc.repo.Update(ctx, id, entity.SupplierPatch{KPIs: &kpis})
}

// Statistics totales, calificación promedio y distribución por categoría de los proveedores activos.
func (uc *SupplierUseCase) Statistics(ctx context.Context) (*dto.SupplierStatistics, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	active := make([]*entity.Supplier, 0, len(all))
	for _, s := range all {
		if s.Status == entity.SupplierStatusActive {
			active = append(active, s)
		}
	}
	stats := &dto.SupplierStatistics{
		Total:                len(all),
		Active:               len(active),
		Inactive:             len(all) - len(active),
		TopRated:             []*entity.Supplier{},
		CategoryDistribution: make(map[string]int),
	}
	if len(active) == 0 {
		return stats, nil
	}
	var sum float64
	for _, s := range active {
		sum += s.Rating.Overall
		for _, c := range s.Categories {
			stats.CategoryDistribution[c]++
		}
	}
	stats.AverageRating = math.Round(sum/float64(len(active))*10) / 10

	top := append([]*entity.Supplier(nil), active...)
	sortByRating(top)
	if len(top) > topRatedSuppliers {
		top = top[:topRatedSuppliers]
	}
	stats.TopRated = top
	return stats, nil
}

// Categories categorías distintas de todos los proveedores, en orden alfabético.
func (uc *SupplierUseCase) Categories(ctx context.Context) ([]string, error) {
	all, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var cats []string
	for _, s := range all {
		cats = append(cats, s.Categories...)
	}
	return textutil.Distinct(cats), nil
}
