package dto

import "github.com/jhoicas/inventario-dashboard/internal/domain/entity"

// Criterios de orden del listado de proveedores.
const (
	SupplierSortName    = "name"
	SupplierSortRating  = "rating"
	SupplierSortCreated = "created"
	SupplierSortUpdated = "updated"
)

// CreateSupplierRequest entrada para crear un proveedor. Rating y KPIs inician en cero.
type CreateSupplierRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"max=50"`
	Address       string   `json:"address" validate:"max=300"`
	ContactPerson string   `json:"contactPerson" validate:"max=200"`
	CompanyType   string   `json:"companyType" validate:"max=100"`
	Categories    []string `json:"categories" validate:"dive,min=1"`
}

// UpdateSupplierRequest actualización parcial de un proveedor.
type UpdateSupplierRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Email         *string  `json:"email" validate:"omitempty,email"`
	Phone         *string  `json:"phone" validate:"omitempty,max=50"`
	Address       *string  `json:"address" validate:"omitempty,max=300"`
	ContactPerson *string  `json:"contactPerson" validate:"omitempty,max=200"`
	CompanyType   *string  `json:"companyType" validate:"omitempty,max=100"`
	Status        *string  `json:"status" validate:"omitempty,oneof=active inactive"`
	Categories    []string `json:"categories" validate:"omitempty,dive,min=1"`
}

// Patch convierte la petición en el patch de dominio.
func (r UpdateSupplierRequest) Patch() entity.SupplierPatch {
	return entity.SupplierPatch{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		ContactPerson: r.ContactPerson,
		CompanyType:   r.CompanyType,
		Status:        r.Status,
		Categories:    r.Categories,
	}
}

// UpdateSupplierRatingRequest calificaciones 0–5. Overall se calcula.
type UpdateSupplierRatingRequest struct {
	Delivery      float64 `json:"delivery" validate:"min=0,max=5"`
	Quality       float64 `json:"quality" validate:"min=0,max=5"`
	Pricing       float64 `json:"pricing" validate:"min=0,max=5"`
	Communication float64 `json:"communication" validate:"min=0,max=5"`
}

// UpdateSupplierKPIsRequest mezcla parcial de KPIs.
type UpdateSupplierKPIsRequest struct {
	AvgDeliveryTime      *float64 `json:"avgDeliveryTime" validate:"omitempty,min=0"`
	OnTimeDeliveryRate   *float64 `json:"onTimeDeliveryRate" validate:"omitempty,min=0,max=100"`
	QualityScore         *float64 `json:"qualityScore" validate:"omitempty,min=0,max=100"`
	PriceCompetitiveness *float64 `json:"priceCompetitiveness" validate:"omitempty,min=0,max=100"`
	ResponseTime         *float64 `json:"responseTime" validate:"omitempty,min=0"`
}

// Patch convierte la petición en el patch de KPIs.
func (r UpdateSupplierKPIsRequest) Patch() entity.SupplierKPIsPatch {
	return entity.SupplierKPIsPatch{
		AvgDeliveryTime:      r.AvgDeliveryTime,
		OnTimeDeliveryRate:   r.OnTimeDeliveryRate,
		QualityScore:         r.QualityScore,
		PriceCompetitiveness: r.PriceCompetitiveness,
		ResponseTime:         r.ResponseTime,
	}
}

// SupplierFilter filtros, orden y paginación del listado de proveedores.
type SupplierFilter struct {
	PageRequest
	Search    string  `query:"search"`
	Status    string  `query:"status" validate:"omitempty,oneof=active inactive"`
	Category  string  `query:"category"`
	MinRating float64 `query:"minRating" validate:"min=0,max=5"`
	SortBy    string  `query:"sortBy" validate:"omitempty,oneof=name rating created updated"`
}

// SupplierStatistics resumen del módulo de proveedores.
type SupplierStatistics struct {
	Total                int                `json:"total"`
	Active               int                `json:"active"`
	Inactive             int                `json:"inactive"`
	AverageRating        float64            `json:"averageRating"` // solo activos, 1 decimal
	TopRated             []*entity.Supplier `json:"topRated"`      // 5 activos mejor calificados
	CategoryDistribution map[string]int     `json:"categoryDistribution"`
}
