package entity

import (
	"slices"
	"time"
)

// Estados de proveedor. El borrado es lógico: pasa a inactive.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
)

// SupplierRating calificaciones de un proveedor (0–5). Overall es el promedio de las otras cuatro.
type SupplierRating struct {
	Overall       float64 `json:"overall"`
	Delivery      float64 `json:"delivery"`
	Quality       float64 `json:"quality"`
	Pricing       float64 `json:"pricing"`
	Communication float64 `json:"communication"`
}

// SupplierKPIs indicadores de desempeño del proveedor.
type SupplierKPIs struct {
	AvgDeliveryTime      float64 `json:"avgDeliveryTime"`      // días
	OnTimeDeliveryRate   float64 `json:"onTimeDeliveryRate"`   // %
	QualityScore         float64 `json:"qualityScore"`         // %
	PriceCompetitiveness float64 `json:"priceCompetitiveness"` // %
	ResponseTime         float64 `json:"responseTime"`         // horas
}

// Supplier proveedor.
type Supplier struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	ContactPerson string         `json:"contactPerson,omitempty"`
	CompanyType   string         `json:"companyType"`
	Status        string         `json:"status"`
	Rating        SupplierRating `json:"rating"`
	KPIs          SupplierKPIs   `json:"kpis"`
	Categories    []string       `json:"categories"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// Clone copia profunda (Categories no se comparte).
func (s Supplier) Clone() Supplier {
	if s.Categories != nil {
		s.Categories = slices.Clone(s.Categories)
	}
	return s
}

// SupplierPatch actualización parcial de un proveedor. Categories, si no es nil, reemplaza la lista;
// KPIs se mezcla campo a campo.
type SupplierPatch struct {
	Name          *string
	Email         *string
	Phone         *string
	Address       *string
	ContactPerson *string
	CompanyType   *string
	Status        *string
	Rating        *SupplierRating
	KPIs          *SupplierKPIsPatch
	Categories    []string
}

// Apply mezcla el patch sobre s.
func (patch SupplierPatch) Apply(s *Supplier) {
	if patch.Name != nil {
		s.Name = *patch.Name
	}
	if patch.Email != nil {
		s.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.Phone = *patch.Phone
	}
	if patch.Address != nil {
		s.Address = *patch.Address
	}
	if patch.ContactPerson != nil {
		s.ContactPerson = *patch.ContactPerson
	}
	if patch.CompanyType != nil {
		s.CompanyType = *patch.CompanyType
	}
	if patch.Status != nil {
		s.Status = *patch.Status
	}
	if patch.Rating != nil {
		s.Rating = *patch.Rating
	}
	if patch.KPIs != nil {
		patch.KPIs.Apply(&s.KPIs)
	}
	if patch.Categories != nil {
		s.Categories = slices.Clone(patch.Categories)
	}
}

// SupplierKPIsPatch mezcla parcial de KPIs (solo los campos enviados).
type SupplierKPIsPatch struct {
	AvgDeliveryTime      *float64
	OnTimeDeliveryRate   *float64
	QualityScore         *float64
	PriceCompetitiveness *float64
	ResponseTime         *float64
}

// Apply mezcla el patch sobre k.
func (patch SupplierKPIsPatch) Apply(k *SupplierKPIs) {
	if patch.AvgDeliveryTime != nil {
		k.AvgDeliveryTime = *patch.AvgDeliveryTime
	}
	if patch.OnTimeDeliveryRate != nil {
		k.OnTimeDeliveryRate = *patch.OnTimeDeliveryRate
	}
	if patch.QualityScore != nil {
		k.QualityScore = *patch.QualityScore
	}
	if patch.PriceCompetitiveness != nil {
		k.PriceCompetitiveness = *patch.PriceCompetitiveness
	}
	if patch.ResponseTime != nil {
		k.ResponseTime = *patch.ResponseTime
	}
}
