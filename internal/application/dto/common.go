package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tank-inventory-api/internal/domain"
	"github.com/jhoicas/tank-inventory-api/internal/domain/entity"
)

// Paginación de la bitácora.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// PageRequest paginación por número de página.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// DefaultPage aplica valores por defecto: page >= 1, limit 50 (máximo 100).
func (p *PageRequest) DefaultPage() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

// Offset desplazamiento de la página (requiere DefaultPage antes).
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// NewPageResponse calcula total_pages y los indicadores de navegación.
func NewPageResponse(p PageRequest, total int) PageResponse {
	pages := 0
	if p.Limit > 0 {
		pages = (total + p.Limit - 1) / p.Limit
	}
	return PageResponse{
		Page:        p.Page,
		Limit:       p.Limit,
		Total:       total,
		TotalPages:  pages,
		HasNextPage: p.Page < pages,
		HasPrevPage: p.Page > 1,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// PropertyValueDTO valor de propiedad en requests y responses. Value null = no medido.
type PropertyValueDTO struct {
	PropertyID string           `json:"property_id"`
	Value      *decimal.Decimal `json:"value"`
}

// ToPropertyValues convierte la forma de transporte a la de dominio.
func ToPropertyValues(in []PropertyValueDTO) []entity.PropertyValue {
	out := make([]entity.PropertyValue, 0, len(in))
	for _, v := range in {
		if v.Value == nil {
			out = append(out, entity.UnmeasuredValue(v.PropertyID))
			continue
		}
		out = append(out, entity.MeasuredValue(v.PropertyID, *v.Value))
	}
	return out
}

// FromPropertyValues convierte valores de dominio a la forma de transporte.
func FromPropertyValues(in []entity.PropertyValue) []PropertyValueDTO {
	out := make([]PropertyValueDTO, 0, len(in))
	for _, v := range in {
		item := PropertyValueDTO{PropertyID: v.PropertyID}
		if v.Value.Valid {
			d := v.Value.Decimal
			item.Value = &d
		}
		out = append(out, item)
	}
	return out
}

// ValidatePropertyValues verifica que cada valor tenga property_id.
func ValidatePropertyValues(field string, in []PropertyValueDTO, verr *domain.ValidationError) {
	for _, v := range in {
		if v.PropertyID == "" {
			verr.Add(field, "cada propiedad requiere property_id")
			return
		}
	}
}
