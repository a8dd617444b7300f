package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/labtrack/labstock-api/internal/domain/entity"
	"github.com/labtrack/labstock-api/internal/domain/stock"
)

// CreateComponentRequest body para POST /api/components.
type CreateComponentRequest struct {
	ComponentName        string          `json:"component_name" validate:"required,min=1,max=200"`
	PartNumber           string          `json:"part_number" validate:"required,min=1,max=100"`
	ManufacturerSupplier string          `json:"manufacturer_supplier,omitempty"`
	Category             string          `json:"category,omitempty"`
	LocationBin          string          `json:"location_bin,omitempty"`
	Quantity             int64           `json:"quantity" validate:"min=0"`
	CriticalLowThreshold int64           `json:"critical_low_threshold" validate:"min=0"`
	UnitPrice            decimal.Decimal `json:"unit_price,omitempty"`
	DatasheetLink        string          `json:"datasheet_link,omitempty"`
	ImageURL             string          `json:"image_url,omitempty"`
}

// UpdateComponentRequest body para PUT /api/components/:id.
// La cantidad no se actualiza por aquí: solo el motor de ledger la escribe.
type UpdateComponentRequest struct {
	ComponentName        string          `json:"component_name" validate:"required,min=1,max=200"`
	PartNumber           string          `json:"part_number" validate:"required,min=1,max=100"`
	ManufacturerSupplier string          `json:"manufacturer_supplier,omitempty"`
	Category             string          `json:"category,omitempty"`
	LocationBin          string          `json:"location_bin,omitempty"`
	CriticalLowThreshold int64           `json:"critical_low_threshold" validate:"min=0"`
	UnitPrice            decimal.Decimal `json:"unit_price,omitempty"`
	DatasheetLink        string          `json:"datasheet_link,omitempty"`
	ImageURL             string          `json:"image_url,omitempty"`
}

// ComponentResponse salida de un componente con sus flags derivados.
type ComponentResponse struct {
	ID                   string          `json:"id"`
	ComponentName        string          `json:"component_name"`
	PartNumber           string          `json:"part_number"`
	ManufacturerSupplier string          `json:"manufacturer_supplier,omitempty"`
	Category             string          `json:"category,omitempty"`
	LocationBin          string          `json:"location_bin,omitempty"`
	Quantity             int64           `json:"quantity"`
	CriticalLowThreshold int64           `json:"critical_low_threshold"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	DatasheetLink        string          `json:"datasheet_link,omitempty"`
	ImageURL             string          `json:"image_url,omitempty"`
	LastOutwardAt        time.Time       `json:"last_outward_at"`
	IsLowStock           bool            `json:"is_low_stock"`
	IsStale              bool            `json:"is_stale"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ToComponentResponse mapea la entidad con sus flags al DTO de salida.
func ToComponentResponse(c *entity.Component, flags stock.Flags) ComponentResponse {
	return ComponentResponse{
		ID:                   c.ID,
		ComponentName:        c.ComponentName,
		PartNumber:           c.PartNumber,
		ManufacturerSupplier: c.ManufacturerSupplier,
		Category:             c.Category,
		LocationBin:          c.LocationBin,
		Quantity:             c.Quantity,
		CriticalLowThreshold: c.CriticalLowThreshold,
		UnitPrice:            c.UnitPrice,
		DatasheetLink:        c.DatasheetLink,
		ImageURL:             c.ImageURL,
		LastOutwardAt:        c.LastOutwardAt,
		IsLowStock:           flags.IsLowStock,
		IsStale:              flags.IsStale,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

// ComponentListResponse página del catálogo.
type ComponentListResponse struct {
	Components []ComponentResponse `json:"components"`
	Page       PageResponse        `json:"page"`
}
