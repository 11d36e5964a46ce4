package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
)

// ResolveRegion busca la región a la que pertenece el código de país (ISO 3166-1 alpha-2).
func ResolveRegion(ctx context.Context, repo repository.RegionRepository, countryCode string) (*entity.Region, error) {
	code := strings.ToLower(strings.TrimSpace(countryCode))
	if len(code) != 2 {
		return nil, fmt.Errorf("%w: código de país %q", domain.ErrInvalidInput, countryCode)
	}
	region, err := repo.GetByCountryCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("obtener región: %w", err)
	}
	if region == nil {
		return nil, domain.ErrRegionNotFound
	}
	return region, nil
}

// ToRegionResponse mapea la entidad a su DTO.
func ToRegionResponse(r *entity.Region) dto.RegionResponse {
	if r == nil {
		return dto.RegionResponse{}
	}
	return dto.RegionResponse{
		ID:           r.ID,
		Name:         r.Name,
		CurrencyCode: r.CurrencyCode,
		TaxRate:      r.TaxRate,
		Countries:    r.Countries,
	}
}

// ToDeliveryInfo mapea el formulario de entrega a la entidad.
func ToDeliveryInfo(in dto.DeliveryRequest) entity.DeliveryInfo {
	return entity.DeliveryInfo{
		SenderName:     strings.TrimSpace(in.SenderName),
		SenderEmail:    strings.TrimSpace(in.SenderEmail),
		ReceiverName:   strings.TrimSpace(in.ReceiverName),
		ReceiverEmail:  strings.TrimSpace(in.ReceiverEmail),
		DeliveryMethod: in.DeliveryMethod,
	}
}
