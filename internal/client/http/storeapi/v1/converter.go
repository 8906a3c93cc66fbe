package storeclient

import (
	"github.com/samber/lo"

	"github.com/you-humble/paypal-express/internal/model"
)

func sessionContextToModel(dto salesChannelContextDTO) *model.SessionContext {
	return &model.SessionContext{
		Token:           dto.Token,
		CurrencyISO:     dto.Currency.IsoCode,
		PaymentMethodID: dto.PaymentMethod.ID,
	}
}

func paymentMethodsToModel(dtos []paymentMethodDTO) []model.PaymentMethod {
	return lo.Map(dtos, func(d paymentMethodDTO, _ int) model.PaymentMethod {
		return model.PaymentMethod{
			ID:        d.ID,
			Name:      d.Name,
			ShortName: d.ShortName,
		}
	})
}

func cartToModel(dto cartDTO) *model.Cart {
	items := lo.Map(dto.LineItems, func(li lineItemDTO, _ int) model.LineItem {
		return model.LineItem{
			ID:           li.ID,
			ReferencedID: li.ReferencedID,
			Type:         li.Type,
			Quantity:     li.Quantity,
		}
	})
	return &model.Cart{Token: dto.Token, LineItems: items}
}

func productLineItem(productID string, quantity int) lineItemDTO {
	return lineItemDTO{
		ID:           productID,
		ReferencedID: productID,
		Type:         model.LineItemTypeProduct,
		Quantity:     quantity,
	}
}
