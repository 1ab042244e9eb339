package action

import "farmstead/internal/domain/farm"

type selectActionHandler struct{}

func (selectActionHandler) Apply(ac *ActionContext) error {
	if err := ac.Model.SelectItem(ac.Intent.Item); err != nil {
		return err
	}
	ac.emit(farm.EventItemSelected, map[string]any{"item": ac.Intent.Item})
	return nil
}

type buyActionHandler struct{}

func (buyActionHandler) Apply(ac *ActionContext) error {
	item, err := resolveItem(ac.Model, ac.Intent)
	if err != nil {
		return err
	}
	if err := ac.Model.Buy(item); err != nil {
		return err
	}
	price, _ := ac.Model.Catalog().BuyPrice(item)
	ac.emit(farm.EventItemBought, map[string]any{
		"item":  item,
		"price": price,
		"money": ac.Model.Player().Money(),
	})
	return nil
}

type sellActionHandler struct{}

func (sellActionHandler) Apply(ac *ActionContext) error {
	item, err := resolveItem(ac.Model, ac.Intent)
	if err != nil {
		return err
	}
	if err := ac.Model.Sell(item); err != nil {
		return err
	}
	price, _ := ac.Model.Catalog().SellPrice(item)
	ac.emit(farm.EventItemSold, map[string]any{
		"item":  item,
		"price": price,
		"money": ac.Model.Player().Money(),
	})
	return nil
}
