package cart

type ItemAdded struct{ Item Item }

type ItemRemoved struct{ ProductID int }

type ShippingSaved struct{ Address Address }

type PaymentSaved struct{ Method string }

type Cleared struct{}

func (ItemAdded) Type() string     { return "CART_ADD_ITEM" }
func (ItemRemoved) Type() string   { return "CART_REMOVE_ITEM" }
func (ShippingSaved) Type() string { return "CART_SAVE_SHIPPING_ADDRESS" }
func (PaymentSaved) Type() string  { return "CART_SAVE_PAYMENT_METHOD" }
func (Cleared) Type() string       { return "CART_CLEAR_ITEMS" }
