package validate

// Сообщения об ошибках валидации (возвращаются клиенту как есть).
const (
	MsgDishBodyRequired  = "Please include a request body with the dish's attributes."
	MsgDishName          = "Dish must include a name"
	MsgDishDescription   = "Dish must include a description"
	MsgDishPrice         = "Dish must include a price"
	MsgDishPriceInteger  = "Dish must have a price that is an integer greater than 0"
	MsgDishImageURL      = "Dish must include a image_url"
	MsgOrderBodyRequired = "Please include a request body with the order's attributes."
	MsgOrderDeliverTo    = "Order must include a deliverTo"
	MsgOrderMobileNumber = "Order must include a mobileNumber"
	MsgOrderDish         = "Order must include a dish"
	MsgOrderDishes       = "Order must include at least one dish"
	MsgOrderLineQuantity = "Dish %d must have a quantity that is an integer greater than 0"
	MsgOrderStatus       = "A pending status is required to update an order."
	MsgOrderNotPending   = "An order cannot be deleted unless it is pending."
	MsgIDMismatch        = "%s id does not match route id. %s: %v, Route: %s"
)
