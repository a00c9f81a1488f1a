package ports

// IDSupplier — источник уникальных идентификаторов (общий для блюд и заказов).
type IDSupplier interface {
	NextID() string
}
