//go:generate mockgen -source=../dish_store.go    -destination=./mock_dish_store.go    -package=mocks
//go:generate mockgen -source=../order_store.go   -destination=./mock_order_store.go   -package=mocks
//go:generate mockgen -source=../id_supplier.go   -destination=./mock_id_supplier.go   -package=mocks
//go:generate mockgen -source=../dish_service.go  -destination=./mock_dish_service.go  -package=mocks
//go:generate mockgen -source=../order_service.go -destination=./mock_order_service.go -package=mocks

package mocks
