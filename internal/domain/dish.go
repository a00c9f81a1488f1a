package domain

// Dish — позиция меню. Цена в минимальных неделимых единицах (центы).
type Dish struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	ImageURL    string `json:"image_url"`
}
