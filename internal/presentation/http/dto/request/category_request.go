package request

// CreateCategoryRequest represents a category creation request
type CreateCategoryRequest struct {
	Name             string  `json:"name" binding:"required,min=2,max=255"`
	Description      string  `json:"description"`
	DiscountQuantity int     `json:"discount_quantity" binding:"min=0"`
	DiscountPrice    float64 `json:"discount_price" binding:"min=0"`
}

// UpdateCategoryRequest represents a category update request
type UpdateCategoryRequest struct {
	Name             *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description      *string  `json:"description"`
	DiscountQuantity *int     `json:"discount_quantity" binding:"omitempty,min=0"`
	DiscountPrice    *float64 `json:"discount_price" binding:"omitempty,min=0"`
}

// CategoryFilterRequest represents category filter parameters
type CategoryFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
