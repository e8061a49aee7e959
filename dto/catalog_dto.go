package dto

type CreateProductInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// AddCartItemInput 数量の正値チェックはサービス側でも行う
type AddCartItemInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}
