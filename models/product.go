package models

type Product struct {
	ID       uint   `gorm:"column:product_id;primaryKey;autoIncrement" json:"productId"`
	Name     string `gorm:"column:name" json:"name"`
	Category string `gorm:"column:category" json:"category"`
}

func (Product) TableName() string {
	return "products"
}
