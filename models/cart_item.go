package models

// CartItem (user_id, product_id) の複合主キーを持つ。同じ組み合わせは1行のみ
type CartItem struct {
	UserID    uint     `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"userId"`
	ProductID uint     `gorm:"column:product_id;primaryKey;autoIncrement:false" json:"productId"`
	Quantity  int      `gorm:"column:quantity" json:"quantity"`
	User      *User    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Product   *Product `gorm:"foreignKey:ProductID;references:ID" json:"-"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
