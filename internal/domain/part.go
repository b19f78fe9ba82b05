package domain

type PartCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name" gorm:"uniqueIndex;size:100"`
	Slug string `json:"slug" gorm:"uniqueIndex;size:100"`
}

type Part struct {
	ID             int64   `json:"id"`
	SellerGarageID int64   `json:"-" gorm:"index;not null"`
	CategoryID     *int64  `json:"-"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Image          string  `json:"image,omitempty"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock" gorm:"default:0"`
	IsAvailable    bool    `json:"is_available" gorm:"default:true"`

	SellerGarage *Garage       `json:"-" gorm:"foreignKey:SellerGarageID;constraint:OnDelete:CASCADE"`
	Category     *PartCategory `json:"-" gorm:"constraint:OnDelete:SET NULL"`
}
