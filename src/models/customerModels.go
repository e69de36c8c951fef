package models

type CustomerModel struct {
	ID      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"type:varchar(50);not null"`
	City    string `json:"city" gorm:"type:varchar(50);not null"`
	Age     int    `json:"age" gorm:"not null"`
	Email   string `json:"email" gorm:"type:varchar(120);unique;not null"`
	Deleted bool   `json:"deleted" gorm:"type:boolean;default:false;not null"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
