package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stall{},
		&Product{},
		&Bill{},
		&SalesReturn{},
		&Payment{},
		&Registration{},
		&Panchayath{},
		&Ward{},
		&FoodOption{},
		&FoodCouponBooking{},
		&StallEnquiryField{},
		&StallEnquiry{},
		&Admin{},
		&AdminPermission{},
		&TeamMember{},
		&Program{},
	)
}
