package cardstore

// A User is a storefront customer. Identity resolution happens in the
// auth package; this record exists so user-scoped rows have a home.
type User struct {
	Model
	Email string `json:"email" gorm:"uniqueIndex"`
}

func (User) TableName() string { return "users" }
