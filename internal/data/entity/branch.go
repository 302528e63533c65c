package entity

type Branch struct {
	Base
	Code     string `db:"code"`
	Name     string `db:"name"`
	Address  string `db:"address"`
	IsActive bool   `db:"is_active"`
}
