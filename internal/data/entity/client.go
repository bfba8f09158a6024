package entity

type Client struct {
	BaseSimple
	Name          string  `db:"name"`
	Email         string  `db:"email"`
	Phone         *string `db:"phone"`
	Address       *string `db:"address"`
	ContactPerson string  `db:"contact_person"`
}
