// internal/domain/user.go
package domain

// User представляет модель пользователя в системе,
// соответствует таблице 'users' в бд.
// В поле Password хранится только bcrypt-хеш, исходный пароль никогда не сохраняется.
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Firstname string `json:"firstname" gorm:"not null"`
	Lastname  string `json:"lastname" gorm:"not null"`
	Email     string `json:"email" gorm:"not null;uniqueIndex:idx_users_email"`
	Password  string `json:"password,omitempty" gorm:"not null"`
}

func (User) TableName() string {
	return "users"
}

// Scrub возвращает копию записи без хеша пароля — для внешних ответов.
// Благодаря omitempty поле password полностью пропадает из JSON.
func (u User) Scrub() User {
	u.Password = ""
	return u
}
