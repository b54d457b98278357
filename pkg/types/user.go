package types

// User is an account holder. UserID is the sign-in subject, or a generated
// UUID for local users.
type User struct {
	Record

	UserID      string  `db:"user_id" json:"user_id"`
	Email       string  `db:"email" json:"email"`
	DisplayName *string `db:"display_name" json:"display_name"`
	PhotoURL    *string `db:"photo_url" json:"photo_url"`
}

// Columns of User.
const (
	UserID          Column[User] = "id"
	UserUserID      Column[User] = "user_id"
	UserEmail       Column[User] = "email"
	UserDisplayName Column[User] = "display_name"
	UserPhotoURL    Column[User] = "photo_url"
)
