package thecics

type SigningKey struct {
	Key string `json:"k"`
}

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// UserStatus gates write access: restricted users can still browse but
// cannot submit theses or comments.
type UserStatus string

const (
	UserActive     UserStatus = "active"
	UserRestricted UserStatus = "restricted"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`

	Bookmarks []int `json:"bookmarks"`
	Likes     []int `json:"likes"`

	Salt         string `json:"-"`
	PasswordHash string `json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserStore interface {
	Get(int) (*User, error)
	GetByEmail(string) (*User, error)
	List() ([]*User, error)
	Upsert(*User) error
}
