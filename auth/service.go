package auth

import (
	"golang.org/x/crypto/bcrypt"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

// Service handles email+password accounts and token issuance.
type Service struct {
	users   thecics.UserStore
	encoder *EncodeDecoder
}

func NewService(users thecics.UserStore, encoder *EncodeDecoder) *Service {
	return &Service{
		users:   users,
		encoder: encoder,
	}
}

func (s *Service) SignUp(name, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password are required", errors.BadRequest())
	}

	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	} else if existing != nil {
		return "", errors.New("email already exists", errors.Conflict())
	}

	user := thecics.User{
		Name:   name,
		Email:  email,
		Role:   thecics.RoleMember,
		Status: thecics.UserActive,
		Salt:   randToken(64),
	}
	if user.Name == "" {
		user.Name = email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password+user.Salt), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)

	if err := s.users.Upsert(&user); err != nil {
		return "", err
	}

	return s.encoder.Encode(user.ID)
}

func (s *Service) Login(email, password string) (string, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", err
	} else if user == nil {
		return "", errors.New("email or password incorrect", errors.BadRequest())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password+user.Salt)); err != nil {
		return "", errors.New("email or password incorrect", errors.BadRequest())
	}

	return s.encoder.Encode(user.ID)
}

// Token issues a token for an already-identified user, e.g. after a Google
// sign-in.
func (s *Service) Token(userID int) (string, error) {
	return s.encoder.Encode(userID)
}
