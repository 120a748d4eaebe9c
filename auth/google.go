package auth

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	thecics "github.com/RenardMacorol/TheCICS-sub000"
	"github.com/RenardMacorol/TheCICS-sub000/errors"
)

var (
	googleEndpoint = google.Endpoint
	userInfoURL    = "https://www.googleapis.com/oauth2/v3/userinfo"
	scopes         = []string{
		"https://www.googleapis.com/auth/userinfo.email",
		"https://www.googleapis.com/auth/userinfo.profile",
	}
)

type googleUser struct {
	GoogleID string `json:"sub"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// GoogleService signs users in through the Google OAuth code flow,
// creating the account on first sign-in.
type GoogleService struct {
	users   thecics.UserStore
	service *Service
	config  oauth2.Config

	stateMutex sync.Locker
	state      map[string]struct{}
}

func NewGoogleService(users thecics.UserStore, configPath string, service *Service) (*GoogleService, error) {
	c, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var creds struct {
		ClientID     string `json:"client_id"`
		ClientSecret string `json:"client_secret"`
		RedirectURL  string `json:"redirect_url"`
	}
	err = json.Unmarshal(c, &creds)
	if err != nil {
		return nil, err
	}

	return &GoogleService{
		users:   users,
		service: service,
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       scopes,
			Endpoint:     googleEndpoint,
		},

		stateMutex: &sync.Mutex{},
		state:      make(map[string]struct{}),
	}, nil
}

// LoginURL returns the Google consent page URL, remembering the state token
// for the callback.
func (s *GoogleService) LoginURL() string {
	state := randToken(32)
	s.stateMutex.Lock()
	s.state[state] = struct{}{}
	s.stateMutex.Unlock()

	return s.config.AuthCodeURL(state)
}

// Login exchanges the callback code for a Google identity and returns a
// token for the matching user, creating the account if needed.
func (s *GoogleService) Login(state, code string) (string, error) {
	s.stateMutex.Lock()
	_, ok := s.state[state]
	delete(s.state, state)
	s.stateMutex.Unlock()
	if !ok {
		return "", errors.New("invalid state", errors.BadRequest())
	}

	token, err := s.config.Exchange(oauth2.NoContext, code)
	if err != nil {
		return "", errors.New("could not exchange code", errors.WithCause(err))
	}

	gUser, err := s.fetchUser(token)
	if err != nil {
		return "", err
	}
	if gUser.Email == "" {
		return "", errors.New("google returned no email")
	}

	user, err := s.users.GetByEmail(gUser.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		user = &thecics.User{
			Name:   gUser.Name,
			Email:  gUser.Email,
			Role:   thecics.RoleMember,
			Status: thecics.UserActive,
		}
		if user.Name == "" {
			user.Name = gUser.Email
		}
		if err := s.users.Upsert(user); err != nil {
			return "", err
		}
	}

	return s.service.Token(user.ID)
}

func (s *GoogleService) fetchUser(token *oauth2.Token) (googleUser, error) {
	client := s.config.Client(oauth2.NoContext, token)
	res, err := client.Get(userInfoURL)
	if err != nil {
		return googleUser{}, errors.New("could not get user info", errors.WithCause(err))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return googleUser{}, errors.New("could not get user info", errors.WithCode(res.StatusCode))
	}

	var gUser googleUser
	if err := json.NewDecoder(res.Body).Decode(&gUser); err != nil {
		return googleUser{}, errors.New("could not decode user info", errors.WithCause(err))
	}

	return gUser, nil
}
