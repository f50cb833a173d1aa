package auth

import (
	"fmt"
	"net/url"
	"squadhub/services/user"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/context"
)

const (
	authorizeURL = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL     = "https://oauth2.googleapis.com/token"
	userInfoURL  = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Service handles the Google OAuth handshake: consent redirect, code
// exchange, and profile fetch. The rest of the handshake (session issuance)
// belongs to the caller.
type Service interface {
	AuthCodeURL(state string) string
	GetAccessToken(context context.Context, code string) (*TokenResponse, error)
	GetProfile(context context.Context, accessToken string) (*user.Profile, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	http         *resty.Client
	clientID     string
	clientSecret string
	callbackURL  string
}

func NewService(client *resty.Client, clientID, clientSecret, callbackURL string) *ServiceImpl {
	return &ServiceImpl{
		http:         client,
		clientID:     clientID,
		clientSecret: clientSecret,
		callbackURL:  callbackURL,
	}
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
	IDToken     string `json:"id_token"`
	Scope       string `json:"scope"`
}

type AuthError struct {
	ErrorType    string `json:"error"`
	ErrorMessage string `json:"error_description"`
}

func (a AuthError) Error() string {
	return fmt.Sprintf("%s: %s", a.ErrorType, a.ErrorMessage)
}

// AuthCodeURL builds the consent-screen redirect. The state value is echoed
// back on the callback and carries the post-login return path.
func (a *ServiceImpl) AuthCodeURL(state string) string {
	values := url.Values{
		"client_id":     []string{a.clientID},
		"redirect_uri":  []string{a.callbackURL},
		"response_type": []string{"code"},
		"scope":         []string{"openid profile email"},
		"state":         []string{state},
	}
	return fmt.Sprintf("%s?%s", authorizeURL, values.Encode())
}

func (a *ServiceImpl) GetAccessToken(context context.Context, code string) (*TokenResponse, error) {
	response := &TokenResponse{}
	responseError := &AuthError{}

	values := url.Values{
		"grant_type":    []string{"authorization_code"},
		"code":          []string{code},
		"client_id":     []string{a.clientID},
		"client_secret": []string{a.clientSecret},
		"redirect_uri":  []string{a.callbackURL},
	}
	resp, err := a.http.R().
		SetContext(context).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetResult(&response).
		SetError(&responseError).
		SetFormDataFromValues(values).
		Post(tokenURL)

	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error getting access token: %s ", responseError.Error())
	}
	return response, nil
}

type userInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

// GetProfile fetches the OpenID userinfo document for the token and maps it
// to the internal profile shape. A missing email stays nil.
func (a *ServiceImpl) GetProfile(context context.Context, accessToken string) (*user.Profile, error) {
	info := &userInfo{}
	responseError := &AuthError{}

	resp, err := a.http.R().
		SetContext(context).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", accessToken)).
		SetResult(&info).
		SetError(&responseError).
		Get(userInfoURL)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("error fetching profile: %s ", responseError.Error())
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("profile response missing subject")
	}

	profile := &user.Profile{
		Provider:    "google",
		ProviderID:  info.Sub,
		DisplayName: info.Name,
		AvatarURL:   info.Picture,
	}
	if info.Email != "" {
		email := info.Email
		profile.Email = &email
	}
	return profile, nil
}
