package user

import "time"

type User struct {
	ID          string    `json:"id" firestore:"id"`
	Provider    string    `json:"provider" firestore:"provider"`
	ProviderID  string    `json:"providerId" firestore:"providerId"`
	Email       *string   `json:"email" firestore:"email"`
	DisplayName string    `json:"displayName" firestore:"displayName"`
	AvatarURL   string    `json:"avatarUrl" firestore:"avatarUrl"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
	LastLogin   time.Time `json:"lastLogin" firestore:"lastLogin"`
}

// Profile is the external identity handed over by the OAuth provider. Email is
// optional; the provider may not have granted the scope.
type Profile struct {
	Provider    string
	ProviderID  string
	Email       *string
	DisplayName string
	AvatarURL   string
}

// DefaultDisplayName labels accounts whose provider profile carries no name.
const DefaultDisplayName = "Google User"
