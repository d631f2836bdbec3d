package services

import (
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/communityguardian/core/internal/config"
	"github.com/communityguardian/core/internal/logger"
	"github.com/communityguardian/core/internal/models"
	"github.com/communityguardian/core/internal/policy"
	"github.com/communityguardian/core/internal/store"
)

// AuthService owns user profiles, credentials and the active session. All
// email comparisons fold case; stored values keep the caller's casing.
//
// Secrets are stored and compared as opaque plaintext. There is no hashing
// and no rotation operation.
type AuthService struct {
	mu            sync.Mutex
	store         store.Store
	creatorEmail  string
	sessionSecret []byte
	newID         func() string
	log           *logrus.Entry
}

func NewAuthService(s store.Store, cfg *config.Config) *AuthService {
	return &AuthService{
		store:         s,
		creatorEmail:  cfg.CreatorEmail,
		sessionSecret: []byte(cfg.SessionSecret),
		newID:         uuid.NewString,
		log:           logger.WithComponent("auth"),
	}
}

// SignUp registers an email/password account, persists its credential and
// marks the new profile as the active session.
func (a *AuthService) SignUp(email, password, displayName string) (*models.UserProfile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	profiles, _, err := a.loadProfiles()
	if err != nil {
		return nil, err
	}
	if findProfileByEmail(profiles, email) != nil {
		return nil, ErrDuplicateAccount
	}

	credentials, err := a.loadCredentials()
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		ID:          a.newID(),
		Email:       email,
		DisplayName: displayName,
		PhotoURL:    avatarURL(displayName),
		Role:        a.roleFor(email),
	}

	profiles = append(profiles, profile)
	if err := saveCollection(a.store, store.CollectionProfiles, profiles); err != nil {
		return nil, err
	}

	credentials[strings.ToLower(email)] = password
	if err := saveCollection(a.store, store.CollectionCredentials, credentials); err != nil {
		return nil, err
	}

	if err := a.startSession(profile); err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{"user_id": profile.ID, "role": profile.Role}).Info("account created")
	return &profile, nil
}

// SignIn checks the stored secret and marks the matching profile as the
// active session.
func (a *AuthService) SignIn(email, password string) (*models.UserProfile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	credentials, err := a.loadCredentials()
	if err != nil {
		return nil, err
	}
	secret, ok := credentials[strings.ToLower(email)]
	if !ok || secret != password {
		return nil, ErrInvalidCredentials
	}

	profiles, _, err := a.loadProfiles()
	if err != nil {
		return nil, err
	}
	profile := findProfileByEmail(profiles, email)
	if profile == nil {
		// Credential with no profile: the store lost or never held the
		// profile record.
		return nil, ErrProfileNotFound
	}

	if err := a.startSession(*profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// FederatedLogin signs in through an external identity provider. It is an
// idempotent upsert: an existing profile is reused with its role intact, a
// new one is created under the same creator-email rule. No credential is
// stored, so federated-only accounts have no password entry.
func (a *AuthService) FederatedLogin(email, displayName string) (*models.UserProfile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	profiles, _, err := a.loadProfiles()
	if err != nil {
		return nil, err
	}

	profile := findProfileByEmail(profiles, email)
	if profile == nil {
		created := models.UserProfile{
			ID:          a.newID(),
			Email:       email,
			DisplayName: displayName,
			PhotoURL:    avatarURL(displayName),
			Role:        a.roleFor(email),
		}
		profiles = append(profiles, created)
		if err := saveCollection(a.store, store.CollectionProfiles, profiles); err != nil {
			return nil, err
		}
		profile = &created
		a.log.WithFields(logrus.Fields{"user_id": created.ID, "role": created.Role}).Info("federated account created")
	}

	if err := a.startSession(*profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Logout clears the active session. Stored profiles are untouched.
func (a *AuthService) Logout() error {
	return a.store.Delete(store.CollectionSession)
}

// CurrentUser returns the profile snapshot taken at login, or nil when no
// session is active. A token that fails validation counts as logged out.
func (a *AuthService) CurrentUser() (*models.UserProfile, error) {
	payload, found, err := a.store.Load(store.CollectionSession)
	if err != nil {
		return nil, err
	}
	if !found || payload == "" {
		return nil, nil
	}

	token, err := jwt.Parse(payload, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.sessionSecret, nil
	})
	if err != nil || !token.Valid {
		a.log.Warn("discarding invalid session token")
		return nil, nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, nil
	}

	profile := models.UserProfile{
		ID:          stringClaim(claims, "sub"),
		Email:       stringClaim(claims, "email"),
		DisplayName: stringClaim(claims, "name"),
		PhotoURL:    stringClaim(claims, "photo"),
		Role:        models.Role(stringClaim(claims, "role")),
	}
	return &profile, nil
}

// ListProfiles returns every stored profile in insertion order.
func (a *AuthService) ListProfiles() ([]models.UserProfile, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	profiles, _, err := a.loadProfiles()
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateRole overwrites the role of the matching profile. The creator
// account is silently skipped: its role is permanent, and callers get no
// error so that a bulk update over mixed profiles is not aborted by it.
func (a *AuthService) UpdateRole(userID string, newRole models.Role) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	profiles, found, err := a.loadProfiles()
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	for i := range profiles {
		if profiles[i].ID == userID && !a.isCreatorEmail(profiles[i].Email) {
			profiles[i].Role = newRole
		}
	}
	return saveCollection(a.store, store.CollectionProfiles, profiles)
}

// ElevateRole is the collaborator-facing role update: it checks the acting
// role against policy before touching the repository.
func (a *AuthService) ElevateRole(actor models.Role, userID string, newRole models.Role) error {
	if !policy.CanElevateRoles(actor) {
		return fmt.Errorf("update role as %s: %w", actor, ErrPermissionDenied)
	}
	return a.UpdateRole(userID, newRole)
}

func (a *AuthService) startSession(profile models.UserProfile) error {
	claims := jwt.MapClaims{
		"sub":   profile.ID,
		"email": profile.Email,
		"name":  profile.DisplayName,
		"photo": profile.PhotoURL,
		"role":  string(profile.Role),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.sessionSecret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	return a.store.Save(store.CollectionSession, signed)
}

func (a *AuthService) loadProfiles() ([]models.UserProfile, bool, error) {
	var profiles []models.UserProfile
	found, err := loadCollection(a.store, store.CollectionProfiles, &profiles)
	return profiles, found, err
}

func (a *AuthService) loadCredentials() (map[string]string, error) {
	credentials := make(map[string]string)
	if _, err := loadCollection(a.store, store.CollectionCredentials, &credentials); err != nil {
		return nil, err
	}
	return credentials, nil
}

func (a *AuthService) roleFor(email string) models.Role {
	if a.isCreatorEmail(email) {
		return models.RoleCreator
	}
	return models.RoleUser
}

func (a *AuthService) isCreatorEmail(email string) bool {
	return strings.EqualFold(email, a.creatorEmail)
}

func findProfileByEmail(profiles []models.UserProfile, email string) *models.UserProfile {
	for i := range profiles {
		if strings.EqualFold(profiles[i].Email, email) {
			return &profiles[i]
		}
	}
	return nil
}

// avatarURL derives a non-authoritative photo URL from the display name.
func avatarURL(displayName string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(displayName))
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
