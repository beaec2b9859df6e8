package session

import (
	// 外部依赖
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	haxmap "github.com/alphadose/haxmap"
	jwt "github.com/golang-jwt/jwt/v5"

	// 内部引用
	common "github.com/scienceol/labdesk/pkg/common"
)

const (
	// KeyAuthToken is the persisted bearer credential.
	KeyAuthToken = "authToken"
	// KeySelectedEquipment is a one-shot handoff from the lab browser into
	// the reservation form.
	KeySelectedEquipment = "selectedEquipment"

	keyIdentity = "identity"
)

type Identity struct {
	ID    int64       `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  common.Role `json:"role"`
}

// Store is the explicit session context: identity + token + transient
// handoff keys, persisted to a state file so a new process resumes where
// the last one stopped. It is injected into the transport rather than read
// from ambient storage.
type Store struct {
	state *haxmap.Map[string, string]

	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewStore(path string) (*Store, error) {
	s := &Store{
		state: haxmap.New[string, string](),
		path:  path,
		now:   time.Now,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	persisted := map[string]string{}
	if err := json.Unmarshal(raw, &persisted); err != nil {
		// A corrupt state file means starting logged out, not failing.
		return s, nil
	}
	for k, v := range persisted {
		s.state.Set(k, v)
	}

	return s, nil
}

// Token returns the stored bearer token, treating an expired jwt as absent.
func (s *Store) Token() string {
	tok, ok := s.state.Get(KeyAuthToken)
	if !ok || tok == "" {
		return ""
	}
	if exp, found := tokenExpiry(tok); found && s.now().After(exp) {
		return ""
	}
	return tok
}

func (s *Store) SetToken(token string) error {
	s.state.Set(KeyAuthToken, token)
	return s.persist()
}

func (s *Store) Identity() *Identity {
	raw, ok := s.state.Get(keyIdentity)
	if !ok || raw == "" {
		return nil
	}
	id := &Identity{}
	if err := json.Unmarshal([]byte(raw), id); err != nil {
		return nil
	}
	return id
}

func (s *Store) SetIdentity(id *Identity) error {
	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	s.state.Set(keyIdentity, string(raw))
	return s.persist()
}

// Clear tears the session down: logout and 401 both land here.
func (s *Store) Clear() error {
	s.state.Del(KeyAuthToken, keyIdentity, KeySelectedEquipment)
	return s.persist()
}

// PutHandoff stores a transient value under key.
func (s *Store) PutHandoff(key, value string) error {
	s.state.Set(key, value)
	return s.persist()
}

// TakeHandoff returns and removes the value under key: one shot.
func (s *Store) TakeHandoff(key string) (string, bool) {
	v, ok := s.state.Get(key)
	if !ok {
		return "", false
	}
	s.state.Del(key)
	_ = s.persist()
	return v, true
}

func (s *Store) persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	persisted := map[string]string{}
	s.state.ForEach(func(k, v string) bool {
		persisted[k] = v
		return true
	})

	raw, err := json.Marshal(persisted)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// tokenExpiry parses the jwt claims without verifying the signature; the
// client only needs exp to avoid sending a token the backend will refuse.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
