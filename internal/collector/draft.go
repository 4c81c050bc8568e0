package collector

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"maternal-screening-server/internal/config"
	"maternal-screening-server/internal/models"
)

// DraftClaims carries an in-progress form between requests so the server
// keeps no per-session state.
type DraftClaims struct {
	Kind    models.Kind       `json:"kind"`
	Section int               `json:"section"`
	Answers map[string]string `json:"answers"`
	jwt.RegisteredClaims
}

// DraftSigner issues and verifies draft tokens.
type DraftSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftSigner creates a signer from the draft configuration.
func NewDraftSigner(cfg config.DraftConfig) *DraftSigner {
	return &DraftSigner{secret: []byte(cfg.Secret), ttl: cfg.Expiration, now: time.Now}
}

// IssueDraft signs the collector's current section and answers.
func IssueDraft[F any](s *DraftSigner, c *Collector[F]) (string, error) {
	now := s.now()
	form := c.Form()
	claims := &DraftClaims{
		Kind:    c.layout.Kind,
		Section: c.Section(),
		Answers: models.Values(&form, c.layout.Fields()),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   string(c.layout.Kind),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign draft token: %w", err)
	}
	return tokenString, nil
}

// ResumeDraft verifies a draft token and rebuilds its collector. The draft
// must belong to the layout's assessment kind.
func ResumeDraft[F any](s *DraftSigner, layout Layout[F], tokenString string) (*Collector[F], error) {
	claims := &DraftClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDraft, err)
	}
	if !token.Valid {
		return nil, ErrInvalidDraft
	}
	if claims.Kind != layout.Kind {
		return nil, fmt.Errorf("%w: draft is for %s, not %s", ErrInvalidDraft, claims.Kind, layout.Kind)
	}

	var form F
	fields := layout.Fields()
	for key, value := range claims.Answers {
		field, ok := models.FieldByKey(fields, key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidDraft, key)
		}
		field.Set(&form, value)
	}
	return Resume(layout, form, claims.Section)
}
