package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bapesu/bapesu-api/internal/application/ports"
)

var _ ports.IdentityProvider = (*SupabaseAdmin)(nil)

// SupabaseAdmin cliente de la API admin de Supabase Auth (service role key).
type SupabaseAdmin struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewSupabaseAdmin construye el cliente. baseURL es SUPABASE_URL.
func NewSupabaseAdmin(baseURL, serviceKey string) *SupabaseAdmin {
	return &SupabaseAdmin{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// UpdateEmail cambia el email de la cuenta sin requerir confirmación.
func (s *SupabaseAdmin) UpdateEmail(ctx context.Context, userID, email string) error {
	body, err := json.Marshal(map[string]any{"email": email, "email_confirm": true})
	if err != nil {
		return fmt.Errorf("identity: serializar request: %w", err)
	}
	return s.do(ctx, http.MethodPut, userID, body)
}

// DeleteUser elimina la cuenta. Una cuenta inexistente no es error.
func (s *SupabaseAdmin) DeleteUser(ctx context.Context, userID string) error {
	return s.do(ctx, http.MethodDelete, userID, nil)
}

func (s *SupabaseAdmin) do(ctx context.Context, method, userID string, body []byte) error {
	if s.baseURL == "" || s.serviceKey == "" {
		return fmt.Errorf("identity: SUPABASE_URL o SUPABASE_SERVICE_KEY no configurado")
	}

	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+"/auth/v1/admin/users/"+userID, r)
	if err != nil {
		return fmt.Errorf("identity: crear HTTP request: %w", err)
	}
	req.Header.Set("apikey", s.serviceKey)
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method == http.MethodDelete {
		return nil
	}
	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4*1024))
		return fmt.Errorf("identity: Supabase HTTP %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
