package rankingapi

import (
	"context"
	"net/http"

	crerr "github.com/cockroachdb/errors"
)

// Health is the service's liveness report.
type Health struct {
	Status    string `json:"status" yaml:"status"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	Database  string `json:"database,omitempty" yaml:"database,omitempty"`
}

// Health calls GET /health. Both a bare and an enveloped body are accepted.
func (c *Client) Health(ctx context.Context) (Health, error) {
	raw, err := c.do(ctx, "Health", http.MethodGet, "/health", nil, nil)
	if err != nil {
		return Health{}, err
	}

	var body struct {
		Health
		Success *bool   `json:"success,omitempty"`
		Data    *Health `json:"data,omitempty"`
	}
	if err := decode(raw, &body); err != nil {
		return Health{}, crerr.Wrap(err, "decode Health response")
	}
	out := body.Health
	if body.Data != nil && body.Data.Status != "" {
		out = *body.Data
	}
	if out.Status == "" {
		out.Status = "ok"
		if body.Success != nil && !*body.Success {
			out.Status = "error"
		}
	}
	return out, nil
}
