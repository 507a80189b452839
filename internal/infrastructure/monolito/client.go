package monolito

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"inprout_docs/internal/domain/entities"
	"inprout_docs/internal/usecase/interfaces"
)

var ErrMissingMonolitoURL = errors.New("missing MONOLITO_URL")

const (
	pathStatusDocumentacao = "/api/integracao/lancamentos/status-documentacao"
	pathInfoOS             = "/api/integracao/os/%d/info"

	planoDateLayout = "2006-01-02"
)

// atualizarLancamentosPayload is the wire body of the status-documentacao
// endpoint. The monolito expects planoDocumentacao as a plain date.
type atualizarLancamentosPayload struct {
	LancamentoIDs []int64 `json:"lancamentoIds"`
	Documentacao  string  `json:"documentacao"`
	Plano         string  `json:"planoDocumentacao"`
	Situacao      string  `json:"situacao"`
}

type osInfoPayload struct {
	OSID     int64  `json:"osId"`
	Segmento string `json:"segmento"`
}

// Client talks to the inprout monolith integration API. The response body of
// the sync call is never consumed; only the status code matters.
type Client struct {
	baseURL string
	httpc   *http.Client
}

var _ interfaces.IMonolitoGateway = (*Client)(nil)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		log.Printf("[monolito][gateway] missing MONOLITO_URL")
		return nil, ErrMissingMonolitoURL
	}
	return &Client{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *Client) AtualizarStatusLancamentos(ctx context.Context, req entities.AtualizarLancamentos) error {
	payload := atualizarLancamentosPayload{
		LancamentoIDs: req.LancamentoIDs,
		Documentacao:  req.Documentacao,
		Plano:         req.Plano.Format(planoDateLayout),
		Situacao:      req.Situacao,
	}
	if payload.LancamentoIDs == nil {
		payload.LancamentoIDs = []int64{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+pathStatusDocumentacao, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("monolito status-documentacao returned %d", resp.StatusCode)
	}
	log.Printf("[monolito][gateway] lancamentos synced documentacao=%s count=%d", req.Documentacao, len(req.LancamentoIDs))
	return nil
}

func (c *Client) BuscarInfoOS(ctx context.Context, osID int64) (entities.OSInfo, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+fmt.Sprintf(pathInfoOS, osID), nil)
	if err != nil {
		return entities.OSInfo{}, err
	}

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return entities.OSInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return entities.OSInfo{}, fmt.Errorf("monolito os info returned %d", resp.StatusCode)
	}

	var payload osInfoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entities.OSInfo{}, err
	}
	return entities.OSInfo{OSID: payload.OSID, Segmento: payload.Segmento}, nil
}
