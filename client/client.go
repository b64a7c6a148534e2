package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// TokenSource fornece o bearer token da sessão atual. Retorno vazio
// significa requisição anônima.
type TokenSource interface {
	Token() string
}

// StaticToken é um TokenSource de valor fixo.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// APIError é o corpo de erro padrão do servidor.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (%d): %s", e.Code, e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	adopted bool
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login autentica e passa a usar o token retornado nas próximas
// requisições, a menos que um TokenSource próprio tenha sido injetado.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/token", body, &out); err != nil {
		return "", err
	}

	// nunca sobrescreve um TokenSource injetado; tokens adotados por um
	// Login anterior são trocados pelo mais novo
	if c.tokens == nil || c.adopted {
		c.tokens = StaticToken(out.AccessToken)
		c.adopted = true
	}
	return out.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/users", body, nil)
}

func (c *Client) ListAccounts(ctx context.Context) ([]Account, error) {
	var out struct {
		Accounts []Account `json:"accounts"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/accounts", nil, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var out struct {
		Categories []Category `json:"categories"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/categories", nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *Client) ListTransactions(ctx context.Context, filter Filter) (*TransactionPage, error) {
	var page TransactionPage
	path := "/transactions?" + filter.queryString()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// TransactionInput são os campos do form de criação/edição. Proof é o
// conteúdo do comprovante; nil quando não há anexo.
type TransactionInput struct {
	Description string
	Value       float64
	Type        TransactionType
	AccountID   string
	CategoryID  string
	Date        time.Time
	Paid        bool
	ProofName   string
	Proof       io.Reader
}

func (c *Client) CreateTransaction(ctx context.Context, input TransactionInput) (*Transaction, error) {
	return c.sendTransactionForm(ctx, http.MethodPost, "/transactions", input)
}

func (c *Client) UpdateTransaction(ctx context.Context, id string, input TransactionInput) (*Transaction, error) {
	return c.sendTransactionForm(ctx, http.MethodPut, "/transactions/"+id, input)
}

// SetPaid grava o estado de pagamento explicitamente; repetir a mesma
// chamada não alterna o valor.
func (c *Client) SetPaid(ctx context.Context, id string, paid bool) (*Transaction, error) {
	var out struct {
		Transaction *Transaction `json:"transaction"`
	}
	body := map[string]bool{"paid": paid}
	if err := c.doJSON(ctx, http.MethodPatch, "/transactions/"+id+"/paid", body, &out); err != nil {
		return nil, err
	}
	return out.Transaction, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/transactions/"+id, nil, nil)
}

func (c *Client) sendTransactionForm(ctx context.Context, method, path string, input TransactionInput) (*Transaction, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"description": input.Description,
		"value":       strconv.FormatFloat(input.Value, 'f', -1, 64),
		"type":        string(input.Type),
		"account_id":  input.AccountID,
		"paid":        strconv.FormatBool(input.Paid),
	}
	if input.CategoryID != "" {
		fields["category_id"] = input.CategoryID
	}
	if !input.Date.IsZero() {
		fields["date"] = input.Date.Format("2006-01-02")
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	if input.Proof != nil {
		part, err := w.CreateFormFile("proof", input.ProofName)
		if err != nil {
			return nil, err
		}
		if _, err := io.Copy(part, input.Proof); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var out struct {
		Transaction *Transaction `json:"transaction"`
	}
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return out.Transaction, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out interface{}) error {
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "UNKNOWN_ERROR"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (f Filter) queryString() string {
	values := url.Values{}
	values.Set("account_id", f.AccountID)
	if f.Search != "" {
		values.Set("search", f.Search)
	}
	if f.CategoryID != "" {
		values.Set("category", f.CategoryID)
	}
	if f.Type != "" {
		values.Set("type", string(f.Type))
	}
	if f.Status != "" {
		values.Set("status", f.Status)
	}
	if f.StartDate != nil {
		values.Set("start_date", f.StartDate.Format("2006-01-02"))
	}
	if f.EndDate != nil {
		values.Set("end_date", f.EndDate.Format("2006-01-02"))
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	return values.Encode()
}
