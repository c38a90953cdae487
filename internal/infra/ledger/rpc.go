package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"booking-registry/internal/domain/account"
	"booking-registry/internal/domain/token"
	"booking-registry/internal/pkg/errs"
	"booking-registry/internal/usecase/shared"
)

// JSON-RPC error codes returned by the ledger node for rejected transfers.
const (
	rpcCodeInsufficientFunds         = -32010
	rpcCodeInsufficientAuthorization = -32011
)

// RPCClient is a thin JSON-RPC client for the token ledger node.
type RPCClient struct {
	baseURL   string
	authToken string
	http      *http.Client
	nextID    atomic.Int64
}

func NewRPCClient(baseURL, authToken string, timeout time.Duration) *RPCClient {
	return &RPCClient{
		baseURL:   baseURL,
		authToken: authToken,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

type jsonRPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int64  `json:"id"`
}

type jsonRPCResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      int64            `json:"id"`
	Result  json.RawMessage  `json:"result"`
	Error   *jsonRPCErrorObj `json:"error"`
}

type jsonRPCErrorObj struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type transferParams struct {
	Spender string       `json:"spender,omitempty"`
	From    string       `json:"from"`
	To      string       `json:"to"`
	Amount  token.Amount `json:"amount"`
}

type amountResult struct {
	Amount token.Amount `json:"amount"`
}

func (c *RPCClient) TransferFrom(ctx context.Context, spender, from, to account.Account, amount token.Amount) error {
	params := transferParams{Spender: spender.String(), From: from.String(), To: to.String(), Amount: amount}
	return c.call(ctx, "token_transferFrom", []any{params}, nil)
}

func (c *RPCClient) Transfer(ctx context.Context, from, to account.Account, amount token.Amount) error {
	params := transferParams{From: from.String(), To: to.String(), Amount: amount}
	return c.call(ctx, "token_transfer", []any{params}, nil)
}

func (c *RPCClient) BalanceOf(ctx context.Context, holder account.Account) (token.Amount, error) {
	var result amountResult
	if err := c.call(ctx, "token_balanceOf", []any{map[string]string{"holder": holder.String()}}, &result); err != nil {
		return token.Amount{}, err
	}
	return result.Amount, nil
}

func (c *RPCClient) Allowance(ctx context.Context, owner, spender account.Account) (token.Amount, error) {
	var result amountResult
	params := map[string]string{"owner": owner.String(), "spender": spender.String()}
	if err := c.call(ctx, "token_allowance", []any{params}, &result); err != nil {
		return token.Amount{}, err
	}
	return result.Amount, nil
}

// call maps transport failures to ErrLedgerUnavailable and ledger rejections to the
// matching shared sentinel.
func (c *RPCClient) call(ctx context.Context, method string, params any, out any) error {
	id := c.nextID.Add(1)
	buf, err := json.Marshal(jsonRPCRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return errs.Wrapf(err, "encode %s request", method)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(buf))
	if err != nil {
		return errs.Wrapf(err, "build %s request", method)
	}
	req.Header.Set("Content-Type", "application/json")
	if strings.TrimSpace(c.authToken) != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "ledger rpc %s", method), shared.ErrLedgerUnavailable)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errs.Mark(
			errs.Newf("ledger rpc %s failed: status=%d body=%s", method, resp.StatusCode, string(body)),
			shared.ErrLedgerUnavailable)
	}

	var rpcResp jsonRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s response", method), shared.ErrLedgerUnavailable)
	}
	if rpcResp.Error != nil {
		return mapRPCError(method, rpcResp.Error)
	}
	if out == nil {
		return nil
	}
	if len(rpcResp.Result) == 0 {
		return errs.Mark(errs.Newf("ledger rpc %s returned empty result", method), shared.ErrLedgerUnavailable)
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return errs.Mark(errs.Wrapf(err, "decode %s result", method), shared.ErrLedgerUnavailable)
	}
	return nil
}

func mapRPCError(method string, e *jsonRPCErrorObj) error {
	switch e.Code {
	case rpcCodeInsufficientFunds:
		return errs.Wrapf(shared.ErrInsufficientFunds, "ledger rpc %s: %s", method, e.Message)
	case rpcCodeInsufficientAuthorization:
		return errs.Wrapf(shared.ErrInsufficientAuthorization, "ledger rpc %s: %s", method, e.Message)
	default:
		return errs.Newf("ledger rpc %s error %d: %s", method, e.Code, e.Message)
	}
}
