package response

import "booking-registry/internal/usecase/queries"

type BalanceResponse struct {
	Account string `json:"account"`
	Balance string `json:"balance"`
}

type AllowanceResponse struct {
	Owner     string `json:"owner"`
	Spender   string `json:"spender"`
	Allowance string `json:"allowance"`
}

func FromBalanceView(v *queries.BalanceView) (*BalanceResponse, error) {
	var res BalanceResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromAllowanceView(v *queries.AllowanceView) (*AllowanceResponse, error) {
	var res AllowanceResponse
	if err := copyView(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}
