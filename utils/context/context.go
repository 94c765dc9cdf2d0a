package context

import (
	"context"

	"github.com/sbmotors/dealership/constant"
	"github.com/sbmotors/dealership/model"
)

// GetEmployeeUsername returns the username resolved by the employee guard.
func GetEmployeeUsername(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.EmployeeUsernameKey)
	if v == nil {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// GetCustomer returns the identity resolved by the customer guard.
func GetCustomer(ctx context.Context) (*model.CustomerIdentity, bool) {
	v := ctx.Value(constant.CustomerSessionKey)
	if v == nil {
		return nil, false
	}
	ident, ok := v.(*model.CustomerIdentity)
	return ident, ok
}

func WithEmployeeUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, constant.EmployeeUsernameKey, username)
}

func WithCustomer(ctx context.Context, ident *model.CustomerIdentity) context.Context {
	return context.WithValue(ctx, constant.CustomerSessionKey, ident)
}
