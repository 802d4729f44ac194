package model

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const dateLayout = "2006-01-02"

// MaxAmount bounds rent and deposit amounts to what contracts can spell out
const MaxAmount = 999_999_999_999

// maxRate bounds percentage rates
const maxRate = 100.0

// Validate checks the contract terms
func (c *Contract) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseRentAmount, validation.Min(0.0), validation.Max(float64(MaxAmount))),
		validation.Field(&c.DepositAmount, validation.Min(0.0), validation.Max(float64(MaxAmount))),
		validation.Field(&c.CurrentRentAmount, validation.Min(0.0), validation.Max(float64(MaxAmount))),
		validation.Field(&c.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&c.EndDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&c.PaymentDueDay, validation.Min(0), validation.Max(31)),
		validation.Field(&c.AdjustmentPeriod, validation.In(AdjustmentQuarterly, AdjustmentSemiannual, AdjustmentAnnual)),
		validation.Field(&c.Status, validation.In(StatusDraft, StatusActive, StatusExpired, StatusTerminated, StatusRenewed)),
		validation.Field(&c.EarlyTerminationPenaltyMonths, validation.Min(0), validation.Max(120)),
		validation.Field(&c.LatePaymentInterestRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&c.NonReturnPenaltyRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&c.DailyPenaltyRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&c.DailyInterestRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&c.CustomClauses, validation.Each(validation.By(validateCustomClause))),
	)
}

// Validate checks the aggregate: contract terms plus exactly one titular
func (a *ContractAggregate) Validate() error {
	errs := validation.Errors{}
	if err := a.Contract.Validate(); err != nil {
		var fieldErrs validation.Errors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for k, v := range fieldErrs {
			errs[k] = v
		}
	}
	if err := validateTenants(a.Tenants); err != nil {
		errs["tenants"] = err
	}
	return errs.Filter()
}

// Validate checks the persisted edit surface
func (e ContractEdits) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.DailyPenaltyRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&e.DailyInterestRate, validation.Min(0.0), validation.Max(maxRate)),
		validation.Field(&e.CustomClauses, validation.By(func(value interface{}) error {
			clauses, _ := value.(*[]CustomClause)
			if clauses == nil {
				return nil
			}
			for i, cc := range *clauses {
				if err := validateCustomClause(cc); err != nil {
					return fmt.Errorf("%d: %w", i, err)
				}
			}
			return nil
		})),
	)
}

// ValidateOverrideKeys rejects override keys that known does not accept
func ValidateOverrideKeys(overrides map[string]string, known func(string) bool) error {
	errs := validation.Errors{}
	for key := range overrides {
		if !known(key) {
			errs[key] = errors.New("is not a standard clause label")
		}
	}
	return errs.Filter()
}

func validateCustomClause(value interface{}) error {
	cc, ok := value.(CustomClause)
	if !ok {
		return errors.New("must be a custom clause")
	}
	return validation.ValidateStruct(&cc,
		validation.Field(&cc.Number, validation.Required, validation.Min(1)),
		validation.Field(&cc.Title, validation.Required),
	)
}

func validateTenants(tenants []ContractTenant) error {
	titulares := 0
	for i, ct := range tenants {
		switch ct.Role {
		case RoleTitular:
			titulares++
		case RoleCoTitular:
		default:
			return fmt.Errorf("tenant %d has unknown role %q", i, ct.Role)
		}
		if ct.Tenant == nil {
			return fmt.Errorf("tenant %d is missing tenant data", i)
		}
	}
	if titulares != 1 {
		return fmt.Errorf("exactly one titular is required, got %d", titulares)
	}
	return nil
}
