package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/liinajapson/budget-tool/internal/allocation"
)

const (
	APIVersionV1            = "budget-tool.dev/v1"
	KindScholarshipScenario = "ScholarshipScenario"
)

type Scenario struct {
	APIVersion string   `yaml:"apiVersion" json:"apiVersion"`
	Kind       string   `yaml:"kind" json:"kind"`
	Metadata   Metadata `yaml:"metadata" json:"metadata"`
	Budget     Budget   `yaml:"budget" json:"budget"`
	Tiers      []Tier   `yaml:"tiers" json:"tiers"`
}

type Metadata struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
}

type Budget struct {
	Total        int64 `yaml:"total" json:"total"`
	Ceiling      int64 `yaml:"ceiling" json:"ceiling"`
	AllowPartial bool  `yaml:"allowPartial" json:"allowPartial"`
	MinBase      int64 `yaml:"minBase" json:"minBase"`
}

type Tier struct {
	Amount int64 `yaml:"amount" json:"amount"`
	Count  int   `yaml:"count" json:"count"`
}

func (s Scenario) Validate() error {
	var errs []string
	if s.APIVersion != APIVersionV1 {
		errs = append(errs, fmt.Sprintf("apiVersion must be %q", APIVersionV1))
	}
	if s.Kind != KindScholarshipScenario {
		errs = append(errs, fmt.Sprintf("kind must be %q", KindScholarshipScenario))
	}
	if strings.TrimSpace(s.Metadata.Name) == "" {
		errs = append(errs, "metadata.name is required")
	}
	errs = append(errs, s.Budget.validate()...)
	for i, tier := range s.Tiers {
		prefix := fmt.Sprintf("tiers[%d]", i)
		if tier.Amount < 0 {
			errs = append(errs, fmt.Sprintf("%s.amount must not be negative", prefix))
		}
		if tier.Count < 0 {
			errs = append(errs, fmt.Sprintf("%s.count must not be negative", prefix))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (b Budget) validate() []string {
	var errs []string
	if b.Total < 0 {
		errs = append(errs, "budget.total must not be negative")
	}
	if b.Ceiling < 0 {
		errs = append(errs, "budget.ceiling must not be negative")
	}
	if b.MinBase < 0 {
		errs = append(errs, "budget.minBase must not be negative")
	}
	return errs
}

// Advisories are notices that do not stop a run.
func (s Scenario) Advisories() []string {
	var out []string
	if s.Budget.AllowPartial && s.Budget.MinBase > s.Budget.Ceiling {
		out = append(out, fmt.Sprintf("minimum guaranteed amount %d exceeds scholarship ceiling %d; base funding will be capped at requested amounts", s.Budget.MinBase, s.Budget.Ceiling))
	}
	return out
}

func (s Scenario) Applicants() int {
	total := 0
	for _, tier := range s.Tiers {
		if tier.Count > 0 {
			total += tier.Count
		}
	}
	return total
}

func (s Scenario) CostTiers() []allocation.CostTier {
	out := make([]allocation.CostTier, 0, len(s.Tiers))
	for _, tier := range s.Tiers {
		out = append(out, allocation.CostTier{Amount: tier.Amount, Count: tier.Count})
	}
	return out
}

func (s Scenario) Config() allocation.BudgetConfig {
	return allocation.BudgetConfig{
		TotalBudget:  s.Budget.Total,
		Ceiling:      s.Budget.Ceiling,
		AllowPartial: s.Budget.AllowPartial,
		MinBase:      s.Budget.MinBase,
	}
}
