package allocation

import "fmt"

type counts struct {
	funded    int
	full      int
	partial   int
	allocated int64
}

func tally(awards []Award) counts {
	var c counts
	for _, award := range awards {
		c.allocated += award.Allocated
		if award.Allocated <= 0 {
			continue
		}
		c.funded++
		if award.Allocated == award.Requested {
			c.full++
		} else {
			c.partial++
		}
	}
	return c
}

// checkConsistency verifies the post-conditions of both funding stages. A
// failure here is a bug in this package, never a consequence of non-negative input.
func checkConsistency(awards []Award, c counts, cfg BudgetConfig, remaining int64) error {
	for _, award := range awards {
		if award.Allocated < 0 || award.Allocated > award.Requested {
			return fmt.Errorf("%w: award %s allocated %d of %d requested", ErrInconsistent, award.ID, award.Allocated, award.Requested)
		}
		if award.Base+award.Topup != award.Requested {
			return fmt.Errorf("%w: award %s base %d + topup %d != requested %d", ErrInconsistent, award.ID, award.Base, award.Topup, award.Requested)
		}
	}
	if c.funded != c.full+c.partial {
		return fmt.Errorf("%w: funded %d != full %d + partial %d", ErrInconsistent, c.funded, c.full, c.partial)
	}
	if remaining < 0 || c.allocated+remaining != cfg.TotalBudget {
		return fmt.Errorf("%w: allocated %d + remaining %d != budget %d", ErrInconsistent, c.allocated, remaining, cfg.TotalBudget)
	}
	return nil
}
