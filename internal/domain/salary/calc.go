package salary

// ComputeTotal derives the stored total from its components. The total is
// always recomputed from the components on save, never taken from the client.
func ComputeTotal(basic, allowances, deductions float64) float64 {
	return basic + allowances - deductions
}
