package integrator

// Importance estimates the integral by drawing samples from a proposal
// distribution and reweighting each term by the inverse of the proposal's
// density. Drawing more often where h is large reduces variance relative to
// uniform sampling when the proposal tracks the shape of h.
//
// The sampler does not choose or validate the proposal; the caller supplies
// both halves of the pair. Precondition: pdf(x) > 0 wherever draw can land
// and h(x) != 0. A zero or negative density at a drawn point yields an
// infinite or NaN term which is summed into the result as-is.
type Importance struct {
	pdf  Func
	draw func() float64
}

// NewImportance returns an importance sampler over the proposal described
// by pdf and draw. The draw function must produce variates distributed
// according to pdf; see the proposal package for inverse-CDF construction.
func NewImportance(pdf Func, draw func() float64) *Importance {
	return &Importance{pdf: pdf, draw: draw}
}

// Integrate accumulates (h(x)/pdf(x))/n over n proposal draws.
func (s *Importance) Integrate(h Func, n int) float64 {
	total := 0.0
	for i := 0; i < n; i++ {
		x := s.draw()
		total += (h(x) / s.pdf(x)) / float64(n)
	}
	return total
}
