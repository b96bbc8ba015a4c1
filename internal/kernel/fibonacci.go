package kernel

// Fibonacci is the iterative-recurrence kernel. It computes the n-th
// Fibonacci number with two rolling variables in O(n) time and O(1)
// additional space. No recursion and no memoization: the cost model stays
// simple and comparable across ports.
type Fibonacci struct {
	n      int64
	result int64
}

// NewFibonacci creates a Fibonacci kernel with n and result at zero.
func NewFibonacci() *Fibonacci {
	return &Fibonacci{}
}

// SetN stores the target index. There is no upper-bound validation: values
// large enough to overflow int64 are permitted and produce wrapped results
// (two's-complement, as defined by Go), not errors. F(92) is the last index
// whose value fits without wrapping.
func (f *Fibonacci) SetN(v int64) {
	f.n = v
}

// Calculate computes F(n) under the recurrence F(0)=0, F(1)=1,
// F(k)=F(k-1)+F(k-2), stores it, and returns it.
//
// For n < 2 the result is n itself. Repeated calls with an unchanged n
// return the same value: the computation is idempotent.
func (f *Fibonacci) Calculate() int64 {
	if f.n < 2 {
		f.result = f.n
		return f.result
	}

	a, b := int64(0), int64(1)
	for i := int64(2); i <= f.n; i++ {
		a, b = b, a+b
	}

	f.result = b
	return b
}

// Result returns the last computed value. Pure read, no side effects.
func (f *Fibonacci) Result() int64 {
	return f.result
}
