package memo

// Func returns a function with the same contract as transform, backed by a
// private Cache. The cache is reachable only through the returned function.
func Func[K comparable, V any](transform func(K) (V, error), opts ...Option) func(K) (V, error) {
	return New(transform, opts...).Get
}

// Pure is Func for functions that cannot fail.
func Pure[K comparable, V any](fn func(K) V, opts ...Option) func(K) V {
	if fn == nil {
		panic("memo: nil transform")
	}
	c := New(func(k K) (V, error) {
		return fn(k), nil
	}, opts...)
	return func(k K) V {
		v, _ := c.Get(k)
		return v
	}
}
